package lp

import (
	"strconv"

	"github.com/limaJavier/cargolp/pkg/model"
)

type sectionState struct {
	input     model.ModelInput
	naming    Naming
	precision int
	maxBytes  int

	k, n int
}

func newSectionState(input model.ModelInput, options Options) sectionState {
	return sectionState{
		input:     input,
		naming:    options.Naming,
		precision: options.Precision,
		maxBytes:  options.MaxBytes,
		k:         input.K(),
		n:         input.N(),
	}
}

// max: Σ_i Σ_j g_j·x_ij
func objectiveSection(state sectionState) (string, error) {
	builder := newLineBuilder(state.maxBytes)
	builder.Literal("max: ")
	for i := range state.k {
		for j, load := range state.input.Loads {
			builder.Plus(strconv.Itoa(load.Profit), state.naming.Variable(i+1, j+1))
		}
	}
	builder.End()
	return builder.Result()
}

// w_b·Σ_j x_aj - w_a·Σ_j x_bj = 0, for every a < b
func proportionalityConstraints(state sectionState) (string, error) {
	builder := newLineBuilder(state.maxBytes)
	compartments := state.input.Compartments
	for a := range state.k - 1 {
		for b := a + 1; b < state.k; b++ {
			weightA, weightB := strconv.Itoa(compartments[a].Weight), strconv.Itoa(compartments[b].Weight)
			for j := range state.n {
				builder.Plus(weightB, state.naming.Variable(a+1, j+1))
			}
			for j := range state.n {
				builder.Minus(weightA, state.naming.Variable(b+1, j+1))
			}
			builder.EndConstraint("=", 0)
		}
	}
	return builder.Result()
}

// Σ_j x_ij <= w_i
func weightConstraints(state sectionState) (string, error) {
	builder := newLineBuilder(state.maxBytes)
	for i, compartment := range state.input.Compartments {
		for j := range state.n {
			builder.Plus("", state.naming.Variable(i+1, j+1))
		}
		builder.EndConstraint("<=", compartment.Weight)
	}
	return builder.Result()
}

// Σ_i x_ij <= p_j, iterated load-major
func availabilityConstraints(state sectionState) (string, error) {
	builder := newLineBuilder(state.maxBytes)
	for j, load := range state.input.Loads {
		for i := range state.k {
			builder.Plus("", state.naming.Variable(i+1, j+1))
		}
		builder.EndConstraint("<=", load.Availability)
	}
	return builder.Result()
}

// Σ_j alpha_j·x_ij <= v_i
func volumeConstraints(state sectionState) (string, error) {
	densities, err := Densities(state.input.Loads)
	if err != nil {
		return "", err
	}

	// Coefficients only depend on the load
	coefficients := make([]string, len(densities))
	for j, density := range densities {
		coefficients[j] = strconv.FormatFloat(density, 'f', state.precision, 64)
	}

	builder := newLineBuilder(state.maxBytes)
	for i, compartment := range state.input.Compartments {
		for j := range state.n {
			builder.Plus(coefficients[j], state.naming.Variable(i+1, j+1))
		}
		builder.EndConstraint("<=", compartment.Volume)
	}
	return builder.Result()
}

// x_ij >= 0
func nonNegativityConstraints(state sectionState) (string, error) {
	builder := newLineBuilder(state.maxBytes)
	for i := range state.k {
		for j := range state.n {
			builder.Plus("", state.naming.Variable(i+1, j+1))
			builder.EndConstraint(">=", 0)
		}
	}
	return builder.Result()
}
