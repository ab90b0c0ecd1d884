package lp

import (
	"fmt"

	"github.com/limaJavier/cargolp/pkg/model"
	"github.com/samber/lo"
)

// Generator builds the LP model of a cargo-loading instance
type Generator interface {
	// Returns the complete model, or nil and the first error encountered (no partial text is ever returned)
	Generate(input model.ModelInput) (*Model, error)
}

type Model struct {
	Text        string
	Variables   int
	Constraints int
}

func (m *Model) String() string {
	return m.Text
}

type section struct {
	name  string
	build func(state sectionState) (string, error)
}

// Output order of the model
var sections = []section{
	{name: "objective", build: objectiveSection},
	{name: "proportionality", build: proportionalityConstraints},
	{name: "weight", build: weightConstraints},
	{name: "availability", build: availabilityConstraints},
	{name: "volume", build: volumeConstraints},
	{name: "non-negativity", build: nonNegativityConstraints},
}

type cargoGenerator struct {
	options Options
}

func NewCargoGenerator(options Options) Generator {
	return &cargoGenerator{options: options}
}

func (generator *cargoGenerator) Generate(input model.ModelInput) (*Model, error) {
	k, n := input.K(), input.N()
	if k == 0 {
		return nil, ErrNoCompartments
	} else if n == 0 {
		return nil, ErrNoLoads
	}

	logger := generator.options.Logger.WithValues("k", k, "n", n)
	if generator.options.Naming.Ambiguous(k, n) {
		logger.Info("compact variable names may collide, consider the delimited naming")
	}

	state := newSectionState(input, generator.options)
	texts := make([]string, 0, len(sections))
	for _, section := range sections {
		text, err := section.build(state)
		if err != nil {
			return nil, fmt.Errorf("cannot build %s section: %w", section.name, err)
		}
		logger.V(1).Info("section built", "section", section.name, "bytes", len(text))
		texts = append(texts, text)
	}

	builder := newLineBuilder(generator.options.MaxBytes)
	for i, text := range lo.Filter(texts, func(text string, _ int) bool { return text != "" }) {
		if i > 0 {
			builder.Literal("\n")
		}
		builder.Literal(text)
	}

	text, err := builder.Result()
	if err != nil {
		return nil, fmt.Errorf("cannot assemble model: %w", err)
	}

	return &Model{
		Text:        text,
		Variables:   k * n,
		Constraints: countConstraints(k, n),
	}, nil
}

// Proportionality, weight, availability, volume and non-negativity lines
func countConstraints(k, n int) int {
	return k*(k-1)/2 + k + n + k + k*n
}
