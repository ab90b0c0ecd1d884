package lp

import (
	"fmt"

	"github.com/limaJavier/cargolp/pkg/model"
)

// Densities returns alpha[j] = volume[j] / availability[j] for every load.
// A load with zero availability yields ErrDivisionByZero and no densities.
func Densities(loads []model.Load) ([]float64, error) {
	densities := make([]float64, len(loads))
	for j, load := range loads {
		if load.Availability == 0 {
			return nil, fmt.Errorf("%w: load %d has zero availability", ErrDivisionByZero, j+1)
		}
		densities[j] = float64(load.Volume) / float64(load.Availability)
	}
	return densities, nil
}
