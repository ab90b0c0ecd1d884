package model

import (
	"fmt"
	"io"
)

// Describe writes a human readable dump of the parsed tables, using 1-based positions
func Describe(writer io.Writer, input ModelInput) error {
	if _, err := fmt.Fprintf(writer, "Compartments (k = %d):\n", input.K()); err != nil {
		return err
	}
	for i, compartment := range input.Compartments {
		if _, err := fmt.Fprintf(writer, "  Compartment %d: weight = %d, volume = %d\n", i+1, compartment.Weight, compartment.Volume); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "\nLoads (n = %d):\n", input.N()); err != nil {
		return err
	}
	for j, load := range input.Loads {
		if _, err := fmt.Fprintf(writer, "  Load %d: availability = %d, volume = %d, profit = %d\n", j+1, load.Availability, load.Volume, load.Profit); err != nil {
			return err
		}
	}

	if j := input.ZeroAvailability(); j != 0 {
		if _, err := fmt.Fprintf(writer, "\nWarning: load %d has zero availability, no model can be generated\n", j); err != nil {
			return err
		}
	}
	return nil
}
