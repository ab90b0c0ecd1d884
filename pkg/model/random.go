package model

import "math/rand/v2"

// RandomInput builds an instance with k compartments and n loads. Every load gets a positive availability.
func RandomInput(k, n int) ModelInput {
	input := ModelInput{
		Compartments: make([]Compartment, k),
		Loads:        make([]Load, n),
	}

	for i := range k {
		input.Compartments[i] = Compartment{
			Weight: 1 + rand.IntN(100),
			Volume: 1 + rand.IntN(1000),
		}
	}

	for j := range n {
		input.Loads[j] = Load{
			Availability: 1 + rand.IntN(50),
			Volume:       rand.IntN(500),
			Profit:       rand.IntN(20),
		}
	}

	return input
}
