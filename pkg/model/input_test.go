package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedInput = ModelInput{
	Compartments: []Compartment{{Weight: 10, Volume: 5}, {Weight: 20, Volume: 8}},
	Loads:        []Load{{Availability: 4, Volume: 2, Profit: 3}, {Availability: 5, Volume: 10, Profit: 1}},
}

const textInput = `2 2
10 5
20 8
4 2 3
5 10 1
`

const jsonInput = `{
	"compartments": [{"weight": 10, "volume": 5}, {"weight": 20, "volume": 8}],
	"loads": [
		{"availability": 4, "volume": 2, "profit": 3},
		{"availability": 5, "volume": 10, "profit": 1}
	]
}`

const yamlInput = `compartments:
  - {weight: 10, volume: 5}
  - {weight: 20, volume: 8}
loads:
  - availability: 4
    volume: 2
    profit: 3
  - availability: 5
    volume: 10
    profit: 1
`

func TestReadText(t *testing.T) {
	t.Run("Correct flow", func(t *testing.T) {
		input, err := ReadText(strings.NewReader(textInput))

		require.NoError(t, err)
		if diff := cmp.Diff(expectedInput, input); diff != "" {
			t.Errorf("ReadText() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 2, input.K())
		assert.Equal(t, 2, input.N())
	})

	t.Run("Layout does not matter", func(t *testing.T) {
		input, err := ReadText(strings.NewReader("2 2 10 5 20 8\n4 2 3 5 10 1"))

		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expectedInput, input))
	})

	scenarios := []struct {
		name     string
		text     string
		contains string
	}{
		{"Missing header", "", "cannot read k and n"},
		{"Zero compartments", "0 1\n4 2 3", "at least one compartment"},
		{"Zero loads", "1 0\n10 5", "at least one load"},
		{"Truncated compartment", "2 1\n10 5\n20", "compartment 2"},
		{"Truncated load", "1 2\n10 5\n4 2 3\n5 10", "load 2"},
		{"Not an integer", "1 1\n10 five\n4 2 3", "compartment 1: invalid integer \"five\""},
		{"Fractional weight", "1 1\n10.9 5\n4 2 3", "invalid integer \"10.9\""},
		{"Header larger than the rows", "1000000000000000000 1\n10 5\n", "compartment 2: unexpected EOF"},
		{"Huge load count", "1 1000000000000000000\n10 5\n4 2 3\n", "load 2: unexpected EOF"},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(scenario.text))

			assert.ErrorContains(t, err, scenario.contains)
		})
	}

	t.Run("Sentinels survive wrapping", func(t *testing.T) {
		_, err := ReadText(strings.NewReader("0 3"))
		assert.ErrorIs(t, err, ErrNoCompartments)
	})
}

func TestStructuredInput(t *testing.T) {
	t.Run("Json", func(t *testing.T) {
		input, err := InputFromJson([]byte(jsonInput))

		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expectedInput, input))
	})

	t.Run("Yaml", func(t *testing.T) {
		input, err := InputFromYaml([]byte(yamlInput))

		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expectedInput, input))
	})

	t.Run("Unknown field", func(t *testing.T) {
		_, err := InputFromJson([]byte(`{"compartments": [{"weight": 1, "volume": 1, "height": 3}], "loads": [{"availability": 1}]}`))

		assert.ErrorContains(t, err, "height")
	})

	t.Run("Fractional numbers", func(t *testing.T) {
		_, err := InputFromJson([]byte(`{"compartments": [{"weight": 10.9, "volume": 5}], "loads": [{"availability": 4, "volume": 2, "profit": 3}]}`))
		assert.ErrorContains(t, err, "invalid integer 10.9")

		_, err = InputFromYaml([]byte("compartments: [{weight: 10, volume: 5}]\nloads: [{availability: 4.7, volume: 2, profit: 3}]\n"))
		assert.ErrorContains(t, err, "invalid integer 4.7")
	})

	t.Run("Whole json numbers", func(t *testing.T) {
		input, err := InputFromJson([]byte(`{"compartments": [{"weight": 10.0, "volume": 5}], "loads": [{"availability": 4, "volume": 2, "profit": 3}]}`))

		require.NoError(t, err)
		assert.Equal(t, 10, input.Compartments[0].Weight)
	})

	t.Run("Malformed json", func(t *testing.T) {
		_, err := InputFromJson([]byte(`{"compartments": [`))

		assert.ErrorContains(t, err, "cannot parse json input")
	})

	t.Run("Empty loads", func(t *testing.T) {
		_, err := InputFromJson([]byte(`{"compartments": [{"weight": 1, "volume": 1}], "loads": []}`))

		assert.ErrorIs(t, err, ErrNoLoads)
	})
}

func TestInputFromFile(t *testing.T) {
	directory := t.TempDir()
	files := map[string]string{
		"input.txt":  textInput,
		"input.json": jsonInput,
		"input.yml":  yamlInput,
		"input.YAML": yamlInput,
	}

	for name, content := range files {
		path := filepath.Join(directory, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		input, err := InputFromFile(path)

		require.NoError(t, err, name)
		assert.Empty(t, cmp.Diff(expectedInput, input), name)
	}

	_, err := InputFromFile(filepath.Join(directory, "missing.txt"))
	assert.ErrorContains(t, err, "cannot read input file")
}

func TestProcessRawInputCopiesTables(t *testing.T) {
	rawInput := RawModelInput{
		Compartments: []Compartment{{Weight: 10, Volume: 5}},
		Loads:        []Load{{Availability: 4, Volume: 2, Profit: 3}},
	}

	input, err := ProcessRawInput(rawInput)
	require.NoError(t, err)
	rawInput.Compartments[0].Weight = 99
	rawInput.Loads[0].Availability = 0

	assert.Equal(t, 10, input.Compartments[0].Weight)
	assert.Equal(t, 4, input.Loads[0].Availability)
}

func TestZeroAvailability(t *testing.T) {
	assert.Equal(t, 0, expectedInput.ZeroAvailability())

	input := RandomInput(3, 4)
	assert.Equal(t, 0, input.ZeroAvailability())
	input.Loads[2].Availability = 0
	input.Loads[3].Availability = 0
	assert.Equal(t, 3, input.ZeroAvailability())
}
