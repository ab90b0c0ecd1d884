package model

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoCompartments = errors.New("at least one compartment is required")
	ErrNoLoads        = errors.New("at least one load is required")
)

// Compartment is a cargo bay with a fixed weight and volume capacity
type Compartment struct {
	Weight int `mapstructure:"weight"`
	Volume int `mapstructure:"volume"`
}

// Load is a class of cargo: total available weight, volume per unit and profit per unit
type Load struct {
	Availability int `mapstructure:"availability"`
	Volume       int `mapstructure:"volume"`
	Profit       int `mapstructure:"profit"`
}

type RawModelInput struct {
	Compartments []Compartment `mapstructure:"compartments"`
	Loads        []Load        `mapstructure:"loads"`
}

type ModelInput struct {
	Compartments []Compartment
	Loads        []Load
}

// Number of compartments
func (input ModelInput) K() int { return len(input.Compartments) }

// Number of loads
func (input ModelInput) N() int { return len(input.Loads) }

// InputFromFile reads an input file choosing the decoder by extension: ".json", ".yaml"/".yml", otherwise the plain "k n" text format
func InputFromFile(file string) (ModelInput, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, errors.Wrapf(err, "cannot read input file %s", file)
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return InputFromJson(data)
	case ".yaml", ".yml":
		return InputFromYaml(data)
	default:
		return ReadText(bytes.NewReader(data))
	}
}

func InputFromJson(data []byte) (ModelInput, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(data, &inputJson); err != nil {
		return ModelInput{}, errors.Wrap(err, "cannot parse json input")
	}
	return decodeRawInput(inputJson)
}

func InputFromYaml(data []byte) (ModelInput, error) {
	var inputYaml map[string]any
	if err := yaml.Unmarshal(data, &inputYaml); err != nil {
		return ModelInput{}, errors.Wrap(err, "cannot parse yaml input")
	}
	return decodeRawInput(inputYaml)
}

func decodeRawInput(document map[string]any) (ModelInput, error) {
	var rawInput RawModelInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true, // Typos in field names must not silently become zeros
		DecodeHook:  mapstructure.DecodeHookFuncKind(rejectFractions),
		Result:      &rawInput,
	})
	if err != nil {
		return ModelInput{}, err
	}
	if err := decoder.Decode(document); err != nil {
		return ModelInput{}, errors.Wrap(err, "cannot decode input")
	}
	return ProcessRawInput(rawInput)
}

// JSON numbers arrive as float64, and mapstructure would truncate 10.9 into 10
func rejectFractions(from reflect.Kind, to reflect.Kind, data any) (any, error) {
	if to != reflect.Int || (from != reflect.Float32 && from != reflect.Float64) {
		return data, nil
	}
	value := reflect.ValueOf(data).Float()
	if value != math.Trunc(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("invalid integer %v", data)
	}
	return data, nil
}

// ReadText reads the plain format: "k n", then k lines "weight volume", then n lines "availability volume profit"
func ReadText(reader io.Reader) (ModelInput, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		value, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", scanner.Text())
		}
		return value, nil
	}

	k, err := next()
	if err != nil {
		return ModelInput{}, errors.Wrap(err, "cannot read k and n")
	}
	n, err := next()
	if err != nil {
		return ModelInput{}, errors.Wrap(err, "cannot read k and n")
	}
	if k < 1 {
		return ModelInput{}, errors.Wrapf(ErrNoCompartments, "k = %d", k)
	} else if n < 1 {
		return ModelInput{}, errors.Wrapf(ErrNoLoads, "n = %d", n)
	}

	// Rows are appended as they are read: the header alone must not size an allocation
	var rawInput RawModelInput

	for i := range k {
		values, err := readFields(next, 2)
		if err != nil {
			return ModelInput{}, errors.Wrapf(err, "cannot read weight and volume of compartment %d", i+1)
		}
		rawInput.Compartments = append(rawInput.Compartments, Compartment{Weight: values[0], Volume: values[1]})
	}

	for j := range n {
		values, err := readFields(next, 3)
		if err != nil {
			return ModelInput{}, errors.Wrapf(err, "cannot read availability, volume and profit of load %d", j+1)
		}
		rawInput.Loads = append(rawInput.Loads, Load{Availability: values[0], Volume: values[1], Profit: values[2]})
	}

	return ProcessRawInput(rawInput)
}

func readFields(next func() (int, error), count int) ([]int, error) {
	values := make([]int, count)
	for i := range count {
		value, err := next()
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

// ProcessRawInput checks the table sizes and copies the tables so the result does not alias the caller's slices.
// Zero availabilities are accepted here and only rejected when the volume constraints are built.
func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	if len(rawInput.Compartments) == 0 {
		return ModelInput{}, ErrNoCompartments
	} else if len(rawInput.Loads) == 0 {
		return ModelInput{}, ErrNoLoads
	}

	return ModelInput{
		Compartments: slices.Clone(rawInput.Compartments),
		Loads:        slices.Clone(rawInput.Loads),
	}, nil
}

// ZeroAvailability returns the 1-based position of the first load without availability, or 0 if there is none
func (input ModelInput) ZeroAvailability() int {
	_, index, ok := lo.FindIndexOf(input.Loads, func(load Load) bool { return load.Availability == 0 })
	if !ok {
		return 0
	}
	return index + 1
}
