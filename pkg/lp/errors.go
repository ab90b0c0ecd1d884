package lp

import (
	"errors"
	"fmt"

	"github.com/limaJavier/cargolp/pkg/model"
)

var (
	// ErrAllocation is returned when the model text would grow past Options.MaxBytes.
	ErrAllocation = errors.New("lp: model text exceeds the size limit")
	// ErrDivisionByZero is returned when a load's density cannot be computed.
	ErrDivisionByZero = errors.New("lp: division by zero")
	// ErrNoCompartments is returned for an input without compartments.
	ErrNoCompartments = fmt.Errorf("lp: %w", model.ErrNoCompartments)
	// ErrNoLoads is returned for an input without loads.
	ErrNoLoads = fmt.Errorf("lp: %w", model.ErrNoLoads)
)
