package lp

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

type Naming int

const (
	NamingCompact Naming = iota
	NamingDelimited
)

var namings = map[Naming]string{
	NamingCompact:   "compact",
	NamingDelimited: "delimited",
}

func ParseNaming(name string) (Naming, error) {
	for naming, str := range namings {
		if strings.EqualFold(name, str) {
			return naming, nil
		}
	}
	return 0, fmt.Errorf("%v is not a valid naming, allowed values are \"compact\" and \"delimited\"", name)
}

func (naming Naming) String() string {
	if str, ok := namings[naming]; ok {
		return str
	}
	return fmt.Sprintf("Naming(%d)", int(naming))
}

// Variable returns the name of x[compartment,load]; both indices are 1-based
func (naming Naming) Variable(compartment, load int) string {
	if naming == NamingDelimited {
		return fmt.Sprintf("x_%d_%d", compartment, load)
	}
	return fmt.Sprintf("x%d%d", compartment, load)
}

// Ambiguous reports whether two different variables of a k×n model can share a name.
// Compact names collide only when both indices can reach 11, as x111 is both x[1,11] and x[11,1].
func (naming Naming) Ambiguous(k, n int) bool {
	return naming == NamingCompact && k > 10 && n > 10
}

// Options configures a Generator.
//   - Naming: variable naming scheme (default NamingCompact).
//   - Precision: decimals of the density coefficients (default 2); a negative value uses the
//     shortest representation that round-trips.
//   - MaxBytes: upper bound on the model text, 0 means unbounded.
//   - Logger: receives warnings and, at V(1), per-section sizes.
type Options struct {
	Naming    Naming
	Precision int
	MaxBytes  int
	Logger    logr.Logger
}

func DefaultOptions() Options {
	return Options{
		Naming:    NamingCompact,
		Precision: 2,
		MaxBytes:  0,
		Logger:    logr.Discard(),
	}
}
