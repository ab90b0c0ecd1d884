package lp

import (
	"fmt"
	"strings"
)

// lineBuilder accumulates constraint lines. The first failed write is kept and every later write
// becomes a no-op, so callers only check the error once through Result.
type lineBuilder struct {
	builder  strings.Builder
	maxBytes int // 0 = unbounded
	terms    int // terms written on the current line
	err      error
}

func newLineBuilder(maxBytes int) *lineBuilder {
	return &lineBuilder{maxBytes: maxBytes}
}

func (b *lineBuilder) write(fragment string) {
	if b.err != nil {
		return
	}
	if size := b.builder.Len() + len(fragment); b.maxBytes > 0 && size > b.maxBytes {
		b.err = fmt.Errorf("%w: %d bytes needed, limit is %d", ErrAllocation, size, b.maxBytes)
		return
	}
	if _, err := b.builder.WriteString(fragment); err != nil {
		b.err = err
	}
}

// Literal appends fragment as is
func (b *lineBuilder) Literal(fragment string) {
	b.write(fragment)
}

// Plus appends coefficient·variable, preceded by " + " unless it is the first term of the line
func (b *lineBuilder) Plus(coefficient, variable string) {
	if b.terms > 0 {
		b.write(" + ")
	}
	b.write(coefficient + variable)
	b.terms++
}

// Minus appends coefficient·variable, preceded by " - " (or "-" on an empty line)
func (b *lineBuilder) Minus(coefficient, variable string) {
	if b.terms > 0 {
		b.write(" - ")
	} else {
		b.write("-")
	}
	b.write(coefficient + variable)
	b.terms++
}

// EndConstraint terminates the line with " <relation> <rhs>;\n"
func (b *lineBuilder) EndConstraint(relation string, rhs int) {
	b.write(fmt.Sprintf(" %s %d;\n", relation, rhs))
	b.terms = 0
}

// End terminates the line with ";\n"
func (b *lineBuilder) End() {
	b.write(";\n")
	b.terms = 0
}

// Result returns the accumulated text, or the first error and no text
func (b *lineBuilder) Result() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.builder.String(), nil
}
