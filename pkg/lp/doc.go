// Package lp turns a cargo-loading instance (compartments and loads, see package model) into a
// linear program written in the lp_solve LP format.
//
// The decision variable x[i,j] is the quantity of load j placed into compartment i. The model is
//
//	max:  Σ_i Σ_j profit[j]·x[i,j]
//	s.t.  w[b]·Σ_j x[a,j] - w[a]·Σ_j x[b,j] = 0    for every pair a < b   (proportionality)
//	      Σ_j x[i,j] <= weight[i]                  for every compartment  (weight)
//	      Σ_i x[i,j] <= availability[j]            for every load         (availability)
//	      Σ_j alpha[j]·x[i,j] <= volume[i]         for every compartment  (volume)
//	      x[i,j] >= 0                                                      (non-negativity)
//
// where alpha[j] = volume[j] / availability[j] is the density of load j.
//
// Sections are written in exactly that order and separated by one blank line. Sections without
// lines (the proportionality section of a single compartment) are omitted.
//
// # Variable names
//
// NamingCompact renders x[1,2] as "x12", the format most lp_solve models in the wild use. It is
// ambiguous once an index reaches two digits ("x112" is both x[1,12] and x[11,2]); NamingDelimited
// renders "x_1_12" instead.
//
// # Errors
//
//	ErrNoCompartments, ErrNoLoads - empty tables.
//	ErrDivisionByZero             - a load has zero availability.
//	ErrAllocation                 - the model outgrew Options.MaxBytes.
//
// Generation never returns partial text: on error the returned *Model is nil.
package lp
