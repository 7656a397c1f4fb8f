package ir

import "github.com/lhaig/wasmforge/internal/wasmval"

// Local describes one parameter or declared local slot. Name is synthetic
// (spec.md §11 — "argN" for parameters, "lN" for declared locals); the
// decoder does not read the name section, so nothing replaces these names.
type Local struct {
	ID       LocalID
	Type     wasmval.ValType
	Name     string
	IsParam  bool
}

// Locals is the ordered list of a function's local slots, parameters
// first, in declaration order. Indices into this slice are not wire
// indices — internal/localalloc computes those once the run-length
// grouping by type is known.
type Locals []Local

// Params returns the prefix of l that are parameters.
func (l Locals) Params() Locals {
	i := 0
	for i < len(l) && l[i].IsParam {
		i++
	}
	return l[:i]
}

// Declared returns the suffix of l that are non-parameter locals.
func (l Locals) Declared() Locals {
	i := 0
	for i < len(l) && l[i].IsParam {
		i++
	}
	return l[i:]
}

// ByID returns the Local with the given id, or false if none matches.
func (l Locals) ByID(id LocalID) (Local, bool) {
	for _, loc := range l {
		if loc.ID == id {
			return loc, true
		}
	}
	return Local{}, false
}
