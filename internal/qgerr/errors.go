// Package qgerr defines the error taxonomy shared by the QG core
// packages. Construction-time failures wrap one of these sentinels so
// callers can branch with errors.Is.
package qgerr

import "errors"

var (
	// ErrShapeMismatch indicates inconsistent array dimensions or layer
	// counts among inputs.
	ErrShapeMismatch = errors.New("qg: shape mismatch")

	// ErrNumerical indicates a singular coupling matrix or an otherwise
	// non-physical inversion.
	ErrNumerical = errors.New("qg: numerical error")

	// ErrConfiguration indicates invalid physical or grid configuration,
	// such as nlayers < 1 or non-positive layer thickness.
	ErrConfiguration = errors.New("qg: invalid configuration")
)
