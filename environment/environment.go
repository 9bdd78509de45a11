/*
Environment Module - Named Matrix Storage
===========================================

This module stores and retrieves named matrices of a single dimension. Two
independent environments are kept by callers (one per dimension) so that
the same textual name can denote different values in a 2D context and a 3D
context; there is no promotion or conversion between the two.

Grounded on the teacher's constants.Table load/get shape
(constants/constants.go), generalised to per-dimension typed storage whose
Set/Get return the taxonomy errors from matrixname and this package instead
of a bare bool.
*/

package environment

import (
	"fmt"

	"github.com/DoctorDalek1963/trinity/matrixname"
	"github.com/DoctorDalek1963/trinity/matrixvalue"
)

// NameNotDefinedError reports that a validly-named matrix has no stored
// value.
type NameNotDefinedError struct {
	Name matrixname.MatrixName
}

func (e *NameNotDefinedError) Error() string {
	return fmt.Sprintf("matrix name not defined: %q", e.Name.String())
}

// Environment maps validated matrix names to stored matrices, all of a
// single dimension.
type Environment struct {
	dim     matrixvalue.Dim
	entries map[matrixname.MatrixName]matrixvalue.M23
}

// New creates an empty environment for the given dimension.
func New(dim matrixvalue.Dim) *Environment {
	return &Environment{
		dim:     dim,
		entries: make(map[matrixname.MatrixName]matrixvalue.M23),
	}
}

// Dim reports which dimension this environment stores.
func (e *Environment) Dim() matrixvalue.Dim {
	return e.dim
}

// Set validates name and stores value, overwriting any existing entry.
func (e *Environment) Set(name string, value matrixvalue.M23) error {
	n, err := matrixname.New(name)
	if err != nil {
		return err
	}
	e.entries[n] = value
	return nil
}

// Get validates name and returns a copy of the stored matrix, or
// NameNotDefinedError if there is no entry.
func (e *Environment) Get(name string) (matrixvalue.M23, error) {
	n, err := matrixname.New(name)
	if err != nil {
		return matrixvalue.M23{}, err
	}
	m, ok := e.entries[n]
	if !ok {
		return matrixvalue.M23{}, &NameNotDefinedError{Name: n}
	}
	return m, nil
}

// Names returns the currently defined matrix names, in no particular
// order.
func (e *Environment) Names() []matrixname.MatrixName {
	names := make([]matrixname.MatrixName, 0, len(e.entries))
	for n := range e.entries {
		names = append(names, n)
	}
	return names
}
