/*
Config Module - Named Matrix Preloading
=========================================

This module loads a JSON file of named matrices into a pair of
dimension-specific environments at startup, generalising the teacher's flat
constants.Table (constants/constants.go) from a single map[string]float64 to
the two-environment, dimension-typed shape the expression language needs.

File format:

	{
	  "2": {"A": [1, 2, 3, 4], ...},
	  "3": {"B": [1, 0, 0, 0, 1, 0, 0, 0, 1], ...}
	}

Each dimension's matrices are column-major float arrays of length 4 or 9,
matching Anon2/Anon3's Entries layout.
*/

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DoctorDalek1963/trinity/environment"
	"github.com/DoctorDalek1963/trinity/matrixvalue"
)

// BadEntryCountError reports that a matrix entry in the config file had
// neither 4 nor 9 numbers.
type BadEntryCountError struct {
	Dimension string
	Name      string
	Count     int
}

func (e *BadEntryCountError) Error() string {
	return fmt.Sprintf("config: matrix %q in dimension %q has %d entries, want 4 or 9", e.Name, e.Dimension, e.Count)
}

type document struct {
	Two   map[string][]float64 `json:"2"`
	Three map[string][]float64 `json:"3"`
}

// Load reads file and populates env2 and env3 with the matrices it
// describes. Existing entries in env2/env3 are left alone unless the file
// overwrites them by name.
func Load(file string, env2, env3 *environment.Environment) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", file, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", file, err)
	}

	for name, entries := range doc.Two {
		if len(entries) != 4 {
			return &BadEntryCountError{Dimension: "2", Name: name, Count: len(entries)}
		}
		var cols [4]float64
		copy(cols[:], entries)
		if err := env2.Set(name, matrixvalue.NewTwo(cols)); err != nil {
			return err
		}
	}

	for name, entries := range doc.Three {
		if len(entries) != 9 {
			return &BadEntryCountError{Dimension: "3", Name: name, Count: len(entries)}
		}
		var cols [9]float64
		copy(cols[:], entries)
		if err := env3.Set(name, matrixvalue.NewThree(cols)); err != nil {
			return err
		}
	}

	return nil
}
