// Package settings holds the display precision used when formatting
// evaluated numbers for the REPL.
package settings

import "fmt"

var Precision = 6

// Set changes the display precision, rejecting anything outside [0, 20].
func Set(p int) error {
	if p < 0 || p > 20 {
		return fmt.Errorf("precision must be between 0 and 20")
	}
	Precision = p
	return nil
}
