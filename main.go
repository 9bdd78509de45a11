package main

import (
	"fmt"
	"os"

	"github.com/DoctorDalek1963/trinity/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
