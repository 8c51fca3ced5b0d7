// Package main provides the garagelog CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gearbox-labs/garagelog/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "garagelog:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: user errors (bad input,
// missing records) exit 1, everything else exits 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrDuplicatePlate),
		errors.Is(err, types.ErrMissingField),
		errors.Is(err, types.ErrPlateTooShort),
		errors.Is(err, types.ErrYearOutOfRange),
		errors.Is(err, types.ErrInvalidCategory),
		errors.Is(err, types.ErrInvalidDate),
		errors.Is(err, types.ErrNegativeCost),
		errors.Is(err, types.ErrNegativeOdometer),
		errors.Is(err, types.ErrNoData):
		return exitUserError
	default:
		return exitSysError
	}
}
