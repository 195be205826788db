// Package main provides the rolodex CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidPayload) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
