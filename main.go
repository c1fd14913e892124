// ABOUTME: Entry point for the dcm CLI
// ABOUTME: Terminal client for the DCM case-management platform

package main

import (
	"fmt"
	"os"

	"github.com/dcmsystem/dcm-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
