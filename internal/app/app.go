// Package app wires up and runs the wifitop command line.
package app

import "github.com/jaco/wifitop/internal/cli"

// Run executes the wifitop CLI.
func Run() error {
	return cli.Execute()
}
