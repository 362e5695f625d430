// Package cmd implements the sub-commands of the syncdict command-line
// interface. Each file in this directory registers a single sub-command
// (get, rows, dedupe, check). Plumbing shared between commands such as
// configuration loading or service initialisation is located in shared.go.
package cmd
