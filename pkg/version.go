// Package taxflor holds build identity shared by the CLI.
package taxflor

var (
	// Version is set by build flags.
	Version = "dev"
	// Build is set by build flags to the commit and date.
	Build = "n/a"
)
