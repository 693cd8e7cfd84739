// Package cli parses roomcost's command line on top of the environment
// configuration and maps usage problems to exit codes.
package cli
