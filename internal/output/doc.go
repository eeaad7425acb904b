// Package output is the terminal surface of gosctl: leveled logging via
// charmbracelet/log, colored per-path decision audit lines, a JSON result
// envelope for CI, and a spinner for the pull-request call.
//
// All user-facing output goes through this package rather than fmt.Println.
// Styling is disabled under NO_COLOR and on non-terminal output; --json
// suppresses the text surface entirely in favor of the envelope.
package output
