// Package output provides formatters for displaying reqq results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output, one document per call
//
// Resolved request text is always written verbatim so it can be piped into
// other tools.
package output
