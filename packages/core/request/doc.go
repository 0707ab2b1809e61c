// Package request holds request templates and the placeholder engine that
// resolves them against an environment.
//
// Placeholders are written as {{ key.path }}. A key path is one or more
// segments of letters, digits, '_' or '-', separated by dots; numeric
// segments index into arrays. Whitespace inside the braces is ignored.
// A backslash directly before "{{" produces a literal "{{". A "}}" outside
// of a placeholder is plain text.
//
// Resolution is a single pass: substituted values are never scanned again,
// so a value containing "{{" is emitted as-is. Resolution is all-or-nothing;
// the first unresolvable placeholder fails the whole template.
package request
