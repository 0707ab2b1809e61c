package request

import (
	"strings"
	"unicode/utf8"
)

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Placeholder is one {{ key }} occurrence in a template.
type Placeholder struct {
	Key  string
	Path []string
	Pos  Position
}

// Segment is either literal text or a placeholder.
type Segment struct {
	Text        string
	Placeholder *Placeholder
}

// Parse splits a template into literal text and placeholders. Escaped
// delimiters are already unescaped in the returned literals.
func Parse(text string) ([]Segment, error) {
	var (
		segments []Segment
		literal  strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{Text: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	for i < len(text) {
		switch {
		case text[i] == '\\' && strings.HasPrefix(text[i+1:], openDelim):
			literal.WriteString(openDelim)
			i += 1 + len(openDelim)

		case strings.HasPrefix(text[i:], openDelim):
			ph, next, err := scanPlaceholder(text, i)
			if err != nil {
				return nil, err
			}
			flush()
			segments = append(segments, Segment{Placeholder: ph})
			i = next

		default:
			literal.WriteByte(text[i])
			i++
		}
	}
	flush()

	return segments, nil
}

// scanPlaceholder reads the placeholder opening at start and returns it with
// the offset just past its closing delimiter.
func scanPlaceholder(text string, start int) (*Placeholder, int, error) {
	bodyStart := start + len(openDelim)
	rest := text[bodyStart:]

	end := strings.Index(rest, closeDelim)
	if end < 0 {
		return nil, 0, malformed(text, start, "unterminated placeholder, missing \"}}\"")
	}
	if nested := strings.Index(rest[:end], openDelim); nested >= 0 {
		return nil, 0, malformed(text, bodyStart+nested, "nested \"{{\" inside placeholder")
	}

	key := strings.TrimSpace(rest[:end])
	if key == "" {
		return nil, 0, malformed(text, start, "empty placeholder")
	}

	path, reason := splitKeyPath(key)
	if reason != "" {
		return nil, 0, malformed(text, start, reason)
	}

	ph := &Placeholder{
		Key:  key,
		Path: path,
		Pos:  positionOf(text, start),
	}
	return ph, bodyStart + end + len(closeDelim), nil
}

// splitKeyPath validates a key path and splits it on dots. A non-empty
// reason means the key is invalid.
func splitKeyPath(key string) ([]string, string) {
	path := strings.Split(key, ".")
	for _, seg := range path {
		if seg == "" {
			return nil, "invalid key path \"" + key + "\": empty segment"
		}
		for _, r := range seg {
			if !isKeyRune(r) {
				return nil, "invalid key path \"" + key + "\": unexpected character " + quoteRune(r)
			}
		}
	}
	return path, ""
}

func isKeyRune(r rune) bool {
	return r == '_' || r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func quoteRune(r rune) string {
	switch r {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	}
	return "'" + string(r) + "'"
}

func malformed(text string, offset int, reason string) *MalformedError {
	return &MalformedError{Pos: positionOf(text, offset), Reason: reason}
}

func positionOf(text string, offset int) Position {
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	return Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}
