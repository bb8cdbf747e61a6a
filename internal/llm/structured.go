package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// ExtractJSON extracts a JSON object of type T from raw LLM text output.
// It tolerates markdown code fences, prose around the object, comments, and
// bare leading-decimal numbers. If validator is non-nil, the extracted value
// is validated before return.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	jsonStr := firstJSONObject(dropFences(raw))
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(sanitizeJSON(jsonStr)), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// dropFences unwraps the first markdown code fence pair when one is present,
// falling back to the full text with fence markers removed if the fenced
// region holds no object.
func dropFences(s string) string {
	open := strings.Index(s, "```")
	if open == -1 {
		return s
	}

	body := s[open+3:]
	// An optional language tag ("json") sits on the opening fence line.
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		body = body[nl+1:]
	}
	if close := strings.Index(body, "```"); close != -1 {
		body = body[:close]
	}
	if strings.IndexByte(body, '{') != -1 {
		return body
	}
	return strings.ReplaceAll(s, "```", "")
}

// firstJSONObject returns the first balanced top-level { ... } block,
// ignoring braces inside string literals.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	var depth int
	var inString, escaped bool
	for i := start; i < len(s); i++ {
		switch c := s[i]; {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// sanitizeJSON repairs the two malformations models emit most often despite
// instructions: C-style comments between values, and numeric literals with a
// bare leading decimal point (".8", "-.3"). String contents pass through
// untouched.
func sanitizeJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var inString, escaped bool
	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			b.WriteByte(c)

		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}

		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			i += 2
			for i+1 < len(s) && !(s[i] == '*' && s[i+1] == '/') {
				i++
			}
			i++ // past the closing '/'

		case c == '.' && i+1 < len(s) && isDigit(s[i+1]) && atValueStart(s, i):
			b.WriteString("0.")

		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// atValueStart reports whether position i begins a JSON value, i.e. the
// previous non-space byte can legally precede one.
func atValueStart(s string, i int) bool {
	for i--; i >= 0; i-- {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case ':', ',', '[', '{', '-':
			return true
		default:
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
