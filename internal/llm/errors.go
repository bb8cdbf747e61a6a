package llm

import "errors"

// Sentinel errors for the Ollama client. Callers in the intelligence layer
// match on these to decide when to fall back to deterministic narratives.
var (
	// ErrOllamaUnavailable indicates the Ollama server is unreachable.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the request exceeded the task's configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured form.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates every configured attempt failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
