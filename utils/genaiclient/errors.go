package genaiclient

import "errors"

// Sentinel errors for the prompt runner. Nothing below the process boundary
// catches these; bootstrap converts them to a diagnostic and a non-zero exit.
var (
	// ErrMissingProject is used when the vertex project id is not configured.
	ErrMissingProject = errors.New("vertex project id is required")
	// ErrMissingLocation is used when the vertex location is not configured.
	ErrMissingLocation = errors.New("vertex location is required")
	// ErrUnknownModel is used when a model name is outside the known-good set
	// and matches no allowlist pattern.
	ErrUnknownModel = errors.New("unknown model")
	// ErrEmptyPrompt is used when the prompt is empty or whitespace only.
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrBlocked is used when the service withholds the response because of
	// safety filtering.
	ErrBlocked = errors.New("response blocked by safety filter")
	// ErrEmptyResponse is used when the service answers without any text.
	ErrEmptyResponse = errors.New("model returned no text")
)
