package ai

import "errors"

// Generation failures are terminal for a single attempt; nothing is
// retried internally. Callers match with errors.Is and present the
// message to the user.
var (
	// ErrMissingCredential means no API key is configured. Reported
	// before any network I/O.
	ErrMissingCredential = errors.New("no API key configured: set TRACKMAP_API_KEY or add api_key to config.yaml")

	// ErrNetwork wraps transport-level failures (DNS, timeout,
	// connection reset).
	ErrNetwork = errors.New("network error")

	// ErrAuthentication means the endpoint rejected the API key.
	ErrAuthentication = errors.New("authentication failed: check your API key")

	// ErrInvalidResponse means the response envelope was malformed or
	// carried no text content.
	ErrInvalidResponse = errors.New("invalid response from generation service")

	// ErrParsing wraps decode failures when the extracted JSON does not
	// match the expected phases/tasks/subtasks shape.
	ErrParsing = errors.New("could not parse generated roadmap")

	// ErrVendor wraps a structured error payload returned by the
	// service; the vendor's message is passed through.
	ErrVendor = errors.New("generation service error")
)
