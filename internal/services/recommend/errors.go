package recommend

import "errors"

// Provider error classes. All of them route to the fallback path; they exist
// so logs and metrics can tell the cases apart.
var (
	// ErrProviderUnavailable means no provider credential is configured.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderRequestFailed covers network, quota and other transport failures.
	ErrProviderRequestFailed = errors.New("provider request failed")

	// ErrResponseSchemaInvalid covers empty, malformed or incomplete payloads.
	ErrResponseSchemaInvalid = errors.New("provider response schema invalid")
)

// classify maps an error to its metric/log outcome label.
func classify(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrProviderUnavailable):
		return "unavailable"
	case errors.Is(err, ErrResponseSchemaInvalid):
		return "schema_invalid"
	default:
		return "request_failed"
	}
}
