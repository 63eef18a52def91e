package provider

import "errors"

// Sentinel errors for provider operations.
var (
	// ErrConfig indicates an invalid provider configuration.
	ErrConfig = errors.New("provider: invalid configuration")

	// ErrAuth indicates the provider rejected the credentials.
	// Credentials do not self-correct, so this aborts the run.
	ErrAuth = errors.New("provider: authentication failed")

	// ErrRateLimit indicates the provider returned a rate limit response.
	ErrRateLimit = errors.New("provider: rate limited")

	// ErrProviderDown indicates the provider is temporarily unavailable.
	ErrProviderDown = errors.New("provider: unavailable")

	// ErrMalformedResponse indicates a response that could not be parsed
	// into the internal representation. Non-fatal per turn.
	ErrMalformedResponse = errors.New("provider: malformed response")
)

// IsRetryable reports whether the error is transient and the request can
// be retried after a delay. Timeouts are mapped to ErrProviderDown by the
// adapters and are therefore retryable.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRateLimit) || errors.Is(err, ErrProviderDown)
}

// IsAuth reports whether err is or wraps ErrAuth.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}
