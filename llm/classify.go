package llm

import "strings"

// ErrorClass buckets an upstream failure into the categories callers map to
// distinct user-facing errors.
type ErrorClass int

const (
	ErrClassUnknown ErrorClass = iota
	ErrClassAuth
	ErrClassRateLimit
	ErrClassQuota
)

// ClassifyError inspects an upstream error's text for known markers. The SDK
// surface is a plain error, so pattern matching is the fallback taxonomy;
// keeping it in one function keeps the fragility testable and contained.
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrClassUnknown
	}
	msg := err.Error()

	// Quota markers first: providers phrase quota exhaustion as a 429 too,
	// and it needs a different user-facing outcome than throttling.
	if strings.Contains(msg, "insufficient_quota") || strings.Contains(strings.ToLower(msg), "quota") {
		return ErrClassQuota
	}
	if strings.Contains(msg, "401") || strings.Contains(msg, "Unauthorized") {
		return ErrClassAuth
	}
	if strings.Contains(msg, "429") || strings.Contains(msg, "Rate limit") {
		return ErrClassRateLimit
	}
	return ErrClassUnknown
}
