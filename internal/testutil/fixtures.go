package testutil

import "github.com/preston-bernstein/money-dungeon-web/internal/domain"

// FixedISO is the loader timestamp used by fixtures.
const FixedISO = "2026-10-16T12:00:00Z"

// SampleLoaderResult returns a loader result at FixedISO with the given message.
func SampleLoaderResult(message string) domain.LoaderResult {
	return domain.LoaderResult{Message: message, NowISO: FixedISO}
}
