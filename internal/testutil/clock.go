package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// FixedNow is the clock behind FixedISO.
func FixedNow() func() time.Time {
	return NowAt(MustParseRFC3339(FixedISO))
}

// MustParseRFC3339 parses a loader timestamp, fractional seconds allowed, or panics.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		panic(err)
	}
	return t
}
