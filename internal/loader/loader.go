// Package loader gathers the per-request data the landing page renders.
package loader

import (
	"context"
	"time"

	"github.com/preston-bernstein/money-dungeon-web/internal/content"
	"github.com/preston-bernstein/money-dungeon-web/internal/domain"
	"github.com/preston-bernstein/money-dungeon-web/internal/timeutil"
)

// MessageFunc supplies the optional environment message. An empty string
// means no message.
type MessageFunc func(ctx context.Context) string

// StaticMessage returns a MessageFunc that always yields msg.
func StaticMessage(msg string) MessageFunc {
	return func(context.Context) string { return msg }
}

// Loader produces a fresh LoaderResult for every request.
type Loader struct {
	message MessageFunc
	now     func() time.Time
}

// New constructs a Loader. A nil message func behaves as an absent message.
func New(message MessageFunc) *Loader {
	return &Loader{message: message, now: time.Now}
}

// WithClock overrides the clock; intended for tests and static export.
func (l *Loader) WithClock(now func() time.Time) *Loader {
	if now != nil {
		l.now = now
	}
	return l
}

// Load captures the message and the current time. It never fails.
func (l *Loader) Load(ctx context.Context) domain.LoaderResult {
	var msg string
	if l != nil && l.message != nil {
		msg = l.message(ctx)
	}
	now := time.Now
	if l != nil && l.now != nil {
		now = l.now
	}
	return domain.LoaderResult{
		Message: msg,
		NowISO:  timeutil.FormatISO(now()),
	}
}

// FooterText returns the message, or the static fallback when it is absent.
func FooterText(result domain.LoaderResult) string {
	if result.HasMessage() {
		return result.Message
	}
	return content.FooterFallback
}

// Timestamp parses NowISO. A malformed value yields the zero time.
func Timestamp(result domain.LoaderResult) time.Time {
	t, err := timeutil.ParseISO(result.NowISO)
	if err != nil {
		return time.Time{}
	}
	return t
}
