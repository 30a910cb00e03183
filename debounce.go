package chartview

import (
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// Debouncer coalesces bursts of layout notifications (resize, scroll) into
// a single call. It is poll driven: nothing runs until Debounce is called,
// so the callback always executes on the caller's goroutine.
//
// A pending call fires once the notifications have been quiet for the quiet
// period. During an uninterrupted burst the limiter forces a call at most
// once per maxWait.
type Debouncer struct {
	quiet    time.Duration
	limiter  *rate.Limiter
	now      func() time.Time
	lastMark time.Time
	pending  bool
	finished bool
	logger   *log.Logger
}

// NewDebouncer creates a debouncer. A non-positive maxWait disables forced
// calls during a burst. A nil now uses time.Now.
func NewDebouncer(quiet, maxWait time.Duration, now func() time.Time, logger *log.Logger) *Debouncer {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = defaultLogger
	}
	limit := rate.Limit(0)
	if maxWait > 0 {
		limit = rate.Every(maxWait)
	}
	return &Debouncer{
		quiet:   quiet,
		limiter: rate.NewLimiter(limit, 1),
		now:     now,
		logger:  logger,
	}
}

// Mark records a notification.
func (d *Debouncer) Mark() {
	if d == nil || d.finished {
		return
	}
	t := d.now()
	if !d.pending {
		// Consume the token so that the first forced call comes after
		// maxWait rather than on the next poll.
		d.limiter.AllowN(t, 1)
	}
	d.pending = true
	d.lastMark = t
}

// Pending reports whether a call is waiting.
func (d *Debouncer) Pending() bool {
	return d != nil && d.pending && !d.finished
}

// Debounce calls f if a notification is pending and either the quiet period
// has elapsed or the burst has lasted long enough to force a call.
func (d *Debouncer) Debounce(f func()) {
	if !d.Pending() {
		return
	}
	t := d.now()
	if t.Sub(d.lastMark) < d.quiet && !d.limiter.AllowN(t, 1) {
		return
	}
	d.Flush(f)
}

// Flush calls f immediately if a notification is pending.
func (d *Debouncer) Flush(f func()) {
	if !d.Pending() {
		return
	}
	d.logger.Debug("flushing debouncer")
	d.pending = false
	f()
}

// Stop makes all future debounce operations no-ops.
func (d *Debouncer) Stop() {
	if d == nil {
		return
	}
	d.finished = true
	d.pending = false
}
