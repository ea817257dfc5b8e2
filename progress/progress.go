// Package progress renders a throttled byte-progress bar on standard
// error. Updates reach the bar only after a minimum byte delta has
// accumulated, which keeps output deterministic under test harnesses;
// the bar itself additionally throttles redraws in wall-clock time.
package progress

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// DefaultMinDelta is the byte delta that must accumulate between bar
// updates.
const DefaultMinDelta = 1 << 20

// Reporter batches byte counts into a progress bar. A nil *Reporter is
// valid and does nothing, so callers can wire it unconditionally.
type Reporter struct {
	bar      *progressbar.ProgressBar
	minDelta int
	pending  int
}

// Enabled reports whether a bar should be shown at all: only when
// standard error is a terminal.
func Enabled() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// New returns a Reporter for total input bytes; total 0 means unknown
// and renders a spinner-style bar.
func New(total int64, description string) *Reporter {
	if total == 0 {
		total = -1
	}
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(time.Second),
		progressbar.OptionClearOnFinish(),
	)
	return &Reporter{bar: bar, minDelta: DefaultMinDelta}
}

// Add records n processed bytes. The bar is touched only once the
// accumulated delta reaches the threshold.
func (r *Reporter) Add(n int) {
	if r == nil {
		return
	}
	r.pending += n
	if r.pending < r.minDelta {
		return
	}
	_ = r.bar.Add(r.pending)
	r.pending = 0
}

// Finish flushes the pending delta and completes the bar.
func (r *Reporter) Finish() {
	if r == nil {
		return
	}
	if r.pending > 0 {
		_ = r.bar.Add(r.pending)
		r.pending = 0
	}
	_ = r.bar.Finish()
}
