package util

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/phyten/decomment/internal/progress"
)

// ShouldShowProgress decides whether to draw progress on stderr. force
// and no come from flags; otherwise both stdout and stderr must be a
// terminal so pipes stay clean.
func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// Progress draws a counter with an ETA estimate on stderr. Advance is
// safe to call from multiple workers.
type Progress struct {
	est     *progress.Estimator
	enabled bool
}

func NewProgress(total int, enabled bool) *Progress {
	return &Progress{est: progress.NewEstimator(total, progress.Config{}), enabled: enabled}
}

func (p *Progress) Advance() {
	snap, notify := p.est.Advance(1)
	if !p.enabled || !notify {
		return
	}
	eta := "-"
	if !snap.Warmup && snap.ETA > 0 {
		d := snap.ETA.Round(time.Second)
		eta = fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
	}
	fmt.Fprintf(os.Stderr, "\r\033[K[scan] %d/%d (%d%%) ETA %s", snap.Done, snap.Total, percent(snap.Done, snap.Total), eta)
}

func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	fmt.Fprint(os.Stderr, "\r\033[K")
}

func percent(a, b int) int {
	if b == 0 {
		return 100
	}
	return a * 100 / b
}
