package worker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const barWidth = 30

// Progress tracks and displays job progress on a single terminal line.
type Progress struct {
	startTime time.Time
	output    io.Writer
	total     int
	completed int
	failed    int
	mu        sync.RWMutex
	enabled   bool
}

// NewProgress creates a new progress tracker writing to stderr.
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		total:     total,
		startTime: time.Now(),
		output:    os.Stderr,
		enabled:   enabled,
	}
}

// SetOutput redirects progress output.
func (p *Progress) SetOutput(w io.Writer) {
	p.mu.Lock()
	p.output = w
	p.mu.Unlock()
}

// Update records the completion of a task.
func (p *Progress) Update(completed, total, failed int) {
	p.mu.Lock()
	p.completed = completed
	p.total = total
	p.failed = failed
	p.mu.Unlock()

	if p.enabled {
		p.Print()
	}
}

// Callback returns a ProgressFunc suitable for use with Pool.Config.
func (p *Progress) Callback() ProgressFunc {
	return p.Update
}

type snapshot struct {
	completed, total, failed int
	elapsed                  time.Duration
	rate                     float64
}

func (p *Progress) snapshot() snapshot {
	p.mu.RLock()
	s := snapshot{completed: p.completed, total: p.total, failed: p.failed}
	startTime := p.startTime
	p.mu.RUnlock()

	s.elapsed = time.Since(startTime)
	if s.elapsed > 0 {
		s.rate = float64(s.completed) / s.elapsed.Seconds()
	}
	return s
}

// Print displays the current progress to output.
func (p *Progress) Print() {
	s := p.snapshot()

	var eta time.Duration
	if s.completed > 0 && s.rate > 0 {
		eta = time.Duration(float64(s.total-s.completed)/s.rate) * time.Second
	}

	filled := 0
	if s.total > 0 {
		filled = min(s.completed*barWidth/s.total, barWidth)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	line := fmt.Sprintf("\r[%s] %d/%d jobs", bar, s.completed, s.total)
	if s.failed > 0 {
		line += fmt.Sprintf(" (%d failed)", s.failed)
	}
	line += fmt.Sprintf(" - %.1f jobs/sec", s.rate)
	if eta > 0 && s.completed < s.total {
		line += fmt.Sprintf(" - ETA: %s", formatDuration(eta))
	}
	if s.completed == s.total {
		line += fmt.Sprintf(" - Done in %s", formatDuration(s.elapsed))
	}

	// Pad to clear previous line content
	line += "          "

	p.mu.RLock()
	fmt.Fprint(p.output, line)
	p.mu.RUnlock()
}

// Done prints the final progress and a newline.
func (p *Progress) Done() {
	if p.enabled {
		p.Print()
		p.mu.RLock()
		fmt.Fprintln(p.output)
		p.mu.RUnlock()
	}
}

// Summary returns a summary string of the completed work.
func (p *Progress) Summary() string {
	s := p.snapshot()
	return fmt.Sprintf("Processed %d/%d jobs (%d failed) in %s (%.1f jobs/sec)",
		s.completed-s.failed, s.total, s.failed, formatDuration(s.elapsed), s.rate)
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", hours, mins)
}
