package scaffold

import (
	"github.com/charmbracelet/log"
)

// Kind classifies what happened to a file.
type Kind int

const (
	// Created means the file did not exist and was written.
	Created Kind = iota

	// Overwritten means an existing file was replaced.
	Overwritten

	// Skipped means an existing file was left untouched.
	Skipped
)

// String returns the status word for the kind.
func (k Kind) String() string {
	switch k {
	case Created:
		return "created"
	case Overwritten:
		return "overwritten"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Event reports the outcome for one manifest path.
type Event struct {
	Kind Kind
	Path string
}

// Reporter receives scaffold events. Reporting never changes what is
// written.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Event)

// Report calls f(e).
func (f ReporterFunc) Report(e Event) {
	f(e)
}

type nopReporter struct{}

func (nopReporter) Report(Event) {}

// Collector records events and forwards them to another reporter.
type Collector struct {
	Events []Event
	next   Reporter
}

// NewCollector creates a collector. next may be nil.
func NewCollector(next Reporter) *Collector {
	if next == nil {
		next = nopReporter{}
	}
	return &Collector{Events: make([]Event, 0), next: next}
}

// Report records e and forwards it.
func (c *Collector) Report(e Event) {
	c.Events = append(c.Events, e)
	c.next.Report(e)
}

// Paths returns the paths reported with the given kind, in order.
func (c *Collector) Paths(kind Kind) []string {
	out := make([]string, 0)
	for _, e := range c.Events {
		if e.Kind == kind {
			out = append(out, e.Path)
		}
	}
	return out
}

// Count returns how many events have the given kind.
func (c *Collector) Count(kind Kind) int {
	n := 0
	for _, e := range c.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// LogReporter writes events to a charm logger.
type LogReporter struct {
	logger *log.Logger
}

// NewLogReporter creates a reporter logging to l.
func NewLogReporter(l *log.Logger) *LogReporter {
	return &LogReporter{logger: l}
}

// Report logs the event. Skips are info level so users see that their
// files were kept.
func (r *LogReporter) Report(e Event) {
	switch e.Kind {
	case Skipped:
		r.logger.Info("skipping existing file", "path", e.Path)
	case Overwritten:
		r.logger.Info("overwrote file", "path", e.Path)
	default:
		r.logger.Debug("created file", "path", e.Path)
	}
}
