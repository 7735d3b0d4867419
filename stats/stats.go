// Package stats counts classified ways and reports progress.
package stats

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/radsim/roadstyle/infrastructure"
)

// Counts is a snapshot of the statistics.
type Counts struct {
	Ways       int64
	Errors     int64
	Categories map[infrastructure.Coarse]int64
}

type counter struct {
	Counts
	lastReport time.Time
	lastWays   int64
}

type Statistics struct {
	ways   chan infrastructure.Coarse
	errors chan int
	stop   chan chan Counts
	out    io.Writer
}

func (s *Statistics) AddWay(c infrastructure.Coarse) { s.ways <- c }
func (s *Statistics) AddError()                      { s.errors <- 1 }

// Stop ends the reporting and returns the final counts. The Statistics
// must not be used afterwards.
func (s *Statistics) Stop() Counts {
	c := make(chan Counts)
	s.stop <- c
	return <-c
}

// StatsReporter starts a reporter that prints the progress to stderr every
// interval. No progress is printed if interval is 0.
func StatsReporter(interval time.Duration) *Statistics {
	return newReporter(interval, os.Stderr)
}

func newReporter(interval time.Duration, out io.Writer) *Statistics {
	c := counter{lastReport: time.Now()}
	c.Categories = make(map[infrastructure.Coarse]int64)
	s := Statistics{
		ways:   make(chan infrastructure.Coarse),
		errors: make(chan int),
		stop:   make(chan chan Counts),
		out:    out,
	}

	go func() {
		var tick <-chan time.Time
		if interval > 0 {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			tick = ticker.C
		}
		for {
			select {
			case cat := <-s.ways:
				c.Ways += 1
				c.Categories[cat] += 1
			case n := <-s.errors:
				c.Errors += int64(n)
			case req := <-s.stop:
				if interval > 0 {
					c.Print(s.out)
					fmt.Fprint(s.out, "\n")
				}
				req <- c.snapshot()
				return
			case <-tick:
				c.Print(s.out)
			}
		}
	}()
	return &s
}

func (c *counter) snapshot() Counts {
	categories := make(map[infrastructure.Coarse]int64, len(c.Categories))
	for k, v := range c.Categories {
		categories[k] = v
	}
	return Counts{Ways: c.Ways, Errors: c.Errors, Categories: categories}
}

func (c *counter) Print(w io.Writer) {
	dur := time.Since(c.lastReport)
	waysPS := int32(float64(c.Ways-c.lastWays)/dur.Seconds()/100) * 100

	fmt.Fprintf(w, "Ways: %7d/s (%9d) Errors: %6d", waysPS, c.Ways, c.Errors)
	if val := os.Getenv("GOGCTRACE"); val != "" {
		fmt.Fprint(w, "\n")
	} else {
		fmt.Fprint(w, "\r\b")
	}
	c.lastWays = c.Ways
	c.lastReport = time.Now()
}

// Summary returns one line per category, ordered like
// infrastructure.Selectable. Categories without ways are included.
func (c Counts) Summary() []string {
	lines := []string{}
	known := make(map[infrastructure.Coarse]bool)
	for _, cat := range infrastructure.Selectable {
		known[cat] = true
		lines = append(lines, fmt.Sprintf("%-12s %9d", cat, c.Categories[cat]))
	}
	var other []string
	for cat, n := range c.Categories {
		if !known[cat] {
			other = append(other, fmt.Sprintf("%-12s %9d", cat, n))
		}
	}
	sort.Strings(other)
	return append(lines, other...)
}
