package log

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

type Logger interface {
	Println(v ...interface{})
	Printf(format string, v ...interface{})
}

var DefaultLogger *log.Logger
var defaultFilter *levelFilter

type Level string

const (
	LDebug = Level("debug")
	LStep  = Level("step")
	LInfo  = Level("info")
	LWarn  = Level("warn")
	LError = Level("error")
	LFatal = Level("fatal")
)

var levels = []Level{LDebug, LStep, LInfo, LWarn, LError, LFatal}

func init() {
	defaultFilter = newLevelFilter(os.Stderr, LInfo)
	DefaultLogger = log.New(defaultFilter, "", 0)
}

// levelFilter drops lines tagged with a level below minLevel. Lines
// without a [level] tag are always written.
type levelFilter struct {
	writer    io.Writer
	minLevel  Level
	badLevels map[Level]struct{}
}

func newLevelFilter(w io.Writer, minLevel Level) *levelFilter {
	f := &levelFilter{writer: w}
	f.SetMinLevel(minLevel)
	return f
}

func (f *levelFilter) SetMinLevel(lvl Level) {
	badLevels := make(map[Level]struct{})
	for _, level := range levels {
		if level == lvl {
			break
		}
		badLevels[level] = struct{}{}
	}
	f.minLevel = lvl
	f.badLevels = badLevels
}

func (f *levelFilter) Check(line []byte) bool {
	var level Level
	x := bytes.IndexByte(line, '[')
	if x >= 0 {
		y := bytes.IndexByte(line[x:], ']')
		if y >= 0 {
			level = Level(line[x+1 : x+y])
		}
	}

	_, ok := f.badLevels[level]
	return !ok
}

func (f *levelFilter) Write(p []byte) (n int, err error) {
	if !f.Check(p) {
		return len(p), nil
	}
	// The Go log package always guarantees that we only
	// get a single line.
	b := bytes.Buffer{}
	fmt.Fprintf(&b, "[%s] ", time.Now().Format(time.RFC3339))
	b.Write(p)

	if _, err := f.writer.Write(b.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

func SetMinLevel(lvl Level) {
	defaultFilter.SetMinLevel(lvl)
}

// SetOutput redirects the default logger, e.g. to a file or to a buffer in
// tests.
func SetOutput(w io.Writer) {
	defaultFilter.writer = w
}

func Println(v ...interface{}) {
	DefaultLogger.Println(v...)
}

func Printf(format string, v ...interface{}) {
	DefaultLogger.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	DefaultLogger.Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	DefaultLogger.Fatalf(format, v...)
}

func Step(name string) func() {
	start := time.Now()
	Println("[step] Starting:", name)
	return func() {
		Printf("[step] Finished: %s in %s", name, time.Since(start))
	}
}

// ParseLevel returns the Level named s.
func ParseLevel(s string) (Level, error) {
	for _, l := range levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown log level %q", s)
}
