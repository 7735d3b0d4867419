package log

import (
	"fmt"
	"strings"
	"sync"
)

// Field is a single key/value of a Record.
type Field struct {
	Key   string
	Value interface{}
}

// Record is a structured diagnostic, emitted when a computation fails in a
// way an operator should be able to reconstruct (stalls, cycles, violated
// preconditions).
type Record struct {
	Level   Level
	Kind    string
	Message string
	Fields  []Field
}

func (r Record) String() string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "[%s] %s: %s", r.Level, r.Kind, r.Message)
	for _, f := range r.Fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}

// Field returns the value of the first field with key.
func (r Record) Field(key string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// A Sink receives diagnostic records.
type Sink interface {
	Record(r Record)
}

// LoggerSink writes records as single log lines.
type LoggerSink struct {
	Logger Logger
}

func (s LoggerSink) Record(r Record) {
	l := s.Logger
	if l == nil {
		l = DefaultLogger
	}
	l.Println(r.String())
}

// DefaultSink writes to the DefaultLogger.
var DefaultSink Sink = LoggerSink{}

// Recorder collects records in memory.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

func (r *Recorder) Record(rec Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

// Records returns a copy of all collected records.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}
