package log

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := newLevelFilter(buf, LWarn)
	l := log.New(f, "", 0)

	l.Println("[debug] hidden")
	l.Println("[info] hidden")
	l.Println("[warn] shown")
	l.Println("untagged")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered levels in output: %q", out)
	}
	if !strings.Contains(out, "[warn] shown") || !strings.Contains(out, "untagged") {
		t.Errorf("missing lines in output: %q", out)
	}

	buf.Reset()
	f.SetMinLevel(LDebug)
	l.Println("[debug] now shown")
	if !strings.Contains(buf.String(), "[debug] now shown") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}

func TestLoggerSink(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := LoggerSink{Logger: log.New(buf, "", 0)}
	sink.Record(Record{
		Level:   LError,
		Kind:    "StallDetected",
		Message: "no progress",
		Fields:  []Field{{"from", "BicycleLane"}, {"to", "MixedWay"}},
	})
	want := "[error] StallDetected: no progress from=BicycleLane to=MixedWay\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Record(Record{Kind: "a", Fields: []Field{{"x", 1}}})
	r.Record(Record{Kind: "b"})

	recs := r.Records()
	if len(recs) != 2 || recs[0].Kind != "a" || recs[1].Kind != "b" {
		t.Fatal(recs)
	}
	if v, ok := recs[0].Field("x"); !ok || v != 1 {
		t.Error(v, ok)
	}
	if _, ok := recs[1].Field("x"); ok {
		t.Error("unexpected field")
	}
}
