package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/radsim/roadstyle/log"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "roadstyle_config")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	fname := filepath.Join(dir, "config.yml")
	if err := ioutil.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	o := &Options{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o.AddFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatal(err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := parse(t)
	if err := o.Load(); err != nil {
		t.Fatal(err)
	}
	want := &Options{
		Schema:              "public",
		Table:               "radsim_ways",
		Workers:             runtime.NumCPU(),
		LogLevel:            "info",
		ReplicationInterval: time.Minute,
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if o.MinLevel() != log.LInfo {
		t.Errorf("unexpected level %s", o.MinLevel())
	}
}

func TestConfigFile(t *testing.T) {
	fname := writeConfig(t, `
cachedir: /tmp/radsim
connection: postgres://osm@localhost/osm
schema: radsim
table: ways
workers: 3
loglevel: debug
replication_url: https://planet.openstreetmap.org/replication/hour/
replication_interval: 1h
`)
	o := parse(t, "--config", fname, "--dbtable", "other", "--workers", "2")
	if err := o.Load(); err != nil {
		t.Fatal(err)
	}
	want := &Options{
		ConfigFile:          fname,
		CacheDir:            "/tmp/radsim",
		Connection:          "postgres://osm@localhost/osm",
		Schema:              "radsim",
		Table:               "other",
		Workers:             2,
		LogLevel:            "debug",
		DiffDir:             "/tmp/radsim",
		ReplicationURL:      "https://planet.openstreetmap.org/replication/hour/",
		ReplicationInterval: time.Hour,
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestQuiet(t *testing.T) {
	fname := writeConfig(t, "loglevel: debug\n")
	o := parse(t, "--config", fname, "--quiet")
	if err := o.Load(); err != nil {
		t.Fatal(err)
	}
	if o.MinLevel() != log.LWarn {
		t.Errorf("unexpected level %s", o.MinLevel())
	}
}

func TestErrors(t *testing.T) {
	o := parse(t, "--workers", "-1", "--loglevel", "verbose")
	err := o.Load()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, part := range []string{"workers", "verbose"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("%q not in error %q", part, err)
		}
	}

	o = parse(t, "--config", writeConfig(t, "cache_dir: /tmp\n"))
	if err := o.Load(); err == nil {
		t.Error("expected error for unknown config field")
	}

	o = parse(t, "--config", writeConfig(t, "replication_interval: often\n"))
	if err := o.Load(); err == nil {
		t.Error("expected error for invalid interval")
	}

	o = parse(t, "--replication-interval", "10ms")
	if err := o.Load(); err == nil {
		t.Error("expected error for short interval")
	}

	o = parse(t, "--config", "/does/not/exist.yml")
	if err := o.Load(); err == nil {
		t.Error("expected error for missing config")
	}
}
