package config

import (
	"io/ioutil"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/radsim/roadstyle/log"
)

// Config is the content of a YAML config file. Options set on the command
// line take precedence.
type Config struct {
	CacheDir   string `yaml:"cachedir"`
	Connection string `yaml:"connection"`
	Schema     string `yaml:"schema"`
	Table      string `yaml:"table"`
	Workers    int    `yaml:"workers"`
	LogLevel   string `yaml:"loglevel"`

	DiffDir             string `yaml:"diffdir"`
	ReplicationURL      string `yaml:"replication_url"`
	ReplicationInterval string `yaml:"replication_interval"`
}

const defaultSchema = "public"
const defaultTable = "radsim_ways"
const defaultReplicationInterval = time.Minute

type Options struct {
	ConfigFile string
	CacheDir   string
	Connection string
	Schema     string
	Table      string
	Workers    int
	LogLevel   string
	Quiet      bool

	DiffDir             string
	ReplicationURL      string
	ReplicationInterval time.Duration
}

// AddFlags registers the options on flags.
func (o *Options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&o.ConfigFile, "config", "", "config (yaml)")
	flags.StringVar(&o.CacheDir, "cachedir", "", "category cache directory")
	flags.StringVar(&o.Connection, "connection", "", "PostgreSQL connection URL")
	flags.StringVar(&o.Schema, "dbschema", defaultSchema, "db schema for results")
	flags.StringVar(&o.Table, "dbtable", defaultTable, "db table for results")
	flags.IntVar(&o.Workers, "workers", 0, "number of classification workers (default: number of CPUs)")
	flags.StringVar(&o.LogLevel, "loglevel", "", "minimum log level (debug, step, info, warn, error)")
	flags.BoolVar(&o.Quiet, "quiet", false, "quiet log output")
	flags.StringVar(&o.DiffDir, "diffdir", "", "diff directory for last.state.txt (default: cachedir)")
	flags.StringVar(&o.ReplicationURL, "replication-url", "", "replication URL, e.g. https://planet.openstreetmap.org/replication/minute/")
	flags.DurationVar(&o.ReplicationInterval, "replication-interval", defaultReplicationInterval, "replication interval")
}

func (o *Options) updateFromConfig() error {
	conf := &Config{}

	if o.ConfigFile != "" {
		b, err := ioutil.ReadFile(o.ConfigFile)
		if err != nil {
			return errors.Wrapf(err, "reading config %s", o.ConfigFile)
		}
		if err := yaml.UnmarshalStrict(b, conf); err != nil {
			return errors.Wrapf(err, "parsing config %s", o.ConfigFile)
		}
	}

	if o.CacheDir == "" {
		o.CacheDir = conf.CacheDir
	}
	if o.Connection == "" {
		o.Connection = conf.Connection
	}
	if conf.Schema != "" && o.Schema == defaultSchema {
		o.Schema = conf.Schema
	}
	if conf.Table != "" && o.Table == defaultTable {
		o.Table = conf.Table
	}
	if o.Workers == 0 {
		o.Workers = conf.Workers
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.LogLevel == "" {
		o.LogLevel = conf.LogLevel
	}
	if o.DiffDir == "" {
		if conf.DiffDir == "" {
			o.DiffDir = o.CacheDir
		} else {
			o.DiffDir = conf.DiffDir
		}
	}
	if o.ReplicationURL == "" {
		o.ReplicationURL = conf.ReplicationURL
	}
	if conf.ReplicationInterval != "" && o.ReplicationInterval == defaultReplicationInterval {
		interval, err := time.ParseDuration(conf.ReplicationInterval)
		if err != nil {
			return errors.Wrapf(err, "parsing replication_interval %q", conf.ReplicationInterval)
		}
		o.ReplicationInterval = interval
	}
	if o.Quiet {
		// --quiet wins over any level from the config
		o.LogLevel = string(log.LWarn)
	}
	if o.LogLevel == "" {
		o.LogLevel = string(log.LInfo)
	}
	return nil
}

func (o *Options) check() []error {
	errs := []error{}
	if o.Workers < 0 {
		errs = append(errs, errors.New("workers needs to be positive"))
	}
	if _, err := log.ParseLevel(o.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if o.ReplicationInterval < time.Second {
		errs = append(errs, errors.New("replication-interval needs to be at least 1s"))
	}
	if o.Schema == "" || o.Table == "" {
		errs = append(errs, errors.New("dbschema and dbtable are required"))
	}
	return errs
}

// Load merges the config file into o and checks the result.
func (o *Options) Load() error {
	if err := o.updateFromConfig(); err != nil {
		return err
	}
	if errs := o.check(); len(errs) != 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return errors.Errorf("errors in config/options:\n\t%s", strings.Join(msgs, "\n\t"))
	}
	return nil
}

// MinLevel returns the configured log level. Only valid after Load.
func (o *Options) MinLevel() log.Level {
	lvl, _ := log.ParseLevel(o.LogLevel)
	return lvl
}
