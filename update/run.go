// Package update follows an OSM replication feed and imports each diff.
package update

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/omniscale/go-osm/replication"
	"github.com/omniscale/go-osm/replication/diff"
	"github.com/omniscale/go-osm/state"
	"github.com/pkg/errors"

	"github.com/radsim/roadstyle/log"
)

const lastStateFile = "last.state.txt"

type Config struct {
	// DiffDir stores the downloaded diffs and last.state.txt.
	DiffDir string
	// ReplicationURL overrides the URL from last.state.txt. Diffs are only
	// read from DiffDir if both are empty.
	ReplicationURL string
	Interval       time.Duration
}

// Importer imports a single diff file.
type Importer func(ctx context.Context, fname string) error

// ParseLastState reads last.state.txt from diffDir.
func ParseLastState(diffDir string) (*state.DiffState, error) {
	return state.ParseFile(filepath.Join(diffDir, lastStateFile))
}

// WriteLastState replaces last.state.txt in diffDir.
func WriteLastState(diffDir string, s *state.DiffState) error {
	if err := os.MkdirAll(diffDir, 0755); err != nil {
		return err
	}
	return state.WriteFile(filepath.Join(diffDir, lastStateFile), s)
}

// initialState returns the state to continue from. Without a
// last.state.txt, the feed starts at the current sequence of the
// replication URL.
func initialState(conf Config) (*state.DiffState, error) {
	s, err := ParseLastState(conf.DiffDir)
	if err == nil {
		return s, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "reading last.state.txt")
	}
	if conf.ReplicationURL == "" {
		return nil, errors.New("no last.state.txt and no replication URL")
	}
	seq, err := diff.CurrentSequence(conf.ReplicationURL)
	if err != nil {
		return nil, errors.Wrap(err, "requesting current sequence")
	}
	s = &state.DiffState{Time: time.Now().UTC(), Sequence: seq, URL: conf.ReplicationURL}
	if err := WriteLastState(conf.DiffDir, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Run imports all diffs after the last imported sequence until ctx is
// canceled. Failed imports are retried with an exponential backoff.
func Run(ctx context.Context, conf Config, importer Importer) error {
	s, err := initialState(conf)
	if err != nil {
		return err
	}
	url := conf.ReplicationURL
	if url == "" {
		url = s.URL
	}

	var source replication.Source
	if url == "" {
		log.Printf("[info] Reading diffs from %s", conf.DiffDir)
		source = diff.NewReader(conf.DiffDir, s.Sequence)
	} else {
		log.Printf("[info] Replication URL: %s", url)
		log.Printf("[info] Replication interval: %s", conf.Interval)
		source = diff.NewDownloader(conf.DiffDir, url, s.Sequence, conf.Interval)
	}
	defer source.Stop()

	exp := newExpBackoff(2*time.Second, 5*time.Minute)
	for {
		select {
		case <-ctx.Done():
			log.Println("[info] Exiting")
			return nil
		case seq, ok := <-source.Sequences():
			if !ok {
				return nil
			}
			if seq.Error != nil {
				log.Printf("[warn] Sequence %d: %s", seq.Sequence, seq.Error)
				continue
			}
			for {
				step := log.Step(fmt.Sprintf("Importing #%d till %s", seq.Sequence, seq.Time))
				err := importer(ctx, seq.Filename)
				step()
				if err == nil {
					exp.Reset()
					break
				}
				log.Printf("[error] %s", err)
				log.Printf("[info] Retrying in %s", exp.Duration())
				if !exp.Wait(ctx) {
					return nil
				}
			}
			err := WriteLastState(conf.DiffDir, &state.DiffState{
				Time:     seq.Time,
				Sequence: seq.Sequence,
				URL:      url,
			})
			if err != nil {
				return errors.Wrap(err, "writing last.state.txt")
			}
		}
	}
}

type expBackoff struct {
	current time.Duration
	min     time.Duration
	max     time.Duration
}

func newExpBackoff(min, max time.Duration) *expBackoff {
	return &expBackoff{min, min, max}
}

func (eb *expBackoff) Duration() time.Duration {
	return eb.current
}

// Wait returns false if ctx was canceled while waiting.
func (eb *expBackoff) Wait(ctx context.Context) bool {
	select {
	case <-time.After(eb.current):
	case <-ctx.Done():
		return false
	}
	eb.current = eb.current * 2
	if eb.current > eb.max {
		eb.current = eb.max
	}
	return true
}

func (eb *expBackoff) Reset() {
	eb.current = eb.min
}
