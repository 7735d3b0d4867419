// Package reader reads OSM ways from PBF, XML and change files.
package reader

import (
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/omniscale/go-osm"
	"github.com/omniscale/go-osm/parser/pbf"
	pmosm "github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/log"
)

// Filter decides which ways are read.
type Filter func(tags element.Tags) bool

// Highways only accepts ways with a highway tag.
func Highways(tags element.Tags) bool {
	return tags.Has("highway")
}

type Config struct {
	// Filter defaults to Highways.
	Filter Filter
	// Concurrency of the PBF and XML decoders. Defaults to runtime.NumCPU
	// if <= 0.
	Concurrency int
}

func (c Config) filter() Filter {
	if c.Filter == nil {
		return Highways
	}
	return c.Filter
}

func (c Config) concurrency() int {
	if c.Concurrency <= 0 {
		return runtime.NumCPU()
	}
	return c.Concurrency
}

// ReadFile reads all matching ways from fname into ways. The format is
// selected by the file extension: .pbf or .osm. ways is closed when
// ReadFile returns.
func ReadFile(ctx context.Context, fname string, conf Config, ways chan<- element.Way) error {
	f, err := os.Open(fname)
	if err != nil {
		close(ways)
		return errors.Wrapf(err, "opening %s", fname)
	}
	defer f.Close()

	defer log.Step("Reading " + fname)()
	switch {
	case strings.HasSuffix(fname, ".pbf"):
		return ReadPBF(ctx, f, conf, ways)
	case strings.HasSuffix(fname, ".osm"):
		return ReadXML(ctx, f, conf, ways)
	}
	close(ways)
	return errors.Errorf("unsupported file format %s (.pbf or .osm expected)", fname)
}

// ReadPBF reads all matching ways from a PBF file into ways. ways is closed
// when ReadPBF returns.
func ReadPBF(ctx context.Context, r io.Reader, conf Config, ways chan<- element.Way) error {
	defer close(ways)
	filter := conf.filter()

	parsed := make(chan []osm.Way, 4)
	parser := pbf.New(r, pbf.Config{
		Ways:        parsed,
		Concurrency: conf.concurrency(),
		KeepOpen:    true,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(parsed)
		if err := parser.Parse(ctx); err != nil {
			return errors.Wrap(err, "parsing PBF")
		}
		return nil
	})
	g.Go(func() error {
		for ws := range parsed {
			for _, w := range ws {
				tags := element.Tags(w.Tags)
				if !filter(tags) {
					continue
				}
				select {
				case ways <- element.Way{ID: w.ID, Tags: tags}:
				case <-ctx.Done():
					// drain parsed so the parser can return
					for range parsed {
					}
					return ctx.Err()
				}
			}
		}
		return nil
	})
	return g.Wait()
}

// ReadXML reads all matching ways from an OSM XML file into ways. ways is
// closed when ReadXML returns.
func ReadXML(ctx context.Context, r io.Reader, conf Config, ways chan<- element.Way) error {
	defer close(ways)
	filter := conf.filter()

	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		w, ok := scanner.Object().(*pmosm.Way)
		if !ok {
			continue
		}
		tags := element.Tags(w.TagMap())
		if !filter(tags) {
			continue
		}
		select {
		case ways <- element.Way{ID: int64(w.ID), Tags: tags}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "parsing OSM XML")
	}
	return nil
}
