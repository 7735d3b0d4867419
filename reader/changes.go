package reader

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/omniscale/go-osm"
	"github.com/omniscale/go-osm/parser/diff"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/radsim/roadstyle/element"
)

// Change is a created, modified or deleted way of an OSM change file.
type Change struct {
	Way    element.Way
	Delete bool
}

// ReadChangeFile reads all way changes from an .osc or .osc.gz file. changes
// is closed when ReadChangeFile returns.
func ReadChangeFile(ctx context.Context, fname string, conf Config, changes chan<- Change) error {
	f, err := os.Open(fname)
	if err != nil {
		close(changes)
		return errors.Wrapf(err, "opening %s", fname)
	}
	defer f.Close()
	return ReadChanges(ctx, f, strings.HasSuffix(fname, ".gz"), conf, changes)
}

// ReadChanges reads all way changes from an OSM change file. Deleted ways
// are always passed on, created and modified ways only if they match the
// filter. Modified ways that no longer match are passed as deletes.
// changes is closed when ReadChanges returns.
func ReadChanges(ctx context.Context, r io.Reader, gzipped bool, conf Config, changes chan<- Change) error {
	defer close(changes)
	filter := conf.filter()

	diffs := make(chan osm.Diff)
	dconf := diff.Config{Diffs: diffs, KeepOpen: true}
	var parser *diff.Parser
	if gzipped {
		var err error
		parser, err = diff.NewGZIP(r, dconf)
		if err != nil {
			return errors.Wrap(err, "opening gzip")
		}
	} else {
		parser = diff.New(r, dconf)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(diffs)
		if err := parser.Parse(ctx); err != nil {
			return errors.Wrap(err, "parsing OSM change")
		}
		return nil
	})
	g.Go(func() error {
		for d := range diffs {
			if d.Way == nil {
				continue
			}
			c := Change{
				Way:    element.Way{ID: d.Way.ID, Tags: element.Tags(d.Way.Tags)},
				Delete: d.Delete,
			}
			if !c.Delete && !filter(c.Way.Tags) {
				if !d.Modify {
					continue
				}
				c.Delete = true
			}
			select {
			case changes <- c:
			case <-ctx.Done():
				for range diffs {
				}
				return ctx.Err()
			}
		}
		return nil
	})
	return g.Wait()
}
