package cmd

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/radsim/roadstyle/backmap"
	"github.com/radsim/roadstyle/cache"
	"github.com/radsim/roadstyle/database"
	"github.com/radsim/roadstyle/element"
	"github.com/radsim/roadstyle/infrastructure"
	"github.com/radsim/roadstyle/log"
	"github.com/radsim/roadstyle/reader"
	"github.com/radsim/roadstyle/stats"
	"github.com/radsim/roadstyle/translate"
)

const cacheBatchSize = 1024

type classified struct {
	way        element.Way
	attributes element.Tags
}

// output is a single JSON line of the classify command.
type output struct {
	ID   int64        `json:"id"`
	Tags element.Tags `json:"tags"`
}

func newTranslator() *translate.Translator {
	c := infrastructure.NewClassifier()
	s := infrastructure.Simplifier{}
	return translate.New(c, s, backmap.New(backmap.DefaultMatrix(), c, s, log.DefaultSink))
}

func (a *app) classifyCmd() *cobra.Command {
	var progress bool
	cmd := &cobra.Command{
		Use:   "classify <file.pbf|file.osm>",
		Short: "Translate all highways of an OSM file to RadSim",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interval := time.Duration(0)
			if progress {
				interval = time.Second
			}
			return a.classify(cmd.Context(), args[0], cmd.OutOrStdout(), stats.StatsReporter(interval))
		},
	}
	cmd.Flags().BoolVar(&progress, "progress", false, "print progress")
	cmd.Flags().BoolVar(&a.overwriteCache, "overwritecache", false, "remove existing cache before classifying")
	return cmd
}

func (a *app) classify(ctx context.Context, fname string, out io.Writer, progress *stats.Statistics) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var db *database.Writer
	if a.opts.Connection != "" {
		var err error
		db, err = database.Open(database.Config{
			ConnectionParams: a.opts.Connection,
			Schema:           a.opts.Schema,
			Table:            a.opts.Table,
		})
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Init(); err != nil {
			return err
		}
		if err := db.Begin(); err != nil {
			return err
		}
	}
	var categories *cache.CategoryCache
	if a.opts.CacheDir != "" {
		var err error
		categories, err = cache.Open(a.opts.CacheDir)
		if err != nil {
			return err
		}
		if a.overwriteCache {
			log.Printf("[info] Removing existing cache %s", a.opts.CacheDir)
			if err := categories.Remove(); err != nil {
				return errors.Wrap(err, "removing cache")
			}
			categories, err = cache.Open(a.opts.CacheDir)
			if err != nil {
				return err
			}
		}
		defer categories.Close()
	}

	err := a.runClassify(ctx, fname, progress, func(c classified) error {
		if err := writeJSON(out, output{ID: c.way.ID, Tags: c.attributes}); err != nil {
			return err
		}
		if db != nil {
			return db.Insert(database.Row{ID: c.way.ID, Attributes: c.attributes, Tags: c.way.Tags})
		}
		return nil
	}, categories)
	if err != nil {
		if db != nil {
			db.Abort()
		}
		return err
	}
	if db != nil {
		if err := db.End(); err != nil {
			return err
		}
	}
	return nil
}

// runClassify reads, translates and passes all ways of fname to emit.
// emit is always called from a single goroutine.
func (a *app) runClassify(ctx context.Context, fname string, progress *stats.Statistics, emit func(classified) error, categories *cache.CategoryCache) error {
	defer log.Step("Classifying " + fname)()
	translator := newTranslator()

	ways := make(chan element.Way, 256)
	results := make(chan classified, 256)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return reader.ReadFile(ctx, fname, reader.Config{Concurrency: a.opts.Workers}, ways)
	})
	g.Go(func() error {
		workers, wctx := errgroup.WithContext(ctx)
		workers.SetLimit(a.opts.Workers)
		for w := range ways {
			w := w
			workers.Go(func() error {
				attributes, err := translateWay(translator, w)
				if err != nil {
					log.Printf("[warn] skipping way %d: %s", w.ID, err)
					progress.AddError()
					return nil
				}
				select {
				case results <- classified{way: w, attributes: attributes}:
				case <-wctx.Done():
					return wctx.Err()
				}
				return nil
			})
		}
		err := workers.Wait()
		close(results)
		return err
	})
	g.Go(func() error {
		var batch []cache.Entry
		for c := range results {
			if err := emit(c); err != nil {
				return err
			}
			progress.AddWay(infrastructure.Coarse(c.attributes[translate.KeyRoadStyleSimplified]))
			if categories != nil {
				batch = append(batch, cache.Entry{
					ID:       c.way.ID,
					Category: infrastructure.Detailed(c.attributes[translate.KeyRoadStyle]),
				})
				if len(batch) >= cacheBatchSize {
					if err := categories.PutEntries(batch); err != nil {
						return errors.Wrap(err, "updating cache")
					}
					batch = batch[:0]
				}
			}
		}
		if categories != nil && len(batch) > 0 {
			if err := categories.PutEntries(batch); err != nil {
				return errors.Wrap(err, "updating cache")
			}
		}
		return nil
	})
	err := g.Wait()

	counts := progress.Stop()
	log.Printf("[info] Classified %d ways, skipped %d", counts.Ways, counts.Errors)
	for _, line := range counts.Summary() {
		log.Printf("[info]   %s", line)
	}
	return err
}

func translateWay(t *translate.Translator, w element.Way) (element.Tags, error) {
	tags := w.Tags.Clone()
	tags[translate.KeyID] = idString(w.ID)
	attributes, err := t.ToRadSim(tags)
	if err != nil {
		return nil, err
	}
	delete(attributes, translate.KeyID)
	return attributes, nil
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func writeJSON(out io.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = out.Write(b)
	return err
}
