package cmd

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/radsim/roadstyle/cache"
	"github.com/radsim/roadstyle/infrastructure"
	"github.com/radsim/roadstyle/log"
	"github.com/radsim/roadstyle/reader"
)

// categoryChange is a single JSON line of the diff command. Old is empty
// for new ways, New is empty for deleted ways.
type categoryChange struct {
	ID            int64                   `json:"id"`
	Old           infrastructure.Detailed `json:"old,omitempty"`
	New           infrastructure.Detailed `json:"new,omitempty"`
	OldSimplified infrastructure.Coarse   `json:"old_simplified,omitempty"`
	NewSimplified infrastructure.Coarse   `json:"new_simplified,omitempty"`
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file.osc[.gz]>...",
		Short: "Report category changes of OSM change files against the cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.CacheDir == "" {
				return errors.New("diff requires --cachedir")
			}
			categories, err := cache.Open(a.opts.CacheDir)
			if err != nil {
				return err
			}
			defer categories.Close()
			for _, fname := range args {
				if err := a.diff(cmd.Context(), fname, categories, cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) diff(ctx context.Context, fname string, categories *cache.CategoryCache, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer log.Step("Processing " + fname)()
	classifier := infrastructure.NewClassifier()

	changes := make(chan reader.Change, 64)
	errc := make(chan error, 1)
	go func() {
		errc <- reader.ReadChangeFile(ctx, fname, reader.Config{}, changes)
	}()

	var err error
	var updated, deleted int
	for c := range changes {
		if err != nil {
			// drain, so that the reader can return
			continue
		}
		err = applyChange(classifier, categories, c, out)
		if c.Delete {
			deleted += 1
		} else {
			updated += 1
		}
	}
	if readErr := <-errc; readErr != nil {
		return readErr
	}
	if err != nil {
		return err
	}
	log.Printf("[info] %s: %d ways updated, %d deleted", fname, updated, deleted)
	return nil
}

func applyChange(classifier *infrastructure.Classifier, categories *cache.CategoryCache, c reader.Change, out io.Writer) error {
	old, err := categories.Get(c.Way.ID)
	if err == cache.NotFound {
		old = ""
	} else if err != nil {
		return errors.Wrapf(err, "reading way %d from cache", c.Way.ID)
	}

	change := categoryChange{ID: c.Way.ID, Old: old}
	if old != "" {
		change.OldSimplified = infrastructure.Simplify(old)
	}
	if c.Delete {
		if old == "" {
			return nil
		}
		if err := categories.Delete(c.Way.ID); err != nil {
			return errors.Wrapf(err, "deleting way %d from cache", c.Way.ID)
		}
		return writeJSON(out, change)
	}

	change.New = classifier.Classify(c.Way.Tags)
	change.NewSimplified = infrastructure.Simplify(change.New)
	if change.New == old {
		return nil
	}
	if err := categories.Put(c.Way.ID, change.New); err != nil {
		return errors.Wrapf(err, "updating way %d in cache", c.Way.ID)
	}
	return writeJSON(out, change)
}
