package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/radsim/roadstyle/cache"
	"github.com/radsim/roadstyle/infrastructure"
	"github.com/radsim/roadstyle/log"
	"github.com/radsim/roadstyle/stats"
)

// cachedWay is a single JSON line of the dump command.
type cachedWay struct {
	ID         int64                   `json:"id"`
	Category   infrastructure.Detailed `json:"category"`
	Simplified infrastructure.Coarse   `json:"simplified"`
}

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the cached category of all ways",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.CacheDir == "" {
				return errors.New("dump requires --cachedir")
			}
			categories, err := cache.Open(a.opts.CacheDir)
			if err != nil {
				return err
			}
			defer categories.Close()
			return dump(categories, cmd.OutOrStdout(), stats.StatsReporter(0))
		},
	}
}

func dump(categories *cache.CategoryCache, out io.Writer, progress *stats.Statistics) error {
	err := categories.Iter(func(e cache.Entry) error {
		w := cachedWay{ID: e.ID, Category: e.Category, Simplified: infrastructure.Simplify(e.Category)}
		progress.AddWay(w.Simplified)
		return writeJSON(out, w)
	})
	counts := progress.Stop()
	if err != nil {
		return errors.Wrap(err, "reading cache")
	}
	log.Printf("[info] %d ways in cache", counts.Ways)
	for _, line := range counts.Summary() {
		log.Printf("[info]   %s", line)
	}
	return nil
}
