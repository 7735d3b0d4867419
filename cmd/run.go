package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/radsim/roadstyle/cache"
	"github.com/radsim/roadstyle/update"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Follow an OSM replication feed and report category changes",
		Long: "Downloads diffs from --replication-url (or waits for diffs in --diffdir)\n" +
			"and processes them like the diff command. Continues after the sequence\n" +
			"in last.state.txt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.opts.CacheDir == "" {
				return errors.New("run requires --cachedir")
			}
			categories, err := cache.Open(a.opts.CacheDir)
			if err != nil {
				return err
			}
			defer categories.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)
			defer stop()

			out := cmd.OutOrStdout()
			conf := update.Config{
				DiffDir:        a.opts.DiffDir,
				ReplicationURL: a.opts.ReplicationURL,
				Interval:       a.opts.ReplicationInterval,
			}
			return update.Run(ctx, conf, func(ctx context.Context, fname string) error {
				return a.diff(ctx, fname, categories, out)
			})
		},
	}
}
