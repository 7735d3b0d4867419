// Package cmd implements the radsim command line tool.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/radsim/roadstyle"
	"github.com/radsim/roadstyle/config"
	"github.com/radsim/roadstyle/log"
	"github.com/radsim/roadstyle/stats"
)

type app struct {
	opts           config.Options
	httpprofile    string
	overwriteCache bool
}

// NewRootCmd returns the radsim command with all sub-commands.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "radsim",
		Short: "Translate OSM bicycle infrastructure to RadSim categories and back",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.opts.Load(); err != nil {
				return err
			}
			log.SetMinLevel(a.opts.MinLevel())
			if a.httpprofile != "" {
				stats.StartHttpPProf(a.httpprofile)
			}
			return nil
		},
	}
	a.opts.AddFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&a.httpprofile, "httpprofile", "", "bind address for profile server")

	root.AddCommand(a.classifyCmd())
	root.AddCommand(a.diffCmd())
	root.AddCommand(a.runCmd())
	root.AddCommand(a.dumpCmd())
	root.AddCommand(a.backmapCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s(%s-%s)\n", roadstyle.Version, runtime.Version(), runtime.GOARCH, runtime.GOOS)
			return nil
		},
	}
}

func Main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Println("[error]", err)
		os.Exit(1)
	}
}
