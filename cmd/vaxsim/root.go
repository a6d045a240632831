package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vaxsim/internal/app"
	"github.com/heartmarshall/vaxsim/internal/config"
)

type rootFlags struct {
	lang       string
	maxBatches int
	startDate  string
	opsAddr    string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "vaxsim [language]",
		Short: "Vaccination campaign simulator",
		Long: `vaxsim tracks vaccine batches and inoculations on a simulated calendar.
Commands are read from stdin, one per line:

  c <batch> <dd-mm-yyyy> <doses> <vaccine>   create a batch
  l [vaccine...]                             list batches
  a <user> <vaccine>                         apply a vaccine
  r <batch>                                  remove a batch
  d <user> [dd-mm-yyyy] [batch]              delete history records
  u [user]                                   list history
  t [dd-mm-yyyy]                             show or advance the date
  q                                          quit

User names containing spaces are written in double quotes.`,
		Version:       app.BuildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, args, cfg); err != nil {
				return err
			}

			logger := app.NewLogger(cfg.Log)
			a, err := app.New(cfg, logger, out)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVar(&flags.lang, "lang", "", "message language as a BCP 47 tag (en, pt)")
	cmd.Flags().IntVar(&flags.maxBatches, "max-batches", 0, "maximum number of live batches")
	cmd.Flags().StringVar(&flags.startDate, "start-date", "", "initial simulated date (dd-mm-yyyy)")
	cmd.Flags().StringVar(&flags.opsAddr, "ops-addr", "", "listen address of the health and metrics server")

	return cmd
}

// apply overrides cfg with the flags set on the command line and validates
// the result. The positional language argument wins over --lang.
func (f rootFlags) apply(cmd *cobra.Command, args []string, cfg *config.Config) error {
	if cmd.Flags().Changed("lang") {
		cfg.Language = f.lang
	}
	if len(args) == 1 {
		cfg.Language = args[0]
	}
	if cmd.Flags().Changed("max-batches") {
		cfg.Store.MaxBatches = f.maxBatches
	}
	if cmd.Flags().Changed("start-date") {
		cfg.Clock.StartDate = f.startDate
	}
	if cmd.Flags().Changed("ops-addr") {
		cfg.Ops.Addr = f.opsAddr
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	return nil
}
