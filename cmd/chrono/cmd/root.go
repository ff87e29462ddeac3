package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/msto63/chrono/foundation/chrono"
	"github.com/msto63/chrono/foundation/core/log"
	"github.com/msto63/chrono/pkg/core/config"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// app carries what every command needs. Tests replace fs and clock.
type app struct {
	cfgFile string
	verbose bool

	fs     afero.Fs
	clock  chrono.Clock
	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "chrono",
		Short: "Calendar and duration calculations",
		Long: `chrono parses, formats and computes with dates, times, time spans
and calendar periods at 100 ns resolution between the years 1 and 9999.

Examples:
  chrono now --exact
  chrono parse "Wed 2012-02-29 15:34:20.033"
  chrono span "3 d 10 h 53 min 2 s 500 ms"
  chrono between 1994-07-18 2017-12-02
  chrono add 2012-01-31 P1M`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $CHRONO_CONFIG or ./chrono.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newNowCmd(a),
		newParseCmd(a),
		newSpanCmd(a),
		newBetweenCmd(a),
		newAddCmd(a),
		newTimestampCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the chrono command line
func Execute() error {
	a := &app{fs: afero.NewOsFs()}
	root := newRootCmd(a)
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.fs, ".env"); err != nil {
		return err
	}

	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.fs, a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv(a.fs)
	}
	if err != nil {
		return err
	}

	if a.clock == nil {
		if a.clock, err = a.cfg.NewClock(); err != nil {
			return err
		}
	}

	level := a.cfg.LogLevel()
	if a.verbose {
		level = log.LevelDebug
	}
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: a.cfg.LogFormat(),
		Output: cmd.ErrOrStderr(),
		Name:   a.cfg.General.Name,
		Clock:  a.clock,
	}).WithCorrelationID(uuid.NewString())

	a.logger.Debug("command started", log.Field("command", cmd.CommandPath()))
	return nil
}

// fail logs err and hands it back to cobra
func (a *app) fail(err error) error {
	if a.logger != nil {
		a.logger.LogError(err)
	}
	return err
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", label)), value)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}
