package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridsearch/puzzle"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	log     *logrus.Logger
	cfg     Config
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper(), log: logrus.New()}
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	root := &cobra.Command{
		Use:          "gridsearch",
		Short:        "Run grid and graph search puzzle solvers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log.SetOutput(cmd.ErrOrStderr())
			cfg, err := loadConfig(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			lvl, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log_level: %w", err)
			}
			a.log.SetLevel(lvl)
			a.cfg = cfg
			a.log.WithFields(cfg.Fields()).Debug("configuration loaded")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./gridsearch.yaml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.Int("workers", 0, "parallel workers for solvers that fan out (0 = GOMAXPROCS)")
	pf.String("input-dir", "inputs", "directory holding <year>/dayNN.txt inputs")
	mustBind(a.v, "log_level", pf.Lookup("log-level"))
	mustBind(a.v, "workers", pf.Lookup("workers"))
	mustBind(a.v, "input_dir", pf.Lookup("input-dir"))

	root.AddCommand(a.newRunCmd(), a.newListCmd())
	return root
}

func (a *app) newRunCmd() *cobra.Command {
	var (
		year, day int
		input     string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve one day, or every registered day of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if day != 0 {
				e, err := puzzle.Lookup(year, day)
				if err != nil {
					return err
				}
				return a.solve(cmd.OutOrStdout(), e, input)
			}
			if input != "" {
				return fmt.Errorf("--input needs --day")
			}
			ran := 0
			for _, e := range puzzle.All() {
				if e.Year != year {
					continue
				}
				if err := a.solve(cmd.OutOrStdout(), e, ""); err != nil {
					return err
				}
				ran++
			}
			if ran == 0 {
				return fmt.Errorf("%w: year %d", puzzle.ErrNotRegistered, year)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&year, "year", 0, "puzzle year")
	f.IntVar(&day, "day", 0, "puzzle day (0 = every registered day)")
	f.StringVar(&input, "input", "", "input file (default <input-dir>/<year>/dayNN.txt)")
	f.Int("ram-size", 0, "2024 day 18 memory side length")
	f.Int("ram-bytes", 0, "2024 day 18 bytes fallen for part one")
	f.Int("connections", 0, "2025 day 8 connection attempts")
	f.Int("robots-width", 0, "2024 day 14 room width")
	f.Int("robots-height", 0, "2024 day 14 room height")
	mustBind(a.v, "ram.size", f.Lookup("ram-size"))
	mustBind(a.v, "ram.bytes", f.Lookup("ram-bytes"))
	mustBind(a.v, "playground.connections", f.Lookup("connections"))
	mustBind(a.v, "robots.width", f.Lookup("robots-width"))
	mustBind(a.v, "robots.height", f.Lookup("robots-height"))
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, e := range puzzle.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.Key, e.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// solve runs one entry and prints its answer.
func (a *app) solve(w io.Writer, e puzzle.Entry, input string) error {
	if input == "" {
		input = filepath.Join(a.cfg.InputDir, fmt.Sprint(e.Year), fmt.Sprintf("day%02d.txt", e.Day))
	}
	fields := logrus.Fields{"year": e.Year, "day": e.Day, "name": e.Name}

	data, err := os.ReadFile(input)
	if err != nil {
		a.log.WithFields(fields).WithError(err).Error("reading input")
		return err
	}

	solver := puzzle.Configure(e.Solver, a.v)
	start := time.Now()
	ans, err := solver.Solve(string(data))
	fields["elapsed"] = time.Since(start).Round(time.Microsecond)
	if err != nil {
		a.log.WithFields(fields).WithError(err).Error("solve failed")
		return fmt.Errorf("%s: %w", e.Key, err)
	}
	a.log.WithFields(fields).Info("solved")

	_, err = fmt.Fprintf(w, "%s %s\n  part 1: %s\n  part 2: %s\n", e.Key, e.Name, ans.Part1, ans.Part2)
	return err
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
