// Command greenwave computes and improves traffic-light schedules.
//
// Usage:
//
//	greenwave <input file> <scheduler> [flags]
//
// The scheduler argument selects the starting solution: one of naive,
// traffic, adaptive, or load (with --schedule-file). With --rounds > 0
// the chosen improver refines the schedule until the round budget runs
// out, no improvement is found, or SIGINT/SIGTERM requests a graceful
// stop — the best schedule found so far is still written.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/greenwave/city"
	"github.com/katalvlaran/greenwave/construct"
	"github.com/katalvlaran/greenwave/improve"
	"github.com/katalvlaran/greenwave/schedule"
	"github.com/katalvlaran/greenwave/sim"
)

// tuning is the YAML shape of --config files.
type tuning struct {
	Phased struct {
		MaxAddTime         *int  `yaml:"max_add_time"`
		MaxSubTime         *int  `yaml:"max_sub_time"`
		AddNewStreets      *bool `yaml:"add_new_streets"`
		MaxStreetsPerInter *int  `yaml:"max_streets_per_inter"`
		Workers            *int  `yaml:"workers"`
	} `yaml:"phased"`
	Shuffle struct {
		MinWaitTime *int `yaml:"min_wait_time"`
		MaxStreets  *int `yaml:"max_streets"`
		MaxShuffles *int `yaml:"max_shuffles"`
	} `yaml:"shuffle"`
}

type flags struct {
	scheduleFile string
	outputFile   string
	configFile   string
	improverName string
	rounds       int
	workers      int
	seed         int64
	verbose      bool
}

func main() {
	var f flags

	cmd := &cobra.Command{
		Use:   "greenwave <input file> <scheduler>",
		Short: "Compute and improve traffic-light schedules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return run(cmd, args[0], args[1], f)
		},
	}
	cmd.Flags().StringVarP(&f.scheduleFile, "schedule-file", "l", "", "schedule file to load as starting solution (scheduler = load)")
	cmd.Flags().StringVarP(&f.outputFile, "output", "o", "", "file to save the schedule solution")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "YAML file with improver tuning")
	cmd.Flags().StringVarP(&f.improverName, "improver", "i", "phased", "improver to run: phased or shuffle")
	cmd.Flags().IntVarP(&f.rounds, "rounds", "r", 0, "number of improvement rounds (0 = none)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 1, "parallel candidate evaluations")
	cmd.Flags().Int64VarP(&f.seed, "seed", "s", 0, "RNG seed for the shuffle improver (0 = fixed default)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, inputFile, schedulerName string, f flags) error {
	if f.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inst, err := loadInstance(inputFile)
	if err != nil {
		return fmt.Errorf("failed to parse simulation file: %w", err)
	}
	fmt.Printf("Simulation\n----------\n%s\n\n", inst)

	sched, err := buildSchedule(inst, schedulerName, f.scheduleFile)
	if err != nil {
		return err
	}
	fmt.Printf("Schedule\n--------\n%s\n\n", sim.Run(sched))

	if f.rounds != 0 {
		improver, err := buildImprover(f)
		if err != nil {
			return err
		}
		runner := improve.Runner{MaxRounds: f.rounds}
		var score int64
		sched, score = runner.Run(ctx, improver, sched)
		logrus.Infof("improvement finished, score %d", score)
		fmt.Printf("Schedule\n--------\n%s\n\n", sim.Run(sched))
	}

	if f.outputFile != "" {
		out, err := os.Create(f.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", f.outputFile, err)
		}
		defer out.Close()
		if err := sched.Encode(out); err != nil {
			return fmt.Errorf("failed to write %q: %w", f.outputFile, err)
		}
	}

	return nil
}

func loadInstance(path string) (*city.Instance, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return city.Parse(in)
}

func buildSchedule(inst *city.Instance, schedulerName, scheduleFile string) (*schedule.Schedule, error) {
	switch schedulerName {
	case "load":
		if scheduleFile == "" {
			return nil, fmt.Errorf("scheduler %q requires --schedule-file", schedulerName)
		}
		in, err := os.Open(scheduleFile)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		sched, err := schedule.Decode(inst, in)
		if err != nil {
			return nil, fmt.Errorf("failed to parse schedule file: %w", err)
		}

		return sched, nil
	case "naive":
		return construct.Naive{}.Schedule(inst), nil
	case "traffic":
		return construct.Traffic{}.Schedule(inst), nil
	case "adaptive":
		return construct.Adaptive{}.Schedule(inst), nil
	default:
		return nil, fmt.Errorf("unknown scheduler %q: want load, naive, traffic or adaptive", schedulerName)
	}
}

func buildImprover(f flags) (improve.Improver, error) {
	var cfg tuning
	if f.configFile != "" {
		raw, err := os.ReadFile(f.configFile)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", f.configFile, err)
		}
	}

	switch f.improverName {
	case "phased":
		opts := improve.DefaultPhasedOptions()
		opts.Workers = f.workers
		setInt(&opts.MaxAddTime, cfg.Phased.MaxAddTime)
		setInt(&opts.MaxSubTime, cfg.Phased.MaxSubTime)
		setInt(&opts.MaxStreetsPerInter, cfg.Phased.MaxStreetsPerInter)
		setInt(&opts.Workers, cfg.Phased.Workers)
		if cfg.Phased.AddNewStreets != nil {
			opts.AddNewStreets = *cfg.Phased.AddNewStreets
		}

		return improve.NewPhased(opts), nil
	case "shuffle":
		opts := improve.DefaultShuffleOptions()
		opts.Seed = f.seed
		setInt(&opts.MinWaitTime, cfg.Shuffle.MinWaitTime)
		setInt(&opts.MaxStreets, cfg.Shuffle.MaxStreets)
		setInt(&opts.MaxShuffles, cfg.Shuffle.MaxShuffles)

		return improve.NewShuffle(opts), nil
	default:
		return nil, fmt.Errorf("unknown improver %q: want phased or shuffle", f.improverName)
	}
}

// setInt applies an optional config override.
func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
