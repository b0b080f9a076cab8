package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pagepulse/pagepulse/gen"
)

var (
	// CLI flags for the generation run
	seed     int64  // Seed for all random streams
	logLevel string // Log verbosity level
	outDir   string // Output directory for logs and the site artifact
	profile  string // Optional YAML site profile path
	maxTicks int    // Stop after this many ticks (0 = until interrupted)
	minWait  int    // Minimum inter-tick wait in seconds (overrides profile)
	maxWait  int    // Maximum inter-tick wait in seconds (overrides profile)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagepulse",
	Short: "Fabricates live website-engagement telemetry and a static page to match",
}

// runCmd starts the generation loop using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the engagement generation loop",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// Load the site profile (built-in defaults when none given)
		cfg := gen.DefaultConfig()
		if profile != "" {
			cfg, err = gen.LoadConfig(profile)
			if err != nil {
				logrus.Fatalf("unable to load site profile: %v", err)
			}
		}
		if cmd.Flags().Changed("min-wait") {
			cfg.MinWaitS = minWait
		}
		if cmd.Flags().Changed("max-wait") {
			cfg.MaxWaitS = maxWait
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			logrus.Fatalf("unable to create output directory %s: %v", outDir, err)
		}

		// Stage the image asset (placeholder when a.* is absent)
		cwd, err := os.Getwd()
		if err != nil {
			logrus.Fatalf("unable to determine working directory: %v", err)
		}
		imageRel, err := gen.EnsureAssets(outDir, gen.FindLocalImage(cwd, cfg.ImageBasename))
		if err != nil {
			logrus.Fatalf("unable to stage image asset: %v", err)
		}

		// Build the comment pool; extraction failures silently fall back
		pool := gen.EffectivePool(gen.LoadCommentPool(filepath.Join(cwd, cfg.CommentSource)))
		logrus.Infof("comment pool ready with %d entries", len(pool))

		accessLog, err := gen.NewAppender(filepath.Join(outDir, "access.log"))
		if err != nil {
			logrus.Fatalf("unable to open access log: %v", err)
		}
		defer accessLog.Close()
		commentLog, err := gen.NewAppender(filepath.Join(outDir, "comments_used.txt"))
		if err != nil {
			logrus.Fatalf("unable to open comment log: %v", err)
		}
		defer commentLog.Close()

		renderer := gen.NewSiteRenderer(filepath.Join(outDir, "index.html"))
		rng := gen.NewPartitionedRNG(seed)
		s := gen.NewScheduler(cfg, pool, rng, accessLog, commentLog, renderer, imageRel, maxTicks)

		// Interrupt between ticks is the sole graceful-shutdown path
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logrus.Info("live generation started (Ctrl+C to stop)")
		logrus.Infof("one visit every %d-%d seconds", cfg.MinWaitS, cfg.MaxWaitS)

		if err := s.Run(ctx); err != nil {
			logrus.Fatalf("generation aborted: %v", err)
		}

		s.Metrics.Log()
		reportLocation("access log", accessLog.Path())
		reportLocation("site artifact", renderer.Path())
	},
}

// reportLocation prints a final output location, absolute when resolvable.
func reportLocation(what, path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	logrus.Infof("%s: %s", what, path)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random generation")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outDir, "out", "site_out", "Output directory for logs and the site artifact")
	runCmd.Flags().StringVar(&profile, "profile", "", "Path to a YAML site profile (defaults used when empty)")
	runCmd.Flags().IntVar(&maxTicks, "max-ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	runCmd.Flags().IntVar(&minWait, "min-wait", 5, "Minimum wait between visits in seconds")
	runCmd.Flags().IntVar(&maxWait, "max-wait", 300, "Maximum wait between visits in seconds")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
