package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nraihan/sysstatus/internal/config"
	"github.com/nraihan/sysstatus/internal/render"
	"github.com/nraihan/sysstatus/internal/snapshot"
)

// Version is set at build time via -ldflags "-X github.com/nraihan/sysstatus/cmd.Version=..."
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "sysstatus",
	Short:         "Display system information",
	Long:          `Sysstatus collects local machine and network facts plus optional weather data and prints them as an aligned terminal table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func Execute() error {
	rootCmd.Version = Version
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Bool("no-weather", false, "Skip weather information")
	rootCmd.Flags().Bool("no-colors", false, "Disable colored output")
	rootCmd.Flags().String("city", "", "City for weather information")
	rootCmd.Flags().String("config", "", "Path to configuration file (.env)")
	rootCmd.Flags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	noWeather, _ := cmd.Flags().GetBool("no-weather")
	noColors, _ := cmd.Flags().GetBool("no-colors")
	city, _ := cmd.Flags().GetString("city")
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")

	logger := newLogger(logLevel)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// An interrupt aborts the whole run; it is never caught per probe.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := snapshot.New(cfg, logger)

	var snap snapshot.Snapshot
	if city != "" && !noWeather {
		// Override flow: gather everything else first, then fetch weather
		// for the requested city and merge it at its contractual position.
		snap = collector.Collect(ctx, false)
		value, err := collector.Weather(ctx, city)
		if err != nil {
			logger.Error("failed to get weather", "city", city, "error", err)
			value = "Error: " + err.Error()
		}
		snap = snap.WithWeather(value)
	} else {
		snap = collector.Collect(ctx, !noWeather)
	}

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
		return ctx.Err()
	}

	colored := !noColors && isatty.IsTerminal(os.Stdout.Fd())
	fmt.Println(render.Table(snap, colored))

	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
