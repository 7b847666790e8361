package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"termistat/internal/config"
	"termistat/internal/ui"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	noWireless := false

	cmd := &cobra.Command{
		Use:     "termistat",
		Short:   "Live terminal dashboard for Linux system metrics",
		Long:    "termistat samples memory, CPU, battery, disk, and network state once per second\nand renders colorized progress bars until you press Enter.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Wireless = !noWireless
			return ui.Run(config.FromEnv(cfg))
		},
	}
	cmd.Flags().DurationVar(&cfg.Interval, "interval", cfg.Interval, "refresh interval")
	cmd.Flags().IntVar(&cfg.BarWidth, "width", cfg.BarWidth, "progress bar width in cells")
	cmd.Flags().BoolVar(&noWireless, "no-wireless", false, "skip the iwconfig signal query")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
