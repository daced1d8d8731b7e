package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Ning0612/lstree/internal/config"
	"github.com/Ning0612/lstree/internal/logger"
	"github.com/Ning0612/lstree/internal/progress"
	"github.com/Ning0612/lstree/internal/service"
	"github.com/Ning0612/lstree/internal/tty"
)

// version is the application version, set via ldflags.
var version = "dev"

// progressInterval is how many entries pass between status line redraws
const progressInterval = 500

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "lstree [DIR]",
		Short: "List a directory as a tree with sizes, icons and permissions",
		Long: `lstree prints a directory tree with the disk usage of every entry,
directory totals, LS_COLORS styling, optional file icons and, in long
format, ls-style permissions.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfgFile, args)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (default: lstree.yaml in . or the user config dir)")
	f.IntP("level", "L", def.Level, "maximum depth to display, 0 for unlimited")
	f.BoolP("hidden", "H", def.Hidden, "show hidden files and directories")
	f.Bool("no-ignore", def.NoIgnore, "do not filter entries with .gitignore")
	f.BoolP("icons", "i", def.Icons, "show file icons")
	f.BoolP("long", "l", def.Long, "show permissions and the extended attribute marker")
	f.Bool("no-color", def.DisableColor, "disable colour output")
	f.BoolP("suppress-size", "s", def.SuppressSize, "do not show sizes")
	f.StringP("disk-usage", "d", string(def.DiskUsage), "size to report: logical or physical")
	f.StringP("unit", "u", string(def.Unit), "size unit: bin (KiB) or si (KB)")
	f.Int("scale", def.Scale, "number of decimal digits in sizes")
	f.String("sort", string(def.Sort), "sibling order: name, size or none")
	f.Bool("dirs-first", def.DirsFirst, "list directories before files")
	f.IntP("threads", "t", def.Threads, "parallel metadata readers, 0 for one per CPU")
	f.String("log-level", def.Log.Level, "diagnostic log level: debug, info, warn or error")
	f.String("log-format", def.Log.Format, "diagnostic log format: text or json")
	f.String("log-file", def.Log.File, "also write diagnostics to this file, rotated")

	return cmd
}

func run(cmd *cobra.Command, cfgFile string, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if len(args) == 1 {
		cfg.Dir = args[0]
	}
	if err := cfg.Resolve(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.NewConfig(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)); err != nil {
		return err
	}
	defer logger.Shutdown()

	svc, err := service.NewListService(cfg)
	if err != nil {
		return err
	}

	if cfg.IsTTY() && tty.IsTerminal(os.Stderr) {
		svc.SetProgressReporter(progress.NewCallbackReporter(progress.StatusLine(cmd.ErrOrStderr(), progressInterval)))
	}

	_, err = svc.Run(cmd.Context(), cmd.OutOrStdout())
	return err
}
