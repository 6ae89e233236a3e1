package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/muv-academia/muv/cmd/muv/internal/config"
	"github.com/muv-academia/muv/cmd/muv/internal/watch"
	"github.com/muv-academia/muv/pkg/content"
	muverrors "github.com/muv-academia/muv/pkg/errors"
	"github.com/muv-academia/muv/pkg/log"
	"github.com/muv-academia/muv/pkg/terminal"
)

type runOptions struct {
	settings config.Settings
	dir      string
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{settings: config.Default()}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the landing page",
		Long: `Show the landing page in the terminal.

Settings come from muv.yaml in the project directory, then MUV_CONTENT,
MUV_WATCH, MUV_LOG_LEVEL, MUV_LOG_FILE and MUV_DURATION, then flags.
Logs are discarded unless a log file is set, since the page owns the
terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd.Flags())
		},
	}
	opts.bind(cmd.Flags())
	return cmd
}

func (o *runOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.dir, "dir", "", "project directory containing muv.yaml (default: nearest parent with muv.yaml)")
	fs.StringVar(&o.settings.ContentPath, "content", o.settings.ContentPath, "page content file (.yaml or .toml); built-in content when empty")
	fs.BoolVar(&o.settings.Watch, "watch", o.settings.Watch, "reload the content file when it changes")
	fs.StringVar(&o.settings.LogLevel, "log-level", o.settings.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&o.settings.LogFile, "log-file", o.settings.LogFile, "write logs to this file")
	fs.DurationVar(&o.settings.Duration, "duration", o.settings.Duration, "override the count-up duration of every badge")
}

func (o *runOptions) run(ctx context.Context, fs *pflag.FlagSet) error {
	if ctx == nil {
		ctx = context.Background()
	}

	changed := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	dir := o.dir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return err
		}
		dir = root
	}
	cfg, err := config.Resolve(dir, o.settings, changed)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	prev := log.Set(logger)
	defer log.Set(prev)

	page, err := loadPage(cfg.ContentPath)
	if err != nil {
		return err
	}
	logger.Info().
		Str("content", cfg.ContentPath).
		Bool("watch", cfg.Watch).
		Dur("duration", cfg.Duration).
		Msg("configuration")

	screen, err := tcell.NewScreen()
	if err != nil {
		return muverrors.E("run", muverrors.KindRender, err)
	}
	if err := screen.Init(); err != nil {
		return muverrors.E("run", muverrors.KindRender, err)
	}
	defer screen.Fini()

	app, err := terminal.NewApp(screen, page, terminal.Options{
		Duration: cfg.Duration,
		Logger:   &logger,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var reloads chan *content.Page
	if cfg.Watch {
		reloads = make(chan *content.Page, 1)
		w := watch.New(cfg.ContentPath)
		go func() {
			defer muverrors.Recover("run.watch")
			if err := w.Run(ctx, reloads); err != nil {
				muverrors.ReportError("run.watch", muverrors.KindContent, err)
			}
		}()
	}

	return app.Run(ctx, reloads)
}

func loadPage(path string) (*content.Page, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.Load(path)
}

// openLogger returns the run logger and a func that closes its file.
func openLogger(cfg *config.Resolved) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return log.New(io.Discard, cfg.LogLevel), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, &muverrors.Error{Op: "run", Kind: muverrors.KindConfig, Path: cfg.LogFile, Err: err}
	}
	return log.New(f, cfg.LogLevel), func() { f.Close() }, nil
}
