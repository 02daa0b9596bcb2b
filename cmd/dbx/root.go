package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tomblancdev/dropbox-go"
	"github.com/tomblancdev/dropbox-go/internal/config"
	"github.com/tomblancdev/dropbox-go/middleware"
)

// offline marks commands that make no API call.
const offline = "offline"

// errNoToken is returned when a command needs a token and none is set.
var errNoToken = errors.New("no access token: set " + config.EnvToken + " or token in the configuration file")

// app holds the state shared by every command.
type app struct {
	configPath string
	logLevel   string
	async      bool

	cfg    *config.Config
	logger *slog.Logger
	client *dropbox.Client
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "dbx",
		Short: "Work with the files in a Dropbox account",
		Long: `dbx lists, uploads and watches the files of a Dropbox account.

The access token is read from ` + config.EnvToken + ` or from the configuration
file. Set ` + config.EnvTestSyncHost + ` and ` + config.EnvTestAsyncHost + ` to send
every call to test servers.`,
		Example: `  # Show who the token belongs to
  dbx whoami

  # List a folder and everything below it
  dbx ls /Photos --recursive

  # Upload a file, replacing what is there
  dbx put ./report.pdf /Reports/report.pdf --overwrite`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Configuration file (default "+config.DefaultPath()+")")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&a.async, "async", false, "Run calls through the async client")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}

	cmd.AddCommand(
		newWhoamiCommand(a),
		newSpaceCommand(a),
		newEchoCommand(a),
		newLsCommand(a),
		newStatCommand(a),
		newMkdirCommand(a),
		newRmCommand(a),
		newPutCommand(a),
		newWatchCommand(a),
		newFileRequestCommand(a),
		newVersionCommand(a),
	)
	return cmd
}

// setup loads the configuration, configures logging and builds the client.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Level)

	if cmd.Annotations[offline] != "" {
		return nil
	}
	if cfg.Token == "" {
		return errNoToken
	}

	interceptors := []dropbox.Interceptor{middleware.Logging(a.logger)}
	if limiter := cfg.Limiter(); limiter != nil {
		interceptors = append(interceptors, middleware.RateLimit(limiter))
	}

	opts := append(cfg.Options(), dropbox.WithInterceptors(interceptors...))
	a.client, err = dropbox.NewClient(opts...)
	return err
}

// newLogger configures slog with tint. Colour is used when w is a terminal.
func newLogger(w io.Writer, level string) *slog.Logger {
	ll := &slog.LevelVar{}
	switch level {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "warn":
		ll.Set(slog.LevelWarn)
	case "error":
		ll.Set(slog.LevelError)
	default:
		ll.Set(slog.LevelInfo)
	}

	noColor := true
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = colorable.NewColorable(f)
		noColor = false
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ll,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))
}

// call runs req in the mode selected by --async.
func call[Arg, Res any](ctx context.Context, a *app, req *dropbox.Request[Arg, Res]) (*Res, error) {
	if !a.async {
		return req.CallSync(ctx, a.client)
	}
	p, err := req.Call(ctx, a.client)
	if err != nil {
		return nil, err
	}
	return p.Await(ctx)
}
