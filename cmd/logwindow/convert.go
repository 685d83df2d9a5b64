package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tinytelemetry/logwindow/internal/clipboard"
	"github.com/tinytelemetry/logwindow/internal/logger"
	"github.com/tinytelemetry/logwindow/internal/model"
	"github.com/tinytelemetry/logwindow/internal/output"
)

const dateLayout = "2006-01-02"

// convertOptions holds the flags of the convert subcommand.
type convertOptions struct {
	TimeText string
	Date     string // YYYY-MM-DD, empty = today in the source zone
	LogType  string // empty = default-log-type from config
	Output   string
	Copy     bool
}

// convertEnv carries the side-effecting collaborators of runConvert.
type convertEnv struct {
	Out       io.Writer
	Clipboard clipboard.Writer
	Clock     model.Clock
	Log       *logger.Logger
}

func newConvertCmd(configPath *string) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert one local time and print the log search command",
		Long: `Convert a local wall-clock time to UTC and print the nginx log search
command for the window around it.

Examples:
  logwindow convert --time 6:30am
  logwindow convert --time 11:59pm --date 2024-06-01 --type access
  logwindow convert -t 6:30am -o json --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log, closeLog, err := cfg.openLogger(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()
			defer log.Sync()

			return runConvert(cfg, opts, convertEnv{
				Out:       cmd.OutOrStdout(),
				Clipboard: clipboard.System{},
				Clock:     model.RealClock{},
				Log:       log,
			})
		},
	}

	cmd.Flags().StringVarP(&opts.TimeText, "time", "t", "", "local time, e.g. 6:30am (required)")
	cmd.Flags().StringVarP(&opts.Date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&opts.LogType, "type", "l", "", "log type: error or access (default from config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "copy the command to the clipboard")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func runConvert(cfg appConfig, opts convertOptions, env convertEnv) error {
	conv, loc, err := cfg.newConverter()
	if err != nil {
		return err
	}

	typeName := opts.LogType
	if typeName == "" {
		typeName = cfg.DefaultLogType
	}
	logType, err := model.ParseLogType(typeName)
	if err != nil {
		return err
	}

	date := env.Clock.Now().In(loc)
	if d := strings.TrimSpace(opts.Date); d != "" {
		date, err = time.ParseInLocation(dateLayout, d, loc)
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", d)
		}
	}

	renderer, err := output.New(opts.Output, env.Out)
	if err != nil {
		return err
	}

	res, err := conv.Convert(opts.TimeText, date, logType)
	if err != nil {
		return fmt.Errorf("%w (use a format like 6:30am)", err)
	}
	env.Log.Debugw("converted", "utc", res.UTCISO8601, "logType", logType.String(), "zone", res.ZoneLabel)

	if opts.Copy {
		if err := env.Clipboard.WriteAll(res.Command); err != nil {
			// The command is still printed below.
			env.Log.Warnw("clipboard write failed", "err", err)
		}
	}

	return renderer.Render(res)
}
