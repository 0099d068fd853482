package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sqltrail/sqltrail/internal/api"
	"github.com/sqltrail/sqltrail/internal/config"
	"github.com/sqltrail/sqltrail/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sqltrail",
	Short: "Terminal trainer for SQL queries",
	Long: "SQL Trail: practice SQL in the terminal. Pick a track, read the prompt, " +
		"write a query and compare your result with the expected one.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, nil, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(singleCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   *api.Client
	closeLog func() error
}

// setup loads configuration, opens the log file and builds the backend
// client. Callers must call close.
func setup(cmd *cobra.Command) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	client, err := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create client: %w", err), closeLog())
	}

	logger.Info("starting",
		zap.String("command", cmd.CommandPath()),
		zap.String("api_url", cfg.APIURL),
		zap.String("config_file", cfg.File),
		zap.String("version", version))

	return &env{cfg: cfg, logger: logger, client: client, closeLog: closeLog}, nil
}

func (e *env) close() {
	_ = e.closeLog()
}

// requestContext bounds a one-shot CLI call by the configured timeout.
func (e *env) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, e.cfg.Timeout)
}
