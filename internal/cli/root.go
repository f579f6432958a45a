package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/me/glamgiant/internal/config"
	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/identity"
	"github.com/me/glamgiant/internal/logging"
)

// sessionFileName is the identity file inside the state directory.
const sessionFileName = "session.json"

var (
	flagAPI       string
	flagStateDir  string
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
	flagPageSize  int

	logger   *slog.Logger
	api      *glamapi.Client
	session  *identity.SessionStore
	pageSize int
)

// NewRootCmd creates the root cobra command for glamctl.
func NewRootCmd() *cobra.Command {
	defaults := config.DefaultCLIConfig()

	root := &cobra.Command{
		Use:   "glamctl",
		Short: "glamctl - GlamGiant admin client",
		Long:  "glamctl signs in to the GlamGiant API and manages products, tests, users and orders according to your role.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLI(cmd.Context(), flagConfig)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("api") {
				cfg.APIURL = flagAPI
			}
			if flags.Changed("state-dir") {
				cfg.StateDir = flagStateDir
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			if flags.Changed("page-size") {
				cfg.PageSize = flagPageSize
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}

			logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			pageSize = cfg.PageSize

			dir, err := config.StateDir(cfg.StateDir)
			if err != nil {
				return err
			}
			api = glamapi.NewClient(cfg.APIURL, logger)
			session = identity.NewSessionStore(identity.NewFileStorage(filepath.Join(dir, sessionFileName)), api, logger)
			if err := session.Initialize(cmd.Context()); err != nil {
				return fmt.Errorf("restore session: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", defaults.APIURL, "GlamGiant API base URL (or GLAM_API_URL env)")
	root.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "Directory for the saved session (default ~/.glamgiant)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Optional YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", defaults.LogFormat, "Log format (text, json)")
	root.PersistentFlags().IntVar(&flagPageSize, "page-size", defaults.PageSize, "Rows per page in list output")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newRegisterCmd(),
		newProductsCmd(),
		newTestsCmd(),
		newUsersCmd(),
		newOrdersCmd(),
		newShopCmd(),
	)

	return root
}

// ErrNotLoggedIn is returned by commands that need a saved session.
var ErrNotLoggedIn = errors.New("not logged in, run 'glamctl login' first")

// ErrUnauthorized is returned when the saved identity's role may not use a
// command.
var ErrUnauthorized = errors.New("unauthorized")
