package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loog-project/followlist/internal/config"
	"github.com/loog-project/followlist/internal/person"
	"github.com/loog-project/followlist/internal/store"
	"github.com/loog-project/followlist/internal/store/memory"
	"github.com/loog-project/followlist/internal/ui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "followlist [FLAGS]",
	Short: "Follow and unfollow users in a terminal list",
	Long: `followlist shows a list of users, each with a Follow/Unfollow button.
Toggling a button updates the row right away and hands the change to the
configured follow store ("discard" forgets it, "memory" keeps it until exit).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

var setupLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().
	Caller().
	Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	// global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.followlist.yaml)")
	rootCmd.PersistentFlags().Bool(config.KeyDebug, false,
		"Enable debug mode, which will print additional information to the debug.log file")
	rootCmd.PersistentFlags().Bool(config.KeyTruncateDebug, false,
		"Truncate the debug.log file on startup, if it exists")
	rootCmd.PersistentFlags().Bool(config.KeyLegacyGender, false,
		"Record every generated user as male, like the first version of the list did")

	// followlist command flags
	rootCmd.Flags().StringP(config.KeyStore, "s", "discard",
		"Where follow changes go: discard or memory")
	rootCmd.Flags().StringP(config.KeyTheme, "t", "dark",
		"Color theme: dark or light")
	rootCmd.Flags().Bool(config.KeyMouse, true,
		"Enable mouse support (click a button to toggle it)")
	rootCmd.Flags().Bool(config.KeyAltScreen, true,
		"Use the alternate screen buffer")

	for _, key := range []string{config.KeyDebug, config.KeyTruncateDebug, config.KeyLegacyGender} {
		mustBind(key, viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)))
	}
	for _, key := range []string{config.KeyStore, config.KeyTheme, config.KeyMouse, config.KeyAltScreen} {
		mustBind(key, viper.BindPFlag(key, rootCmd.Flags().Lookup(key)))
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		setupLog.Error().Err(err).Msg("followlist failed")
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".followlist")
	}

	viper.SetEnvPrefix("FOLLOWLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		setupLog.Info().Msgf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// run starts the TUI and blocks until it exits.
func run(cfg config.Config) error {
	closeLog, err := setupDebugLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	followStore, err := newFollowStore(cfg.Store)
	if err != nil {
		return err
	}
	theme, ok := ui.ThemeByName(cfg.Theme)
	if !ok {
		return fmt.Errorf("%w: theme %q", config.ErrInvalid, cfg.Theme)
	}

	uiLogger := ui.NewUILogger()
	screen := ui.NewListScreen(followStore, uiLogger).WithMouse(cfg.Mouse)
	if cfg.LegacyGender {
		screen.WithGenerator(func() []person.Person {
			return person.GenerateWith(person.NewLegacy)
		})
	}

	var options []tea.ProgramOption
	if cfg.AltScreen {
		options = append(options, tea.WithAltScreen())
	}
	if cfg.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(ui.NewRoot(theme, uiLogger, screen), options...)
	uiLogger.Attach(program)

	log.Info().
		Str("store", cfg.Store).
		Str("theme", cfg.Theme).
		Msg("Starting TUI")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	log.Info().Msg("TUI program exited")
	return nil
}

// setupDebugLog points the global logger at debug.log in debug mode and silences it otherwise,
// since anything written to the terminal would break the TUI.
func setupDebugLog(cfg config.Config) (func(), error) {
	if !cfg.Debug {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}

	setupLog.Info().Msg("Debug mode is enabled, setting up debug logger...")
	fileMode := os.O_CREATE | os.O_WRONLY
	if cfg.TruncateDebug {
		fileMode |= os.O_TRUNC
	} else {
		fileMode |= os.O_APPEND
	}
	logFile, err := os.OpenFile("debug.log", fileMode, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening debug log file: %w", err)
	}

	log.Logger = zerolog.New(logFile).With().
		Timestamp().
		Caller().
		Logger().
		Level(zerolog.DebugLevel)

	return func() {
		if err := logFile.Close(); err != nil {
			setupLog.Error().Err(err).Msg("Error closing debug log file")
		}
	}, nil
}

func newFollowStore(kind string) (store.FollowStore, error) {
	switch kind {
	case store.KindDiscard:
		return store.Discard, nil
	case store.KindMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownKind, kind)
	}
}

func mustBind(flagName string, err error) {
	if err != nil {
		setupLog.Fatal().Err(err).Msgf("Failed to bind flag %s", flagName)
	}
}
