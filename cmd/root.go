package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/navdrawer/internal/app"
	"github.com/zjrosen/navdrawer/internal/config"
	"github.com/zjrosen/navdrawer/internal/log"
	"github.com/zjrosen/navdrawer/internal/ui/styles"
)

func init() {
	// Query the terminal background before the program starts so the OSC 11
	// response cannot race with Bubble Tea's input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".navdrawer/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	logLevel  string
	cfg       config.Config
	cfgErr    error
)

var rootCmd = &cobra.Command{
	Use:     "navdrawer",
	Short:   "A page with a collapsible navigation menu",
	Long:    `A terminal page whose header carries a navigation menu toggle. The menu opens as a panel over a dimmed backdrop and can be dismissed with Escape, a backdrop click, or by following a link.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/navdrawer/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging (also NAVDRAWER_DEBUG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "debug",
		"minimum log level: debug, info, warn, error")
	rootCmd.Flags().String("toggle-key", "",
		"key that opens and closes the menu")
	rootCmd.Flags().Bool("watch", false,
		"reload links and sections when the config file changes")

	_ = viper.BindPFlag("toggle_key", rootCmd.Flags().Lookup("toggle-key"))
	_ = viper.BindPFlag("watch_config", rootCmd.Flags().Lookup("watch"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .navdrawer/config.yaml (current directory)
		// 2. ~/.config/navdrawer/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "navdrawer"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .navdrawer/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	cfg, cfgErr = config.Decode(viper.GetViper())
}

// configPath returns the file config was read from, or where it would be
// written.
func configPath() string {
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	return localConfigPath
}

func isDebug() bool {
	return debugFlag || os.Getenv("NAVDRAWER_DEBUG") != ""
}

func initLogging() (func(), error) {
	if !isDebug() {
		return func() {}, nil
	}

	logPath := os.Getenv("NAVDRAWER_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.Init(logPath)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.SetMinLevel(log.ParseLevel(logLevel))
	log.Info(log.CatConfig, "navdrawer starting", "version", version, "config", configPath())
	return cleanup, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyTheme(cfg.Theme.FlattenedColors()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	cleanup, err := initLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	zone.NewGlobal()

	markdownStyle := "light"
	if lipgloss.HasDarkBackground() {
		markdownStyle = "dark"
	}

	model := app.NewWithConfig(cfg, app.Options{
		ConfigPath:    configPath(),
		Debug:         isDebug(),
		MarkdownStyle: markdownStyle,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()

	// Release the menu, watcher and listeners of the last model.
	if fm, ok := final.(app.Model); ok {
		model = fm
	}
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
