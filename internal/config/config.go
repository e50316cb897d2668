package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".monster-deck"
	envPrefix  = "DECK"

	KeyDeckPath = "deck.path"
	KeyLocale   = "ui.locale"
	KeyStyle    = "ui.style"
	KeyWidth    = "ui.width"
	KeyLogPath  = "log.path"
	KeyLogLevel = "log.level"
	KeyRemote   = "remote.addr"
	KeyProgress = "progress.path"
	KeyTrack    = "progress.track"

	DefaultRemoteAddr = "127.0.0.1:7420"
)

type Config struct {
	DeckPath string
	Locale   string
	Style    string
	Width    int
	LogPath  string
	LogLevel string
	Remote   string
	Progress string
	Track    bool
}

// Load reads ~/.monster-deck/config.toml into cfg if it exists and layers
// DECK_* environment variables on top.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))

	cfg.SetDefault(KeyDeckPath, "")
	cfg.SetDefault(KeyLocale, "en")
	cfg.SetDefault(KeyStyle, "dark")
	cfg.SetDefault(KeyWidth, 0)
	cfg.SetDefault(KeyLogPath, filepath.Join(homeDir, configDir, "deck.log"))
	cfg.SetDefault(KeyLogLevel, "info")
	cfg.SetDefault(KeyRemote, DefaultRemoteAddr)
	cfg.SetDefault(KeyProgress, filepath.Join(homeDir, configDir, "progress.db"))
	cfg.SetDefault(KeyTrack, false)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	loaded := Config{
		DeckPath: cfg.GetString(KeyDeckPath),
		Locale:   cfg.GetString(KeyLocale),
		Style:    cfg.GetString(KeyStyle),
		Width:    cfg.GetInt(KeyWidth),
		LogPath:  cfg.GetString(KeyLogPath),
		LogLevel: cfg.GetString(KeyLogLevel),
		Remote:   cfg.GetString(KeyRemote),
		Progress: cfg.GetString(KeyProgress),
		Track:    cfg.GetBool(KeyTrack),
	}
	if loaded.Width < 0 {
		return Config{}, fmt.Errorf("ui.width must not be negative, got %d", loaded.Width)
	}

	return loaded, nil
}
