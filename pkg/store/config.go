package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is what the CLI and TUI need to find the store and the log.
type Config interface {
	BasePath() string
	LogLevel() string
	LogFile() string
}

// LoadConfig reads .weekplan.yaml from $WEEKPLAN_CONFIG_PATH or the working
// directory. Every key can be overridden with a WEEKPLAN_ environment
// variable.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.weekplan.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "~/.weekplan.log")
	v.SetConfigName(".weekplan") // .yaml is implicit
	v.SetEnvPrefix("WEEKPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("WEEKPLAN_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString("log.file"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	return &fileConfig{
		Path:    path,
		Level:   v.GetString("log.level"),
		LogPath: logFile,
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Level   string `json:"logLevel"`
	LogPath string `json:"logFile"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

func (f *fileConfig) LogFile() string {
	return f.LogPath
}
