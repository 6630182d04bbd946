package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Dataset and filtering
	Input     string  `mapstructure:"input" yaml:"input"`
	MinRating float64 `mapstructure:"min_rating" yaml:"min_rating"`
	// Rankings
	TopN       int      `mapstructure:"top_n" yaml:"top_n"`
	Metric     string   `mapstructure:"metric" yaml:"metric"`
	Categories []string `mapstructure:"categories" yaml:"categories"`
	Correlate  []string `mapstructure:"correlate" yaml:"correlate"`
	// Charts
	Charts      []string `mapstructure:"charts" yaml:"charts"`
	OutputDir   string   `mapstructure:"output_dir" yaml:"output_dir"`
	ChartWidth  int      `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight int      `mapstructure:"chart_height" yaml:"chart_height"`

	Workers int `mapstructure:"workers" yaml:"workers"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Global {
	return &Global{
		Input:       "games_combined_cleaned.csv",
		MinRating:   0,
		TopN:        10,
		Metric:      "plays",
		Categories:  []string{"developer", "genre", "platform"},
		Correlate:   []string{"final_rating", "wishlists", "reviews"},
		Charts:      []string{"final_rating:plays", "wishlists:plays"},
		OutputDir:   ".",
		ChartWidth:  1024,
		ChartHeight: 768,
		Workers:     0,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".gamestats"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.gamestats/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("GAMESTATS")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("input", d.Input)
	v.SetDefault("min_rating", d.MinRating)
	v.SetDefault("top_n", d.TopN)
	v.SetDefault("metric", d.Metric)
	v.SetDefault("categories", d.Categories)
	v.SetDefault("correlate", d.Correlate)
	v.SetDefault("charts", d.Charts)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("chart_width", d.ChartWidth)
	v.SetDefault("chart_height", d.ChartHeight)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.TopN < 0 {
		return nil, fmt.Errorf("top_n must be >= 0, got %d", c.TopN)
	}
	return &c, nil
}
