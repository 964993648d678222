// Package config handles configuration loading using viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"firestige.xyz/framelab/internal/log"
)

// Config is the top-level configuration. Every field has a working
// default: the tool runs without any config file at all.
type Config struct {
	Seed   SeedConfig   `mapstructure:"seed" yaml:"seed"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Log    log.Config   `mapstructure:"log" yaml:"log"`
}

// SeedConfig controls how the generation seed is chosen when the user
// passes none on the command line.
type SeedConfig struct {
	// Default is used when set to a non-zero value; otherwise a seed is
	// derived from the current time at startup.
	Default uint32 `mapstructure:"default" yaml:"default"`
}

// OutputConfig holds default output paths for the export commands.
type OutputConfig struct {
	PcapPath string `mapstructure:"pcap_path" yaml:"pcap_path"`
	PDFPath  string `mapstructure:"pdf_path" yaml:"pdf_path"`
}

// Load reads the configuration from path, or from ./framelab.yml when path
// is empty. A missing file yields the defaults; a malformed file is an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("framelab")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/framelab")
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed.default", 0)
	v.SetDefault("output.pcap_path", "framelab.pcap")
	v.SetDefault("output.pdf_path", "worksheet.pdf")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pattern", "%time [%level] %field %msg%n")
	v.SetDefault("log.time", "2006-01-02 15:04:05")
	v.SetDefault("log.file.enabled", false)
}
