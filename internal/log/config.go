package log

// Config mirrors the `log:` block of the config file.
type Config struct {
	Level   string     `mapstructure:"level" yaml:"level"`
	Pattern string     `mapstructure:"pattern" yaml:"pattern"`
	Time    string     `mapstructure:"time" yaml:"time"`
	File    FileConfig `mapstructure:"file" yaml:"file"`
}

// FileConfig enables an optional rotating file appender.
type FileConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	Path       string `mapstructure:"path" yaml:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

func defaultConfig() Config {
	return Config{
		Level:   "info",
		Pattern: "%time [%level] %field %msg%n",
		Time:    "2006-01-02 15:04:05",
	}
}
