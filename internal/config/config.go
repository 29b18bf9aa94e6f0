// Package config loads velfield settings from defaults, an optional
// JSON config file, and VELFIELD_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the config file looked up in the config directory.
const ConfigFileName = "velfield.cfg.json"

// FieldConfig holds field construction settings.
type FieldConfig struct {
	Method        string  `json:"method" mapstructure:"method"`
	V0            float64 `json:"v0" mapstructure:"v0"`
	K             float64 `json:"k" mapstructure:"k"`
	Kernel        string  `json:"kernel" mapstructure:"kernel"`
	Epsilon       float64 `json:"epsilon" mapstructure:"epsilon"`
	Smoothing     float64 `json:"smoothing" mapstructure:"smoothing"`
	MinTracePicks int     `json:"minTracePicks" mapstructure:"minTracePicks"`
	SmoothLevel   int     `json:"smoothLevel" mapstructure:"smoothLevel"`
	TimeStep      float64 `json:"timeStep" mapstructure:"timeStep"`
	Workers       int     `json:"workers" mapstructure:"workers"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir       string `json:"dir" mapstructure:"dir"`
	Delimiter string `json:"delimiter" mapstructure:"delimiter"`
	Binary    bool   `json:"binary" mapstructure:"binary"`
}

// Load reads configuration from the JSON file in configDir, applying
// defaults first. A missing file is not an error; a malformed one is.
// Environment variables prefixed VELFIELD_ override file values, with
// dots replaced by underscores (e.g. VELFIELD_FIELD_METHOD).
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("field.method", "rbf")
	viper.SetDefault("field.v0", 1500.0)
	viper.SetDefault("field.k", 0.5)
	viper.SetDefault("field.kernel", "multiquadric")
	viper.SetDefault("field.epsilon", 0.0)
	viper.SetDefault("field.smoothing", 0.0)
	viper.SetDefault("field.minTracePicks", 2)
	viper.SetDefault("field.smoothLevel", 0)
	viper.SetDefault("field.timeStep", 4.0)
	viper.SetDefault("field.workers", 0)

	viper.SetDefault("output.dir", ".")
	viper.SetDefault("output.delimiter", "\t")
	viper.SetDefault("output.binary", true)

	viper.SetConfigName(ConfigFileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	viper.SetEnvPrefix("velfield")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("error reading config file: %v", err)
		}
	}

	return nil
}

// GetFieldConfig returns the field construction settings.
func GetFieldConfig() FieldConfig {
	var cfg FieldConfig
	_ = viper.UnmarshalKey("field", &cfg)
	return cfg
}

// GetOutputConfig returns the export settings.
func GetOutputConfig() OutputConfig {
	var cfg OutputConfig
	_ = viper.UnmarshalKey("output", &cfg)
	return cfg
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat64 returns a float64 config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
