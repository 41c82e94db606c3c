// Package config loads wavefx settings from defaults, an optional config
// file, WAVEFX_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string     `mapstructure:"log_level"`
	Echo     EchoConfig `mapstructure:"echo"`
	Gain     GainConfig `mapstructure:"gain"`
}

type EchoConfig struct {
	// DelaySamples is the echo offset in samples, not seconds.
	DelaySamples int     `mapstructure:"delay_samples"`
	Intensity    float64 `mapstructure:"intensity"`
}

type GainConfig struct {
	Up   float64 `mapstructure:"up"`
	Down float64 `mapstructure:"down"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Echo: EchoConfig{
			DelaySamples: 10000,
			Intensity:    0.8,
		},
		Gain: GainConfig{
			Up:   1.2,
			Down: 0.8,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Int("echo-delay-samples", defaults.Echo.DelaySamples, "Echo delay in samples")
	fs.Float64("echo-intensity", defaults.Echo.Intensity, "Echo intensity factor")
	fs.Float64("gain-up", defaults.Gain.Up, "Amplification factor for volume up")
	fs.Float64("gain-down", defaults.Gain.Down, "Attenuation factor for volume down")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)

	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	registerAliases(v)

	v.SetEnvPrefix("WAVEFX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("wavefx")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("echo.delay_samples", c.Echo.DelaySamples)
	v.SetDefault("echo.intensity", c.Echo.Intensity)
	v.SetDefault("gain.up", c.Gain.Up)
	v.SetDefault("gain.down", c.Gain.Down)
}

// registerAliases maps the flag spellings onto the config keys.
func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("echo.delay_samples", "echo-delay-samples")
	v.RegisterAlias("echo.intensity", "echo-intensity")
	v.RegisterAlias("gain.up", "gain-up")
	v.RegisterAlias("gain.down", "gain-down")
}
