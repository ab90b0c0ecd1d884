package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/limaJavier/cargolp/pkg/lp"
	"github.com/spf13/viper"
)

const EnvPrefix = "CARGOLP"

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// Config holds every setting of the cargolp binaries
type Config struct {
	// Variable naming scheme: "compact" (x12) or "delimited" (x_1_2)
	Naming string `mapstructure:"naming"`
	// Decimals of the density coefficients, -1 for the shortest exact representation
	Precision int `mapstructure:"precision"`
	// Upper bound on the size of a generated model in bytes, 0 for no bound
	MaxModelBytes int          `mapstructure:"maxModelBytes"`
	Log           LogConfig    `mapstructure:"log"`
	Server        ServerConfig `mapstructure:"server"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("naming", "compact")
	v.SetDefault("precision", 2)
	v.SetDefault("maxModelBytes", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("server.address", ":8080")
}

// New returns a viper instance with defaults and CARGOLP_* environment overrides (e.g. CARGOLP_LOG_LEVEL)
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and returns the validated configuration
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("cannot read config file %s: %w", file, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if _, err := lp.ParseNaming(c.Naming); err != nil {
		errs = append(errs, err)
	}
	if c.Precision < -1 {
		errs = append(errs, fmt.Errorf("precision must be >= -1, got %d", c.Precision))
	}
	if c.MaxModelBytes < 0 {
		errs = append(errs, fmt.Errorf("maxModelBytes must be >= 0, got %d", c.MaxModelBytes))
	}
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address must not be empty"))
	}
	return errors.Join(errs...)
}

// GeneratorOptions converts the configuration into lp.Options; c must be valid
func (c Config) GeneratorOptions() lp.Options {
	options := lp.DefaultOptions()
	options.Naming, _ = lp.ParseNaming(c.Naming)
	options.Precision = c.Precision
	options.MaxBytes = c.MaxModelBytes
	return options
}
