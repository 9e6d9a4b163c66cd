package settings

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding the config,
// e.g. VQUEUE_QUEUE_ELEMENT_CAPACITY.
const EnvPrefix = "VQUEUE"

// Defaults apply to keys set neither in the config file nor in the environment.
var Defaults = Config{
	Queue: Queue{
		ElementCapacity: 4096,
		VersionCapacity: 4096,
	},
	Logger: Logger{
		LogLevel:   "info",
		MaxBackups: 3,
		MaxAge:     28,
		MaxSize:    100,
	},
	Bench: Bench{
		Operations: 10_000_000,
		Parallel:   1,
	},
}

var validate = validator.New()

// Load reads the config from path (optional), environment variables and
// defaults, in decreasing priority, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the validate tags of cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults
	v.SetDefault("queue.element_capacity", d.Queue.ElementCapacity)
	v.SetDefault("queue.version_capacity", d.Queue.VersionCapacity)
	v.SetDefault("logger.log_level", d.Logger.LogLevel)
	v.SetDefault("logger.file_log_name", d.Logger.FileLogName)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.compress", d.Logger.Compress)
	v.SetDefault("bench.operations", d.Bench.Operations)
	v.SetDefault("bench.parallel", d.Bench.Parallel)
}
