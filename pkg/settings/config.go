package settings

type Config struct {
	Queue  Queue  `mapstructure:"queue"`
	Logger Logger `mapstructure:"logger"`
	Bench  Bench  `mapstructure:"bench"`
}

// Queue is the configuration for a versioned queue
type Queue struct {
	ElementCapacity int `mapstructure:"element_capacity" validate:"gte=1"`
	VersionCapacity int `mapstructure:"version_capacity" validate:"gte=1"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// Bench is the configuration for the timing harness
type Bench struct {
	Operations int `mapstructure:"operations" validate:"gte=1"` // Enqueues (and dequeues) per queue
	Parallel   int `mapstructure:"parallel" validate:"gte=1,lte=64"`
}
