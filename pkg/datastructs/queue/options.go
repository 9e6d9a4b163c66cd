package queue

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-versionqueue/pkg/utils"
)

const (
	// DefaultElementCapacity is the initial Element Log capacity.
	DefaultElementCapacity = 4096

	// DefaultVersionCapacity is the initial Version Table capacity.
	DefaultVersionCapacity = 4096
)

type options struct {
	elementCapacity int
	versionCapacity int
	logger          *zap.Logger
}

// Option configures a Versioned queue.
type Option func(*options)

func defaultOptions() options {
	return options{
		elementCapacity: DefaultElementCapacity,
		versionCapacity: DefaultVersionCapacity,
		logger:          zap.NewNop(),
	}
}

// WithElementCapacity sets the initial element storage capacity.
// The value is rounded up to a power of two.
func WithElementCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.elementCapacity = utils.CeilToPowerOfTwo(n)
		}
	}
}

// WithVersionCapacity sets the initial version table capacity.
// The value is rounded up to a power of two.
func WithVersionCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.versionCapacity = utils.CeilToPowerOfTwo(n)
		}
	}
}

// WithLogger sets the logger used for growth events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
