package components

import (
	"github.com/alexisbeaulieu97/tuikit/internal/logger"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/events"
)

// Option configures the collaborators a widget talks to.
type Option func(*widgetOptions)

type widgetOptions struct {
	log *logger.Logger
	bus *events.KeyBus
}

// WithLogger routes input warnings and lifecycle debug entries to log.
func WithLogger(log *logger.Logger) Option {
	return func(o *widgetOptions) {
		o.log = log
	}
}

// WithKeyBus attaches the widget to the host's key bus instead of a
// private one.
func WithKeyBus(bus *events.KeyBus) Option {
	return func(o *widgetOptions) {
		o.bus = bus
	}
}

func applyOptions(opts []Option) widgetOptions {
	var o widgetOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
