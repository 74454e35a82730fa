package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// now is truncated to the millisecond precision MongoDB stores.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func logger(ctx context.Context, component string) *zerolog.Logger {
	l := log.Ctx(ctx).With().Str("component", component).Logger()
	return &l
}

func publish(ctx context.Context, publisher EventPublisher, entity, action, key string, data interface{}) {
	if publisher == nil {
		return
	}

	publisher.Publish(ctx, entity+"_"+action, key, data)
}
