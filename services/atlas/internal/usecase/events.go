package usecase

import (
	"atlas/pkg/logger"
	"atlas/pkg/queue"
)

// publish is best-effort: a broker failure never fails the request.
func publish(pub queue.Publisher, log *logger.Logger, routingKey string, payload interface{}) {
	if pub == nil {
		return
	}
	if err := pub.PublishEvent(routingKey, payload); err != nil {
		log.Error("Failed to publish %s event: %v", routingKey, err)
	}
}
