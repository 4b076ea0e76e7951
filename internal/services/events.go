package services

import (
	"io"
	"log/slog"
)

// EventPublisher publishes domain events. pkg/rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// MediaStore persists uploaded files. storage.LocalStore implements it.
type MediaStore interface {
	Save(folder, filename string, r io.Reader) (string, error)
	Remove(path string) error
}

// Upload is a file received from a client.
type Upload struct {
	Filename string
	Body     io.Reader
}

// publish sends an event if a publisher is configured. Failures are logged only.
func publish(p EventPublisher, routingKey string, payload any) {
	if p == nil {
		slog.Debug("event publisher is not configured, skipping event", "routing_key", routingKey)
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		slog.Warn("failed to publish event", "routing_key", routingKey, "error", err)
	}
}

// removeMedia deletes files that are no longer referenced, best effort.
func removeMedia(store MediaStore, paths []string) {
	if store == nil {
		return
	}
	for _, p := range paths {
		if err := store.Remove(p); err != nil {
			slog.Warn("failed to remove media file", "path", p, "error", err)
		}
	}
}
