package persistent

import (
	"context"
	"errors"

	"atlas/pkg/logger"
	"atlas/pkg/store"
)

var ErrNotFound = errors.New("record not found")

// load reads a collection and degrades a malformed slot to an empty one.
func load[T any](ctx context.Context, s *store.Store, slot store.Slot, log *logger.Logger) ([]T, error) {
	records, err := store.Load[T](ctx, s, slot)
	var parseErr *store.ParseError
	if errors.As(err, &parseErr) {
		log.Error("Record store: %v", parseErr)
		return records, nil
	}
	return records, err
}

func loadValue[T any](ctx context.Context, s *store.Store, slot store.Slot, log *logger.Logger) (T, bool, error) {
	value, found, err := store.LoadValue[T](ctx, s, slot)
	var parseErr *store.ParseError
	if errors.As(err, &parseErr) {
		log.Error("Record store: %v", parseErr)
		return value, false, nil
	}
	return value, found, err
}

// upsert replaces the record with the same id in place or appends it.
func upsert[T any](records []T, item T, id func(T) string) []T {
	for i := range records {
		if id(records[i]) == id(item) {
			records[i] = item
			return records
		}
	}
	return append(records, item)
}

func remove[T any](records []T, match func(T) bool) ([]T, bool) {
	for i := range records {
		if match(records[i]) {
			return append(records[:i], records[i+1:]...), true
		}
	}
	return records, false
}
