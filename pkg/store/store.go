package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"atlas/pkg/logger"
)

// Slot names a persisted collection or singleton.
type Slot string

const (
	SlotUsers              Slot = "users"
	SlotCourses            Slot = "my_courses"
	SlotClasses            Slot = "my_classes"
	SlotPosts              Slot = "user_posts"
	SlotProfile            Slot = "profile_data"
	SlotInstructorVerified Slot = "instructor_verified"
	SlotInstructorData     Slot = "instructor_data"
	SlotTheme              Slot = "theme"
	SlotLanguage           Slot = "language"
	SlotSubscriptions      Slot = "subscriptions"
	SlotDonations          Slot = "donations"
)

// ForUser scopes a per-user singleton slot, e.g. profile_data:<id>.
func (s Slot) ForUser(userID string) Slot {
	return Slot(string(s) + ":" + userID)
}

var ErrSlotNotFound = errors.New("slot not found")

// Backend is the raw byte store behind the named slots.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ParseError reports a slot whose content is not valid JSON for the expected shape.
type ParseError struct {
	Slot Slot
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("slot %s: malformed data: %v", e.Slot, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store serializes whole collections into slots. Writes replace the slot;
// concurrent writers in other processes follow last-writer-wins.
type Store struct {
	backend Backend
	logger  *logger.Logger
	locks   sync.Map
}

func New(backend Backend, log *logger.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  log,
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) lock(slot Slot) func() {
	v, _ := s.locks.LoadOrStore(slot, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *Store) raw(ctx context.Context, slot Slot) ([]byte, bool, error) {
	data, err := s.backend.Get(ctx, string(slot))
	if errors.Is(err, ErrSlotNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", slot, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *Store) put(ctx context.Context, slot Slot, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", slot, err)
	}
	if err := s.backend.Put(ctx, string(slot), data); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	return nil
}

// Remove deletes a slot. Removing an absent slot is not an error.
func (s *Store) Remove(ctx context.Context, slot Slot) error {
	unlock := s.lock(slot)
	defer unlock()

	if err := s.backend.Delete(ctx, string(slot)); err != nil && !errors.Is(err, ErrSlotNotFound) {
		return fmt.Errorf("failed to delete slot %s: %w", slot, err)
	}
	return nil
}

// Load reads a collection. An absent slot is an empty collection; a malformed
// one yields an empty collection together with a *ParseError.
func Load[T any](ctx context.Context, s *Store, slot Slot) ([]T, error) {
	data, ok, err := s.raw(ctx, slot)
	if err != nil {
		return []T{}, err
	}
	if !ok {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}, &ParseError{Slot: slot, Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save overwrites the slot with the full collection.
func Save[T any](ctx context.Context, s *Store, slot Slot, records []T) error {
	unlock := s.lock(slot)
	defer unlock()

	if records == nil {
		records = []T{}
	}
	return s.put(ctx, slot, records)
}

// Update runs load, fn and save while holding the slot lock of this process.
// A malformed slot is moved aside to <slot>.corrupt and fn starts from empty.
func Update[T any](ctx context.Context, s *Store, slot Slot, fn func([]T) ([]T, error)) error {
	unlock := s.lock(slot)
	defer unlock()

	records, err := Load[T](ctx, s, slot)
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		s.logger.Error("Record store: %v; continuing with an empty collection", parseErr)
		s.quarantine(ctx, slot)
	} else if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}
	if updated == nil {
		updated = []T{}
	}
	return s.put(ctx, slot, updated)
}

func (s *Store) quarantine(ctx context.Context, slot Slot) {
	data, ok, err := s.raw(ctx, slot)
	if err != nil || !ok {
		return
	}
	if err := s.backend.Put(ctx, string(slot)+".corrupt", data); err != nil {
		s.logger.Error("Record store: failed to keep a copy of corrupt slot %s: %v", slot, err)
	}
}

// LoadValue reads a singleton slot. found is false when the slot is absent or malformed.
func LoadValue[T any](ctx context.Context, s *Store, slot Slot) (value T, found bool, err error) {
	data, ok, err := s.raw(ctx, slot)
	if err != nil || !ok {
		return value, false, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, false, &ParseError{Slot: slot, Err: err}
	}
	return value, true, nil
}

func SaveValue[T any](ctx context.Context, s *Store, slot Slot, value T) error {
	unlock := s.lock(slot)
	defer unlock()

	return s.put(ctx, slot, value)
}

// LoadString reads a plain string slot such as theme or language.
func (s *Store) LoadString(ctx context.Context, slot Slot) (string, bool, error) {
	data, ok, err := s.raw(ctx, slot)
	if err != nil || !ok {
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Store) SaveString(ctx context.Context, slot Slot, value string) error {
	unlock := s.lock(slot)
	defer unlock()

	if err := s.backend.Put(ctx, string(slot), []byte(value)); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	return nil
}
