package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// DedupStats counts what a de-duplication pass changed.
type DedupStats struct {
	Removed    int `json:"removed"`
	Backfilled int `json:"backfilled"`
	Normalized int `json:"normalized"`
}

func (d DedupStats) Changed() bool {
	return d.Removed > 0 || d.Backfilled > 0 || d.Normalized > 0
}

// Deduplicate keeps the first record of every (title or username, createdAt or
// registeredAt) pair and gives every kept record a string id. Numeric ids of
// older user records are rewritten as strings. Records with neither part of
// the key are kept. Running it twice changes nothing more.
func Deduplicate(records []map[string]interface{}, next func() string) ([]map[string]interface{}, DedupStats) {
	var stats DedupStats
	seen := make(map[string]struct{}, len(records))
	unique := make([]map[string]interface{}, 0, len(records))

	for _, record := range records {
		if key, ok := dedupKey(record); ok {
			if _, dup := seen[key]; dup {
				stats.Removed++
				continue
			}
			seen[key] = struct{}{}
		}
		if n, ok := numericID(record); ok {
			record["id"] = n
			stats.Normalized++
		} else if id, _ := record["id"].(string); id == "" {
			record["id"] = next()
			stats.Backfilled++
		}
		unique = append(unique, record)
	}
	return unique, stats
}

func dedupKey(record map[string]interface{}) (string, bool) {
	name := firstString(record, "title", "username")
	at := firstString(record, "createdAt", "registeredAt")
	if name == "" && at == "" {
		return "", false
	}
	return name + "_" + at, true
}

func firstString(record map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := record[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Older user records carry numeric ids.
func numericID(record map[string]interface{}) (string, bool) {
	switch v := record["id"].(type) {
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

// CleanupSlots are de-duplicated once at startup.
var CleanupSlots = []Slot{SlotUsers, SlotCourses, SlotClasses}

// Cleanup de-duplicates the collection slots and re-saves only those that changed.
// A malformed slot is logged and left untouched.
func (s *Store) Cleanup(ctx context.Context) (map[Slot]DedupStats, error) {
	report := make(map[Slot]DedupStats, len(CleanupSlots))
	for _, slot := range CleanupSlots {
		stats, err := s.cleanupSlot(ctx, slot)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				s.logger.Error("Record store cleanup: %v", pe)
				continue
			}
			return report, err
		}
		report[slot] = stats
		if stats.Changed() {
			s.logger.Info("Record store cleanup: slot %s removed %d duplicates, backfilled %d ids, normalized %d ids", slot, stats.Removed, stats.Backfilled, stats.Normalized)
		}
	}
	return report, nil
}

func (s *Store) cleanupSlot(ctx context.Context, slot Slot) (DedupStats, error) {
	unlock := s.lock(slot)
	defer unlock()

	data, ok, err := s.raw(ctx, slot)
	if err != nil || !ok {
		return DedupStats{}, err
	}

	var records []map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return DedupStats{}, &ParseError{Slot: slot, Err: err}
	}

	unique, stats := Deduplicate(records, NextID)
	if !stats.Changed() {
		return stats, nil
	}
	if err := s.put(ctx, slot, unique); err != nil {
		return stats, fmt.Errorf("failed to save de-duplicated slot %s: %w", slot, err)
	}
	return stats, nil
}
