package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen_%d", n)
	}
}

func TestDeduplicate_RemovesDuplicatesAndBackfillsIDs(t *testing.T) {
	records := []map[string]interface{}{
		{"title": "Álgebra", "createdAt": "2024-01-01T00:00:00Z"},
		{"id": "b", "title": "Álgebra", "createdAt": "2024-01-01T00:00:00Z"},
		{"id": "c", "title": "Álgebra", "createdAt": "2024-02-01T00:00:00Z"},
		{"id": "d", "username": "maria", "registeredAt": "2024-01-01T00:00:00Z"},
		{"id": "e", "username": "maria", "registeredAt": "2024-01-01T00:00:00Z"},
	}

	unique, stats := Deduplicate(records, counterIDs())

	require.Len(t, unique, 3)
	assert.Equal(t, "gen_1", unique[0]["id"])
	assert.Equal(t, "c", unique[1]["id"])
	assert.Equal(t, "d", unique[2]["id"])
	assert.Equal(t, DedupStats{Removed: 2, Backfilled: 1}, stats)
}

func TestDeduplicate_KeyOnlyByName(t *testing.T) {
	records := []map[string]interface{}{
		{"id": "a", "title": "Física"},
		{"id": "b", "title": "Física"},
	}

	unique, stats := Deduplicate(records, counterIDs())

	assert.Len(t, unique, 1)
	assert.Equal(t, 1, stats.Removed)
}

func TestDeduplicate_KeepsRecordsWithoutKey(t *testing.T) {
	records := []map[string]interface{}{
		{"id": "a"},
		{"id": "b"},
	}

	unique, stats := Deduplicate(records, counterIDs())

	assert.Len(t, unique, 2)
	assert.False(t, stats.Changed())
}

func TestDeduplicate_Idempotent(t *testing.T) {
	records := []map[string]interface{}{
		{"title": "A", "createdAt": "x"},
		{"title": "A", "createdAt": "x"},
		{"title": "B", "createdAt": "y"},
	}

	once, _ := Deduplicate(records, counterIDs())
	twice, stats := Deduplicate(once, counterIDs())

	assert.Equal(t, once, twice)
	assert.False(t, stats.Changed())
}

func TestDeduplicate_NumericIDBecomesString(t *testing.T) {
	records := []map[string]interface{}{
		{"id": json.Number("1700000000000"), "username": "luis"},
		{"id": float64(1700000000001), "username": "ana"},
	}

	unique, stats := Deduplicate(records, counterIDs())

	assert.Equal(t, "1700000000000", unique[0]["id"])
	assert.Equal(t, "1700000000001", unique[1]["id"])
	assert.Equal(t, DedupStats{Normalized: 2}, stats)

	_, stats = Deduplicate(unique, counterIDs())
	assert.False(t, stats.Changed())
}

func TestCleanup_RewritesNumericUserIDs(t *testing.T) {
	s, backend := newTestStore()
	ctx := context.Background()

	users := `[{"id":1700000000000,"username":"ana","registeredAt":"t"}]`
	require.NoError(t, backend.Put(ctx, string(SlotUsers), []byte(users)))

	report, err := s.Cleanup(ctx)
	require.NoError(t, err)
	assert.Equal(t, DedupStats{Normalized: 1}, report[SlotUsers])

	data, err := backend.Get(ctx, string(SlotUsers))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"1700000000000"`)
}

func TestCleanup_RewritesOnlyChangedSlots(t *testing.T) {
	s, backend := newTestStore()
	ctx := context.Background()

	courses := `[{"id":"1","title":"A","createdAt":"t"},{"id":"2","title":"A","createdAt":"t"}]`
	classes := `[{"id":"1","title":"Única","createdAt":"t"}]`
	require.NoError(t, backend.Put(ctx, string(SlotCourses), []byte(courses)))
	require.NoError(t, backend.Put(ctx, string(SlotClasses), []byte(classes)))
	require.NoError(t, backend.Put(ctx, string(SlotUsers), []byte("not json")))

	report, err := s.Cleanup(ctx)
	require.NoError(t, err)

	assert.Equal(t, DedupStats{Removed: 1}, report[SlotCourses])
	assert.False(t, report[SlotClasses].Changed())
	assert.NotContains(t, report, SlotUsers)

	data, err := backend.Get(ctx, string(SlotCourses))
	require.NoError(t, err)
	var stored []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Len(t, stored, 1)

	data, err = backend.Get(ctx, string(SlotClasses))
	require.NoError(t, err)
	assert.Equal(t, classes, string(data))

	data, err = backend.Get(ctx, string(SlotUsers))
	require.NoError(t, err)
	assert.Equal(t, "not json", string(data))
}

func TestCleanup_PreservesUnknownFields(t *testing.T) {
	s, backend := newTestStore()
	ctx := context.Background()

	users := `[{"username":"ana","registeredAt":"t","extra":{"n":1.50}},{"username":"ana","registeredAt":"t"}]`
	require.NoError(t, backend.Put(ctx, string(SlotUsers), []byte(users)))

	_, err := s.Cleanup(ctx)
	require.NoError(t, err)

	data, err := backend.Get(ctx, string(SlotUsers))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"extra":{"n":1.50}`)
	assert.Contains(t, string(data), `"id":"`)
}
