package usecase

import (
	"context"
	"errors"
	"testing"

	"atlas/pkg/models"
	"atlas/pkg/queue"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClasses(f *fixture) *classUseCase {
	uc := NewClassUseCase(f.classes, f.instructors, f.submitter, f.events, f.log).(*classUseCase)
	uc.now = clock
	return uc
}

func classInput() ClassInput {
	return ClassInput{
		Title:       "Leyes de Newton",
		Category:    "ciencias",
		Level:       "basico",
		Duration:    45,
		Description: "Las tres leyes del movimiento",
		Video:       "newton.mp4",
		Image:       "newton.png",
	}
}

func TestSaveClass(t *testing.T) {
	f := newFixture(t)
	uc := newClasses(f)
	ctx := context.Background()

	_, err := uc.SaveClass(ctx, "u1", classInput())
	assert.ErrorIs(t, err, ErrNotInstructor)

	f.verify(t, "u1")
	missing := classInput()
	missing.Video = ""
	_, err = uc.SaveClass(ctx, "u1", missing)
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validation.MsgRequiredFields, verr.Error())

	class, err := uc.SaveClass(ctx, "u1", classInput())
	require.NoError(t, err)
	assert.Equal(t, models.ClassTypeSingle, class.Type)
	assert.Equal(t, []string{}, class.Files)
	assert.Equal(t, []string{queue.EventClassSubmitted}, f.events.keys)

	mine, err := uc.ListMine(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	found, err := uc.Browse(ctx, entity.CatalogFilter{Search: "newton"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestSaveClass_DraftIsNotPublished(t *testing.T) {
	f := newFixture(t)
	uc := newClasses(f)
	ctx := context.Background()
	f.verify(t, "u1")

	in := classInput()
	in.IsDraft = true
	_, err := uc.SaveClass(ctx, "u1", in)
	require.NoError(t, err)
	assert.Empty(t, f.events.keys)

	published, err := uc.Browse(ctx, entity.CatalogFilter{})
	require.NoError(t, err)
	assert.Empty(t, published)
}

func TestDeleteClass(t *testing.T) {
	f := newFixture(t)
	uc := newClasses(f)
	ctx := context.Background()
	f.verify(t, "u1")

	class, err := uc.SaveClass(ctx, "u1", classInput())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, "u2", class.ID), ErrNotOwner)
	require.NoError(t, uc.Delete(ctx, "u1", class.ID))
	assert.ErrorIs(t, uc.Delete(ctx, "u1", class.ID), ErrNotFound)
}
