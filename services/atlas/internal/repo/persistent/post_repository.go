package persistent

import (
	"context"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/store"
)

type PostRepository interface {
	// List returns the feed newest first.
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	// Update applies fn to the stored post and saves the result.
	Update(ctx context.Context, id string, fn func(post *models.Post) error) (*models.Post, error)
}

type postRepository struct {
	store  *store.Store
	logger *logger.Logger
}

func NewPostRepository(s *store.Store, log *logger.Logger) PostRepository {
	return &postRepository{store: s, logger: log}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	return load[models.Post](ctx, r.store, store.SlotPosts, r.logger)
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.AssignID(store.NextID)
	return store.Update(ctx, r.store, store.SlotPosts, func(posts []models.Post) ([]models.Post, error) {
		return append([]models.Post{*post}, posts...), nil
	})
}

func (r *postRepository) Update(ctx context.Context, id string, fn func(post *models.Post) error) (*models.Post, error) {
	var updated *models.Post
	err := store.Update(ctx, r.store, store.SlotPosts, func(posts []models.Post) ([]models.Post, error) {
		for i := range posts {
			if posts[i].ID != id {
				continue
			}
			if err := fn(&posts[i]); err != nil {
				return nil, err
			}
			post := posts[i]
			updated = &post
			return posts, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
