package usecase

import (
	"context"
	"strings"
	"time"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/queue"
	"atlas/pkg/store"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/repo/persistent"
)

const (
	MsgEmptyPost    = "Escribe algo o agrega una imagen para publicar"
	MsgEmptyComment = "Escribe un comentario antes de enviar"

	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

type PostUseCase interface {
	Create(ctx context.Context, userID, text string, images []string) (*models.Post, error)
	Feed(ctx context.Context, limit, offset int) ([]models.Post, error)
	ToggleLike(ctx context.Context, userID, postID string) (bool, int, error)
	Comment(ctx context.Context, userID, postID, text string) (*models.Comment, error)
}

type postUseCase struct {
	postRepo  persistent.PostRepository
	profiles  ProfileUseCase
	publisher queue.Publisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	profiles ProfileUseCase,
	publisher queue.Publisher,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:  postRepo,
		profiles:  profiles,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *postUseCase) author(ctx context.Context, userID string) (models.PostAuthor, error) {
	profile, err := uc.profiles.Get(ctx, userID)
	if err != nil {
		return models.PostAuthor{}, err
	}
	return models.PostAuthor{
		UserID: userID,
		Name:   profile.Name,
		Career: profile.Career,
		Photo:  profile.Photo,
	}, nil
}

func (uc *postUseCase) Create(ctx context.Context, userID, text string, images []string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" && len(images) == 0 {
		return nil, validation.Failure("text", MsgEmptyPost)
	}

	author, err := uc.author(ctx, userID)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}

	post := &models.Post{
		Text:      text,
		Images:    images,
		Author:    author,
		Timestamp: uc.now().UTC(),
		LikedBy:   []string{},
		Comments:  []models.Comment{},
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	publish(uc.publisher, uc.logger, queue.EventPostCreated, post)
	return post, nil
}

// Feed pages through the posts newest first.
func (uc *postUseCase) Feed(ctx context.Context, limit, offset int) ([]models.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if offset >= len(posts) {
		return []models.Post{}, nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end], nil
}

func (uc *postUseCase) ToggleLike(ctx context.Context, userID, postID string) (bool, int, error) {
	var liked bool
	post, err := uc.postRepo.Update(ctx, postID, func(p *models.Post) error {
		liked = p.ToggleLike(userID)
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, post.Likes, nil
}

func (uc *postUseCase) Comment(ctx context.Context, userID, postID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validation.Failure("text", MsgEmptyComment)
	}

	author, err := uc.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:         store.NextID(),
		UserID:     userID,
		AuthorName: author.Name,
		Text:       text,
		CreatedAt:  uc.now().UTC(),
	}
	_, err = uc.postRepo.Update(ctx, postID, func(p *models.Post) error {
		p.Comments = append(p.Comments, comment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
