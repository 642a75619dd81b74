package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"atlas/pkg/latch"
	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/queue"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/repo/persistent"
)

type ClassInput struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Duration    int      `json:"duration"`
	Description string   `json:"description"`
	Video       string   `json:"video"`
	Image       string   `json:"image"`
	Files       []string `json:"files"`
	IsDraft     bool     `json:"isDraft"`
}

type ClassUseCase interface {
	SaveClass(ctx context.Context, userID string, in ClassInput) (*models.Class, error)
	ListMine(ctx context.Context, userID string) ([]models.Class, error)
	Browse(ctx context.Context, filter entity.CatalogFilter) ([]models.Class, error)
	Get(ctx context.Context, id string) (*models.Class, error)
	Delete(ctx context.Context, userID, id string) error
}

type classUseCase struct {
	classRepo      persistent.ClassRepository
	instructorRepo persistent.InstructorRepository
	submitter      *Submitter
	publisher      queue.Publisher
	logger         *logger.Logger
	now            func() time.Time
}

func NewClassUseCase(
	classRepo persistent.ClassRepository,
	instructorRepo persistent.InstructorRepository,
	submitter *Submitter,
	publisher queue.Publisher,
	logger *logger.Logger,
) ClassUseCase {
	return &classUseCase{
		classRepo:      classRepo,
		instructorRepo: instructorRepo,
		submitter:      submitter,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
}

// ValidateClass requires every field except the attached files.
func ValidateClass(in ClassInput) *validation.Report {
	r := validation.NewReport()
	if strings.TrimSpace(in.Title) == "" || in.Category == "" || in.Level == "" || in.Duration <= 0 ||
		strings.TrimSpace(in.Description) == "" || in.Video == "" || in.Image == "" {
		return r.Add("class", validation.Fail(validation.MsgRequiredFields))
	}
	return r.Add("class", validation.OK())
}

func (uc *classUseCase) SaveClass(ctx context.Context, userID string, in ClassInput) (*models.Class, error) {
	instructor, err := verifiedInstructor(ctx, uc.instructorRepo, userID)
	if err != nil {
		return nil, err
	}

	var existing *models.Class
	if in.ID != "" {
		existing, err = uc.classRepo.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		if !existing.OwnedBy(userID) {
			return nil, ErrNotOwner
		}
	}

	class := &models.Class{
		ID:          in.ID,
		Title:       strings.TrimSpace(in.Title),
		Category:    in.Category,
		Level:       in.Level,
		Duration:    in.Duration,
		Description: strings.TrimSpace(in.Description),
		Video:       in.Video,
		Image:       in.Image,
		Files:       in.Files,
		IsDraft:     in.IsDraft,
		Type:        models.ClassTypeSingle,
		Instructor:  *instructor,
	}
	if class.Files == nil {
		class.Files = []string{}
	}

	err = uc.submitter.Run(ctx, latch.Key("class", userID),
		func() error { return ValidateClass(in).Err() },
		func(ctx context.Context) error {
			now := uc.now().UTC()
			if existing != nil {
				class.CreatedAt = existing.CreatedAt
				class.UpdatedAt = &now
			} else {
				class.CreatedAt = now
			}
			return uc.classRepo.Save(ctx, class)
		},
	)
	if err != nil {
		return nil, err
	}

	if !class.IsDraft {
		publish(uc.publisher, uc.logger, queue.EventClassSubmitted, class)
	}
	uc.logger.Info("Class saved: id=%s draft=%t instructor=%s", class.ID, class.IsDraft, userID)
	return class, nil
}

func (uc *classUseCase) ListMine(ctx context.Context, userID string) ([]models.Class, error) {
	classes, err := uc.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Class, 0, len(classes))
	for _, c := range classes {
		if c.OwnedBy(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (uc *classUseCase) Browse(ctx context.Context, filter entity.CatalogFilter) ([]models.Class, error) {
	classes, err := uc.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Class, 0, len(classes))
	for _, c := range classes {
		if c.IsDraft || !matchesCatalog(filter, c.Title, c.Description, c.Level, c.Category) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (uc *classUseCase) Get(ctx context.Context, id string) (*models.Class, error) {
	return uc.classRepo.GetByID(ctx, id)
}

func (uc *classUseCase) Delete(ctx context.Context, userID, id string) error {
	class, err := uc.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !class.OwnedBy(userID) {
		return ErrNotOwner
	}
	if err := uc.classRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}
