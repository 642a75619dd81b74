package usecase

import (
	"context"
	"errors"
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

const (
	MinCourseClasses = 2

	MsgCourseBasicInfo    = "Por favor complete toda la información básica del curso"
	MsgCourseClassFields  = "Todas las clases deben tener título, duración, video y descripción"
	MsgCourseClassesCount = "El curso debe tener al menos 2 clases"
)

type CourseInput struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Category    string               `json:"category"`
	Level       string               `json:"level"`
	Duration    int                  `json:"duration"`
	Description string               `json:"description"`
	Image       string               `json:"image"`
	Classes     []models.CourseClass `json:"classes"`
	IsDraft     bool                 `json:"isDraft"`
}

type CourseUseCase interface {
	SaveCourse(ctx context.Context, userID string, in CourseInput) (*models.Course, error)
	ListMine(ctx context.Context, userID string) ([]models.Course, error)
	Browse(ctx context.Context, filter entity.CatalogFilter) ([]models.Course, error)
	Get(ctx context.Context, id string) (*models.Course, error)
	Delete(ctx context.Context, userID, id string) error
}

type courseUseCase struct {
	courseRepo     persistent.CourseRepository
	instructorRepo persistent.InstructorRepository
	submitter      *Submitter
	publisher      queue.Publisher
	logger         *logger.Logger
	now            func() time.Time
}

func NewCourseUseCase(
	courseRepo persistent.CourseRepository,
	instructorRepo persistent.InstructorRepository,
	submitter *Submitter,
	publisher queue.Publisher,
	logger *logger.Logger,
) CourseUseCase {
	return &courseUseCase{
		courseRepo:     courseRepo,
		instructorRepo: instructorRepo,
		submitter:      submitter,
		publisher:      publisher,
		logger:         logger,
		now:            time.Now,
	}
}

// ValidateCourse checks the basic info, the class count and the fields of every
// class, reporting all three together. Drafts may have fewer than two classes.
func ValidateCourse(in CourseInput) *validation.Report {
	r := validation.NewReport()

	if strings.TrimSpace(in.Title) == "" || in.Category == "" || in.Level == "" ||
		in.Duration <= 0 || strings.TrimSpace(in.Description) == "" || in.Image == "" {
		r.Add("course", validation.Fail(MsgCourseBasicInfo))
	} else {
		r.Add("course", validation.OK())
	}

	if !in.IsDraft && len(in.Classes) < MinCourseClasses {
		r.Add("classes", validation.Fail(MsgCourseClassesCount))
	} else {
		r.Add("classes", validation.OK())
	}

	fields := validation.OK()
	for _, cl := range in.Classes {
		if strings.TrimSpace(cl.Title) == "" || cl.Duration <= 0 || cl.Video == "" || strings.TrimSpace(cl.Description) == "" {
			fields = validation.Fail(MsgCourseClassFields)
			break
		}
	}
	r.Add("class_fields", fields)
	return r
}

func (uc *courseUseCase) SaveCourse(ctx context.Context, userID string, in CourseInput) (*models.Course, error) {
	instructor, err := verifiedInstructor(ctx, uc.instructorRepo, userID)
	if err != nil {
		return nil, err
	}

	var existing *models.Course
	if in.ID != "" {
		existing, err = uc.courseRepo.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		if !existing.OwnedBy(userID) {
			return nil, ErrNotOwner
		}
	}

	course := &models.Course{
		ID:          in.ID,
		Title:       strings.TrimSpace(in.Title),
		Category:    in.Category,
		Level:       in.Level,
		Duration:    in.Duration,
		Description: strings.TrimSpace(in.Description),
		Image:       in.Image,
		Classes:     in.Classes,
		IsDraft:     in.IsDraft,
		Instructor:  *instructor,
	}
	if course.Classes == nil {
		course.Classes = []models.CourseClass{}
	}

	err = uc.submitter.Run(ctx, latch.Key("course", userID),
		func() error { return ValidateCourse(in).Err() },
		func(ctx context.Context) error {
			now := uc.now().UTC()
			if existing != nil {
				course.CreatedAt = existing.CreatedAt
				course.UpdatedAt = &now
			} else {
				course.CreatedAt = now
			}
			return uc.courseRepo.Save(ctx, course)
		},
	)
	if err != nil {
		return nil, err
	}

	if !course.IsDraft {
		publish(uc.publisher, uc.logger, queue.EventCourseSubmitted, course)
	}
	uc.logger.Info("Course saved: id=%s draft=%t instructor=%s", course.ID, course.IsDraft, userID)
	return course, nil
}

func (uc *courseUseCase) ListMine(ctx context.Context, userID string) ([]models.Course, error) {
	courses, err := uc.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if c.OwnedBy(userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Browse lists published courses matching the filter.
func (uc *courseUseCase) Browse(ctx context.Context, filter entity.CatalogFilter) ([]models.Course, error) {
	courses, err := uc.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if c.IsDraft || !matchesCatalog(filter, c.Title, c.Description, c.Level, c.Category) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (uc *courseUseCase) Get(ctx context.Context, id string) (*models.Course, error) {
	return uc.courseRepo.GetByID(ctx, id)
}

func (uc *courseUseCase) Delete(ctx context.Context, userID, id string) error {
	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(userID) {
		return ErrNotOwner
	}
	if err := uc.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// verifiedInstructor returns the snapshot embedded into new content.
func verifiedInstructor(ctx context.Context, repo persistent.InstructorRepository, userID string) (*models.InstructorData, error) {
	verified, err := repo.IsVerified(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read instructor status: %w", err)
	}
	if !verified {
		return nil, ErrNotInstructor
	}

	data, err := repo.GetData(ctx, userID)
	if errors.Is(err, persistent.ErrNotFound) {
		data = &models.InstructorData{}
	} else if err != nil {
		return nil, err
	}
	data.UserID = userID
	return data, nil
}

func matchesCatalog(filter entity.CatalogFilter, title, description, level, category string) bool {
	if filter.Level != "" && !strings.EqualFold(filter.Level, level) {
		return false
	}
	if filter.Category != "" && !strings.EqualFold(filter.Category, category) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		return strings.Contains(strings.ToLower(title), q) || strings.Contains(strings.ToLower(description), q)
	}
	return true
}
