package usecase

import (
	"context"
	"testing"
	"time"

	"atlas/pkg/i18n"
	"atlas/pkg/jwt"
	"atlas/pkg/latch"
	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/pkg/queue"
	"atlas/pkg/store"
	"atlas/services/atlas/internal/repo/persistent"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixture struct {
	log         *logger.Logger
	store       *store.Store
	users       persistent.UserRepository
	instructors persistent.InstructorRepository
	courses     persistent.CourseRepository
	classes     persistent.ClassRepository
	posts       persistent.PostRepository
	profiles    persistent.ProfileRepository
	prefs       persistent.PreferenceRepository
	subs        persistent.SubscriptionRepository
	donations   persistent.DonationRepository
	bundle      *i18n.Bundle
	jwt         *jwt.Service
	submitter   *Submitter
	events      *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New()
	s := store.New(store.NewMemoryBackend(), log)
	bundle, err := i18n.Load()
	require.NoError(t, err)

	return &fixture{
		log:         log,
		store:       s,
		users:       persistent.NewUserRepository(s, log),
		instructors: persistent.NewInstructorRepository(s, log),
		courses:     persistent.NewCourseRepository(s, log),
		classes:     persistent.NewClassRepository(s, log),
		posts:       persistent.NewPostRepository(s, log),
		profiles:    persistent.NewProfileRepository(s, log),
		prefs:       persistent.NewPreferenceRepository(s),
		subs:        persistent.NewSubscriptionRepository(s, log),
		donations:   persistent.NewDonationRepository(s, log),
		bundle:      bundle,
		jwt:         jwt.NewService("test-secret"),
		submitter:   NewSubmitter(latch.NewSet(), 0, log),
		events:      &recordingPublisher{},
	}
}

func (f *fixture) verify(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, f.instructors.MarkVerified(context.Background(), userID, &models.InstructorData{
		Name:             "Laura Pérez",
		Email:            "laura@unam.mx",
		Institution:      "UNAM",
		VerificationDate: fixedNow,
	}))
}

func (f *fixture) register(t *testing.T, user models.User) *models.User {
	t.Helper()
	require.NoError(t, f.users.Create(context.Background(), &user, nil))
	return &user
}

type recordingPublisher struct {
	keys []string
}

func (p *recordingPublisher) PublishEvent(routingKey string, payload interface{}) error {
	p.keys = append(p.keys, routingKey)
	return nil
}

var _ queue.Publisher = (*recordingPublisher)(nil)

// blockingSleep holds every delayed save until release is closed.
func blockingSleep(started chan<- struct{}, release <-chan struct{}) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		started <- struct{}{}
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
