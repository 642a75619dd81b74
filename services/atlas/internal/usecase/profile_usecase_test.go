package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"atlas/pkg/models"
	"atlas/pkg/s3"
	"atlas/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) UploadFile(key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(key, body, contentType)
	return args.String(0), args.Error(1)
}

var _ ObjectStorage = (*MockObjectStorage)(nil)

func newProfiles(f *fixture, storage ObjectStorage) *profileUseCase {
	uc := NewProfileUseCase(f.profiles, f.users, NewMediaUseCase(storage, f.log), f.submitter, f.log).(*profileUseCase)
	uc.now = clock
	return uc
}

func profileInput() ProfileInput {
	return ProfileInput{
		Name:           "María González",
		Email:          "maria@example.com",
		Career:         "Ingeniería Química",
		EducationLevel: models.EducationUniversity,
		Interests:      []string{"Química", " Química ", "Física"},
	}
}

func TestProfile_DefaultsFromAccount(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, models.User{Name: "María", Lastname: "González", Username: "maria_g", Email: "maria@example.com"})
	uc := newProfiles(f, nil)

	profile, err := uc.Get(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "María González", profile.Name)
	assert.Equal(t, "maria@example.com", profile.Email)
	assert.Equal(t, models.DefaultInterests(), profile.Interests)

	_, err = uc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfile_Save(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, models.User{Name: "María", Username: "maria_g", Email: "maria@example.com"})
	uc := newProfiles(f, nil)
	ctx := context.Background()

	saved, err := uc.Save(ctx, user.ID, profileInput())
	require.NoError(t, err)
	assert.Equal(t, []string{"Química", "Física"}, saved.Interests)
	assert.Equal(t, fixedNow, saved.UpdatedAt)

	stored, err := f.profiles.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ingeniería Química", stored.Career)
}

func TestProfile_SaveRejectsOtherEmail(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, models.User{Name: "María", Username: "maria_g", Email: "maria@example.com"})
	uc := newProfiles(f, nil)

	in := profileInput()
	in.Email = "otra@example.com"
	_, err := uc.Save(context.Background(), user.ID, in)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgProfileEmailMismatch, verr.Details()["email"])

	_, err = f.profiles.Get(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfile_SaveRequiresFields(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, models.User{Name: "María", Username: "maria_g", Email: "maria@example.com"})
	uc := newProfiles(f, nil)

	in := profileInput()
	in.Career = " "
	_, err := uc.Save(context.Background(), user.ID, in)
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, validation.MsgRequiredFields, verr.Error())

	in = profileInput()
	in.EducationLevel = "kindergarten"
	_, err = uc.Save(context.Background(), user.ID, in)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgEducationLevel, verr.Details()["educationLevel"])
}

func TestProfile_UploadPhotoKeepsItAcrossSaves(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, models.User{Name: "María", Username: "maria_g", Email: "maria@example.com"})
	storage := new(MockObjectStorage)
	storage.On("UploadFile", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/"+user.ID+"/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, "image/png").Return("http://s3/atlas/avatar.png", nil)
	uc := newProfiles(f, storage)
	ctx := context.Background()

	profile, err := uc.UploadPhoto(ctx, user.ID, PhotoKindAvatar, FileInput{
		Name:        "avatar.PNG",
		ContentType: "image/png",
		Size:        3,
		Body:        bytes.NewReader([]byte("png")),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://s3/atlas/avatar.png", profile.Photo)
	assert.Empty(t, profile.CoverPhoto)

	saved, err := uc.Save(ctx, user.ID, profileInput())
	require.NoError(t, err)
	assert.Equal(t, "http://s3/atlas/avatar.png", saved.Photo)
	storage.AssertExpectations(t)

	_, err = uc.UploadPhoto(ctx, user.ID, "banner", FileInput{Name: "x.png"})
	assert.Error(t, err)
}

func TestMedia_Upload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	local := NewMediaUseCase(nil, f.log)
	file, err := local.Upload(ctx, "u1", FileInput{Name: "/tmp/notas.pdf", ContentType: "application/pdf", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, "notas.pdf", file.Name)
	assert.Empty(t, file.URL)
	assert.Equal(t, "notas.pdf", file.Ref())

	_, err = local.Upload(ctx, "u1", FileInput{Name: "video.mp4", Size: s3.MaxUploadSize + 1})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgFileTooLarge, verr.Error())

	storage := new(MockObjectStorage)
	storage.On("UploadFile", mock.Anything, mock.Anything, "video/mp4").Return("", s3.ErrFileTooLarge)
	remote := NewMediaUseCase(storage, f.log)
	_, err = remote.Upload(ctx, "u1", FileInput{Name: "video.mp4", ContentType: "video/mp4", Size: -1})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgFileTooLarge, verr.Error())
}
