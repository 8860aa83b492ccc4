package impl

import (
	"context"
	"testing"

	"profiled/internal/domain/entity"
	domainerrors "profiled/internal/domain/errors"
	"profiled/internal/domain/repository"
	"profiled/internal/domain/username"
	mockRepo "profiled/internal/mocks/repository"
	mockSvc "profiled/internal/mocks/service"
	"profiled/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	t         *testing.T
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	qrcodeSvc *mockSvc.MockQRCodeService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Policy:    username.NewPolicy(nil),
		QRCodeSvc: qrcodeSvc,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return profileServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		qrcodeSvc: qrcodeSvc,
	}
}

// onExecute stubs one transaction: the callback gets a factory prepared by
// setup, and the transaction itself reports result.
func (fx profileServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expected := &entity.Profile{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Username: "alice",
		FullName: "Alice Chen",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(expected, nil)
	})

	profile, err := fx.service.GetProfile(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.onExecute(ctx, errors.WithStack(domainerrors.ErrProfileNotFound), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrProfileNotFound)
	})

	profile, err := fx.service.GetProfile(ctx, ownerID)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := &entity.Identity{
		ID:    uuid.New(),
		Name:  "Alice Chen",
		Email: "alice@example.com",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(nil, repository.ErrProfileNotFound)
		profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(false, nil)
		profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	profile, err := fx.service.CreateProfile(ctx, owner)

	require.NoError(t, err)
	assert.Equal(t, owner.ID, profile.OwnerID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "Alice Chen", profile.FullName)
	assert.Equal(t, "minimal", profile.Theme)
	assert.False(t, profile.Published)
}

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := &entity.Identity{ID: uuid.New(), Email: "alice@example.com"}

	fx.onExecute(ctx, errors.WithStack(domainerrors.ErrProfileAlreadyExists), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(&entity.Profile{OwnerID: owner.ID}, nil)
	})

	profile, err := fx.service.CreateProfile(ctx, owner)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestProfileService_CreateProfile_UsernameConflictAtCommit(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	owner := &entity.Identity{ID: uuid.New(), Email: "alice@example.com"}

	// The pre-check passes but a concurrent writer wins the insert race.
	fx.onExecute(ctx, errors.WithStack(domainerrors.ErrUsernameTaken), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(nil, repository.ErrProfileNotFound)
		profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(false, nil)
		profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(repository.ErrUsernameConflict)
	})

	profile, err := fx.service.CreateProfile(ctx, owner)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestProfileService_UpdateProfile_Fields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Profile{
		OwnerID:  ownerID,
		Username: "alice",
		FullName: "Alice Chen",
		Theme:    "minimal",
	}

	headline := "Backend engineer"
	skills := []string{"go", "postgres"}
	input := &usecase.UpdateProfileInput{
		Headline: &headline,
		Skills:   &skills,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(existing, nil)
		profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	profile, err := fx.service.UpdateProfile(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", profile.Headline)
	assert.Equal(t, skills, profile.Skills)

	// Untouched fields survive the patch.
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "Alice Chen", profile.FullName)
}

func TestProfileService_UpdateProfile_UsernameChange(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Profile{OwnerID: ownerID, Username: "alice"}

	newName := "Alice-Dev"
	input := &usecase.UpdateProfileInput{Username: &newName}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(existing, nil)
		profileRepo.EXPECT().UsernameExists(ctx, "alice-dev", &ownerID).Return(false, nil)
		profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	profile, err := fx.service.UpdateProfile(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Equal(t, "alice-dev", profile.Username)
}

func TestProfileService_UpdateProfile_UsernameTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Profile{OwnerID: ownerID, Username: "alice"}

	newName := "bob"
	input := &usecase.UpdateProfileInput{Username: &newName}

	fx.onExecute(ctx, errors.WithStack(domainerrors.ErrUsernameTaken), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(existing, nil)
		profileRepo.EXPECT().UsernameExists(ctx, "bob", &ownerID).Return(true, nil)
	})

	profile, err := fx.service.UpdateProfile(ctx, ownerID, input)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestProfileService_UpdateProfile_UsernameReserved(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	existing := &entity.Profile{OwnerID: ownerID, Username: "alice"}

	newName := "admin"
	input := &usecase.UpdateProfileInput{Username: &newName}

	fx.onExecute(ctx, errors.WithStack(domainerrors.ErrUsernameReserved), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(existing, nil)
	})

	profile, err := fx.service.UpdateProfile(ctx, ownerID, input)

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameReserved)
}

func TestProfileService_DeleteProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.onExecute(ctx, errors.WithStack(domainerrors.ErrProfileNotFound), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().Delete(ctx, ownerID).Return(repository.ErrProfileNotFound)
	})

	err := fx.service.DeleteProfile(ctx, ownerID)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_SetPublished_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	profile := &entity.Profile{
		OwnerID:  ownerID,
		Username: "alice",
		FullName: "Alice Chen",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(profile, nil)
		profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	output, err := fx.service.SetPublished(ctx, ownerID, true)

	require.NoError(t, err)
	assert.True(t, output.Published)
	assert.Equal(t, "https://alice.profiled.site/", output.URL)
}

func TestProfileService_SetPublished_CollectsAllViolations(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	profile := &entity.Profile{
		OwnerID:  ownerID,
		Username: "",
		FullName: "   ",
	}

	expectedErr := domainerrors.NewValidationFailedError([]string{"請填寫顯示名稱", "請設定使用者名稱"})
	fx.onExecute(ctx, errors.WithStack(expectedErr), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(profile, nil)
	})

	output, err := fx.service.SetPublished(ctx, ownerID, true)

	assert.Nil(t, output)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationFailedError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"請填寫顯示名稱", "請設定使用者名稱"}, validationErr.Reasons())
}

func TestProfileService_SetPublished_UnpublishSkipsGate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	// Unpublishing never runs the completeness gate, even on a profile
	// that would fail it.
	profile := &entity.Profile{OwnerID: ownerID, Published: true}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(profile, nil)
		profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	output, err := fx.service.SetPublished(ctx, ownerID, false)

	require.NoError(t, err)
	assert.False(t, output.Published)
	assert.Empty(t, output.URL)
}

func TestProfileService_GetPublicProfile_Published(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profile := &entity.Profile{
		OwnerID:   uuid.New(),
		Username:  "alice",
		FullName:  "Alice Chen",
		Email:     "alice@example.com",
		Published: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(profile, nil)
	})

	public, err := fx.service.GetPublicProfile(ctx, "Alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", public.Username)
	assert.Equal(t, "Alice Chen", public.FullName)
}

func TestProfileService_GetPublicProfile_UnpublishedReadsAsMissing(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	profile := &entity.Profile{Username: "alice", Published: false}

	fx.onExecute(ctx, errors.WithStack(domainerrors.ErrNotFound), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByUsername(ctx, "alice").Return(profile, nil)
	})

	public, err := fx.service.GetPublicProfile(ctx, "alice")

	assert.Nil(t, public)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_ShareQR_Published(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	profile := &entity.Profile{
		OwnerID:   ownerID,
		Username:  "alice",
		Published: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(profile, nil)
	})

	fx.qrcodeSvc.EXPECT().GenerateURLQR("https://alice.profiled.site/").Return([]byte("png-bytes"), nil)

	png, err := fx.service.ShareQR(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestProfileService_ShareQR_NotPublished(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	profile := &entity.Profile{OwnerID: ownerID, Username: "alice"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().FindByOwner(ctx, ownerID).Return(profile, nil)
	})

	png, err := fx.service.ShareQR(ctx, ownerID)

	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrNotPublished)
}
