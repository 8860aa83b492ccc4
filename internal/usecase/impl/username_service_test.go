package impl

import (
	"context"
	"testing"

	domainerrors "profiled/internal/domain/errors"
	"profiled/internal/domain/repository"
	"profiled/internal/domain/username"
	mockRepo "profiled/internal/mocks/repository"
	"profiled/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// usernameServiceFixtures holds all test dependencies for username service tests.
type usernameServiceFixtures struct {
	t         *testing.T
	service   usecase.UsernameUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestUsernameService(t *testing.T) usernameServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewUsernameService(txManager, username.NewPolicy(nil), newDiscardLogger())

	return usernameServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

// onExecute stubs one transaction: the callback gets a factory prepared by
// setup, and the transaction itself reports result.
func (fx usernameServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestUsernameService_CheckUsername_Available(t *testing.T) {
	fx := createTestUsernameService(t)

	ctx := context.Background()
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(false, nil)
	})

	output, err := fx.service.CheckUsername(ctx, &usecase.CheckUsernameInput{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
	assert.True(t, output.Available)
}

func TestUsernameService_CheckUsername_NormalizesBeforeLookup(t *testing.T) {
	fx := createTestUsernameService(t)

	ctx := context.Background()
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(false, nil)
	})

	output, err := fx.service.CheckUsername(ctx, &usecase.CheckUsernameInput{Username: "  Alice "})

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
	assert.True(t, output.Available)
}

func TestUsernameService_CheckUsername_Taken(t *testing.T) {
	fx := createTestUsernameService(t)

	ctx := context.Background()
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(true, nil)
	})

	output, err := fx.service.CheckUsername(ctx, &usecase.CheckUsernameInput{Username: "alice"})

	require.NoError(t, err)
	assert.False(t, output.Available)
}

func TestUsernameService_CheckUsername_ExcludesOwnRow(t *testing.T) {
	fx := createTestUsernameService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().UsernameExists(ctx, "alice", &ownerID).Return(false, nil)
	})

	output, err := fx.service.CheckUsername(ctx, &usecase.CheckUsernameInput{
		Username:       "alice",
		ExcludeOwnerID: &ownerID,
	})

	require.NoError(t, err)
	assert.True(t, output.Available)
}

func TestUsernameService_CheckUsername_Reserved(t *testing.T) {
	fx := createTestUsernameService(t)

	// Reserved words short-circuit: the store is never consulted.
	output, err := fx.service.CheckUsername(context.Background(), &usecase.CheckUsernameInput{Username: "admin"})

	require.NoError(t, err)
	assert.Equal(t, "admin", output.Username)
	assert.False(t, output.Available)
}

func TestUsernameService_CheckUsername_FormatViolation(t *testing.T) {
	fx := createTestUsernameService(t)

	tests := []struct {
		name      string
		candidate string
		errorCode string
	}{
		{"too short", "ab", "USERNAME_TOO_SHORT"},
		{"too long", "123456789012345678901", "USERNAME_TOO_LONG"},
		{"invalid characters", "a_b", "USERNAME_INVALID_CHARACTERS"},
		{"edge hyphen", "-abc", "USERNAME_EDGE_HYPHEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CheckUsername(context.Background(), &usecase.CheckUsernameInput{Username: tt.candidate})

			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.errorCode, appErr.ErrorCode())
		})
	}
}

func TestUsernameService_CheckUsername_StoreError(t *testing.T) {
	fx := createTestUsernameService(t)

	ctx := context.Background()
	dbError := errors.New("connection refused")

	fx.onExecute(ctx, errors.Wrap(dbError, "failed to check username existence"), func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(false, dbError)
	})

	output, err := fx.service.CheckUsername(ctx, &usecase.CheckUsernameInput{Username: "alice"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to check username availability")
}

func TestGenerateDefaultUsername_BaseAvailable(t *testing.T) {
	ctx := context.Background()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(false, nil)

	name, err := generateDefaultUsername(ctx, profileRepo, username.NewPolicy(nil), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestGenerateDefaultUsername_ProbesSuffixes(t *testing.T) {
	ctx := context.Background()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().UsernameExists(ctx, "alice", (*uuid.UUID)(nil)).Return(true, nil)
	profileRepo.EXPECT().UsernameExists(ctx, "alice1", (*uuid.UUID)(nil)).Return(true, nil)
	profileRepo.EXPECT().UsernameExists(ctx, "alice2", (*uuid.UUID)(nil)).Return(false, nil)

	name, err := generateDefaultUsername(ctx, profileRepo, username.NewPolicy(nil), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "alice2", name)
}

func TestGenerateDefaultUsername_SkipsReservedBase(t *testing.T) {
	ctx := context.Background()
	profileRepo := mockRepo.NewMockProfileRepository(t)

	// "admin" is reserved so the probe starts at admin1 without touching
	// the store for the bare base.
	profileRepo.EXPECT().UsernameExists(ctx, "admin1", (*uuid.UUID)(nil)).Return(false, nil)

	name, err := generateDefaultUsername(ctx, profileRepo, username.NewPolicy(nil), "admin@example.com")

	require.NoError(t, err)
	assert.Equal(t, "admin1", name)
}

func TestGenerateDefaultUsername_FallbackBase(t *testing.T) {
	ctx := context.Background()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().UsernameExists(ctx, "user", (*uuid.UUID)(nil)).Return(false, nil)

	name, err := generateDefaultUsername(ctx, profileRepo, username.NewPolicy(nil), "x@example.com")

	require.NoError(t, err)
	assert.Equal(t, "user", name)
}

func TestGenerateDefaultUsername_Exhausted(t *testing.T) {
	ctx := context.Background()
	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().UsernameExists(ctx, mock.AnythingOfType("string"), (*uuid.UUID)(nil)).Return(true, nil)

	_, err := generateDefaultUsername(ctx, profileRepo, username.NewPolicy(nil), "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameExhausted)
}
