// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"profiled/internal/domain/entity"
	domainerrors "profiled/internal/domain/errors"
	"profiled/internal/domain/repository"
	"profiled/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByOwner retrieves the profile owned by the given identity.
func (repo *profileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by owner")
	}

	return toProfileDomain(&profileM)
}

// FindByUsername retrieves a profile by its normalized username.
func (repo *profileRepository) FindByUsername(ctx context.Context, name string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", name).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return toProfileDomain(&profileM)
}

// UsernameExists reports whether any profile other than excludeOwner's holds
// the given username.
func (repo *profileRepository) UsernameExists(ctx context.Context, name string, excludeOwner *uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("username = ?", name)
	if excludeOwner != nil {
		query = query.Where("owner_id <> ?", *excludeOwner)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count username rows")
	}

	return count > 0, nil
}

// Create persists a new profile row. Unique-key violations at commit time
// are translated to the same domain errors the application-level pre-checks
// produce, so a lost race reads identically to a failed pre-check.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if conflict := translateUniqueViolation(err); conflict != nil {
			return conflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile row.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM, err := fromProfileDomain(profile)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if conflict := translateUniqueViolation(err); conflict != nil {
			return conflict
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Delete removes the profile owned by the given identity.
func (repo *profileRepository) Delete(ctx context.Context, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.ProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// translateUniqueViolation maps a unique-constraint violation onto the
// domain conflict error for whichever index was hit, or nil when the error
// is not a uniqueness violation.
func translateUniqueViolation(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}
	if violatesIndex(err, "idx_profiles_owner") {
		return repository.ErrOwnerConflict
	}
	if violatesIndex(err, "idx_profiles_username") {
		return repository.ErrUsernameConflict
	}

	// Unknown unique index; the username key is the only one callers can
	// remediate, so default to it.
	return repository.ErrUsernameConflict
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) (*entity.Profile, error) {
	if data == nil {
		return nil, nil
	}

	var projects []entity.Project
	if err := unmarshalJSONColumn(data.Projects, &projects); err != nil {
		return nil, errors.Wrap(err, "failed to decode projects column")
	}

	var experience []entity.Experience
	if err := unmarshalJSONColumn(data.Experience, &experience); err != nil {
		return nil, errors.Wrap(err, "failed to decode experience column")
	}

	var education []entity.Education
	if err := unmarshalJSONColumn(data.Education, &education); err != nil {
		return nil, errors.Wrap(err, "failed to decode education column")
	}

	return &entity.Profile{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Username:    data.Username,
		Email:       data.Email,
		FullName:    data.FullName,
		Headline:    data.Headline,
		Bio:         data.Bio,
		Skills:      data.Skills,
		Projects:    projects,
		Experience:  experience,
		Education:   education,
		SocialLinks: data.SocialLinks.Data(),
		Theme:       data.Theme,
		Published:   data.Published,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel for persistence.
func fromProfileDomain(data *entity.Profile) (*model.ProfileModel, error) {
	if data == nil {
		return nil, nil
	}

	projects, err := marshalJSONColumn(data.Projects)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode projects column")
	}

	experience, err := marshalJSONColumn(data.Experience)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode experience column")
	}

	education, err := marshalJSONColumn(data.Education)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode education column")
	}

	return &model.ProfileModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Username:    data.Username,
		Email:       data.Email,
		FullName:    data.FullName,
		Headline:    data.Headline,
		Bio:         data.Bio,
		Skills:      datatypes.NewJSONSlice(data.Skills),
		Projects:    projects,
		Experience:  experience,
		Education:   education,
		SocialLinks: datatypes.NewJSONType(data.SocialLinks),
		Theme:       data.Theme,
		Published:   data.Published,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func marshalJSONColumn(value any) (datatypes.JSON, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}

func unmarshalJSONColumn(column datatypes.JSON, target any) error {
	if len(column) == 0 {
		return nil
	}

	return json.Unmarshal(column, target)
}
