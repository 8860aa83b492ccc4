package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"profiled/config"
	deliverycontext "profiled/internal/delivery/context"
	"profiled/internal/domain/entity"
	domainerrors "profiled/internal/domain/errors"
	"profiled/internal/domain/repository"
	"profiled/internal/domain/service"
	"profiled/internal/domain/username"
	"profiled/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager  repository.TransactionManager
	policy     *username.Policy
	qrcodeSvc  service.QRCodeService
	rootDomain string
	scheme     string
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Policy    *username.Policy
	QRCodeSvc service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	scheme := "https"
	if params.Config.Site.Scheme != "" {
		scheme = params.Config.Site.Scheme
	}

	return &profileService{
		txManager:  params.TxManager,
		policy:     params.Policy,
		qrcodeSvc:  params.QRCodeSvc,
		rootDomain: params.Config.Site.RootDomain,
		scheme:     scheme,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile owned by the caller.
func (srv *profileService) GetProfile(ctx context.Context, ownerID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// CreateProfile lazily creates the caller's profile on first dashboard visit.
// The username is derived from the identity's contact address and probed for
// uniqueness inside the same transaction that inserts the row.
func (srv *profileService) CreateProfile(ctx context.Context, owner *entity.Identity) (*entity.Profile, error) {
	srv.log(ctx).Info("Creating profile", slog.Any("ownerID", owner.ID))

	var created *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		_, err := profileRepo.FindByOwner(ctx, owner.ID)
		if err == nil {
			return errors.WithStack(domainerrors.ErrProfileAlreadyExists)
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check for existing profile")
		}

		name, err := generateDefaultUsername(ctx, profileRepo, srv.policy, owner.Email)
		if err != nil {
			return err
		}

		profile := &entity.Profile{
			OwnerID:  owner.ID,
			Username: name,
			Email:    owner.Email,
			FullName: owner.Name,
			Theme:    "minimal",
		}

		if err := profileRepo.Create(ctx, profile); err != nil {
			// The unique keys are the authoritative arbiters: a lost race
			// at commit time reads the same as a failed pre-check.
			if errors.Is(err, repository.ErrOwnerConflict) {
				return errors.WithStack(domainerrors.ErrProfileAlreadyExists)
			}
			if errors.Is(err, repository.ErrUsernameConflict) {
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			}

			return errors.Wrap(err, "failed to create profile")
		}
		created = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create profile", slog.Any("ownerID", owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile creation transaction")
	}

	srv.log(ctx).Debug("Profile created", slog.Any("ownerID", owner.ID), slog.String("username", created.Username))

	return created, nil
}

// UpdateProfile applies a partial update from the dashboard. A supplied
// username runs through the full policy with the owner's own row excluded.
func (srv *profileService) UpdateProfile(ctx context.Context, ownerID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("ownerID", ownerID))

	var updated *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if input.Username != nil {
			name, err := resolveUsernameCandidate(ctx, profileRepo, srv.policy, *input.Username, ownerID)
			if err != nil {
				return err
			}
			profile.Username = name
		}

		applyProfilePatch(profile, input)

		if err := profileRepo.Update(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrUsernameConflict) {
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			}

			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// applyProfilePatch copies the supplied partial fields onto the profile.
func applyProfilePatch(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Headline != nil {
		profile.Headline = *input.Headline
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Skills != nil {
		profile.Skills = *input.Skills
	}
	if input.Projects != nil {
		profile.Projects = *input.Projects
	}
	if input.Experience != nil {
		profile.Experience = *input.Experience
	}
	if input.Education != nil {
		profile.Education = *input.Education
	}
	if input.SocialLinks != nil {
		profile.SocialLinks = *input.SocialLinks
	}
	if input.Theme != nil {
		profile.Theme = *input.Theme
	}
}

// DeleteProfile removes the caller's profile by explicit owner action.
func (srv *profileService) DeleteProfile(ctx context.Context, ownerID uuid.UUID) error {
	srv.log(ctx).Info("Deleting profile", slog.Any("ownerID", ownerID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Delete(ctx, ownerID); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to delete profile")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute profile deletion transaction")
	}

	return nil
}

// SetPublished flips the public flag. Publishing enforces the
// minimum-required fields and reports every violated rule together.
func (srv *profileService) SetPublished(ctx context.Context, ownerID uuid.UUID, publish bool) (*usecase.PublishOutput, error) {
	srv.log(ctx).Info("Setting publication state", slog.Any("ownerID", ownerID), slog.Bool("publish", publish))

	var output *usecase.PublishOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if publish {
			if reasons := publishViolations(profile); len(reasons) > 0 {
				return errors.WithStack(domainerrors.NewValidationFailedError(reasons))
			}
		}

		profile.Published = publish
		profile.UpdatedAt = time.Now()

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update publication state")
		}

		output = &usecase.PublishOutput{Published: publish}
		if publish {
			output.URL = srv.publicURL(profile.Username)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute publish transaction")
	}

	return output, nil
}

// publishViolations collects every missing minimum-required field.
func publishViolations(profile *entity.Profile) []string {
	var reasons []string
	if strings.TrimSpace(profile.FullName) == "" {
		reasons = append(reasons, "請填寫顯示名稱")
	}
	if strings.TrimSpace(profile.Username) == "" {
		reasons = append(reasons, "請設定使用者名稱")
	}

	return reasons
}

// GetPublicProfile returns the published-only projection for a username.
// Unpublished profiles are indistinguishable from absent ones.
func (srv *profileService) GetPublicProfile(ctx context.Context, name string) (*entity.PublicProfile, error) {
	candidate := username.Normalize(name)

	var public *entity.PublicProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := repoFactory.ProfileRepo().FindByUsername(ctx, candidate)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrNotFound)
			}

			return errors.Wrap(err, "failed to find profile by username")
		}

		if !profile.Published {
			return errors.WithStack(domainerrors.ErrNotFound)
		}
		public = profile.PublicView()

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get public profile")
	}

	return public, nil
}

// ShareQR renders the caller's public portfolio URL as a PNG QR code.
func (srv *profileService) ShareQR(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	profile, err := srv.GetProfile(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !profile.Published {
		return nil, errors.WithStack(domainerrors.ErrNotPublished)
	}

	png, err := srv.qrcodeSvc.GenerateURLQR(srv.publicURL(profile.Username))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

// publicURL builds the per-user subdomain URL for a published profile.
func (srv *profileService) publicURL(name string) string {
	return fmt.Sprintf("%s://%s.%s/", srv.scheme, name, srv.rootDomain)
}
