// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "profiled/internal/delivery/context"
	domainerrors "profiled/internal/domain/errors"
	"profiled/internal/domain/repository"
	"profiled/internal/domain/username"
	"profiled/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// maxDefaultUsernameAttempts caps the suffix probe loop. The suffix space is
// unbounded in principle; the cap turns a pathological store into an
// internal error instead of an endless scan.
const maxDefaultUsernameAttempts = 10000

// usernameService implements the UsernameUsecase interface.
type usernameService struct {
	txManager repository.TransactionManager
	policy    *username.Policy
	logger    *slog.Logger
}

// NewUsernameService is the constructor for usernameService.
func NewUsernameService(
	txManager repository.TransactionManager,
	policy *username.Policy,
	logger *slog.Logger,
) usecase.UsernameUsecase {
	return &usernameService{
		txManager: txManager,
		policy:    policy,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *usernameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckUsername validates the candidate and reports its availability.
func (srv *usernameService) CheckUsername(ctx context.Context, input *usecase.CheckUsernameInput) (*usecase.CheckUsernameOutput, error) {
	candidate := username.Normalize(input.Username)

	if err := username.ValidateFormat(candidate); err != nil {
		return nil, formatViolation(err)
	}

	if srv.policy.IsReserved(candidate) {
		srv.log(ctx).Debug("username reserved", slog.String("username", candidate))

		return &usecase.CheckUsernameOutput{Username: candidate, Available: false}, nil
	}

	var available bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.ProfileRepo().UsernameExists(ctx, candidate, input.ExcludeOwnerID)
		if err != nil {
			return errors.Wrap(err, "failed to check username existence")
		}
		available = !exists

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	return &usecase.CheckUsernameOutput{Username: candidate, Available: available}, nil
}

// formatViolation maps a policy format error to a structured AppError.
func formatViolation(err error) error {
	var formatErr *username.FormatError
	if errors.As(err, &formatErr) {
		return domainerrors.NewFormatViolationError(string(formatErr.Reason), formatErr.Error())
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}

// resolveUsernameCandidate runs the full username policy for an owner-supplied
// candidate: normalize, format, reserved list, then availability with the
// owner's own row excluded. Returns the normalized name on success.
func resolveUsernameCandidate(
	ctx context.Context,
	repo repository.ProfileRepository,
	policy *username.Policy,
	raw string,
	ownerID uuid.UUID,
) (string, error) {
	candidate := username.Normalize(raw)

	if err := username.ValidateFormat(candidate); err != nil {
		return "", formatViolation(err)
	}
	if policy.IsReserved(candidate) {
		return "", errors.WithStack(domainerrors.ErrUsernameReserved)
	}

	exists, err := repo.UsernameExists(ctx, candidate, &ownerID)
	if err != nil {
		return "", errors.Wrap(err, "failed to check username existence")
	}
	if exists {
		return "", errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	return candidate, nil
}

// generateDefaultUsername probes base, base1, base2, ... until a candidate
// passes both the reserved list and the availability check. The stripped
// base already satisfies the format rules.
func generateDefaultUsername(
	ctx context.Context,
	repo repository.ProfileRepository,
	policy *username.Policy,
	email string,
) (string, error) {
	base := username.DefaultBase(email)

	for attempt := 0; attempt < maxDefaultUsernameAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = base + strconv.Itoa(attempt)
		}

		if policy.IsReserved(candidate) {
			continue
		}

		exists, err := repo.UsernameExists(ctx, candidate, nil)
		if err != nil {
			return "", errors.Wrap(err, "failed to probe default username")
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrUsernameExhausted.WrapMessage("default username probe exhausted for base " + base)
}
