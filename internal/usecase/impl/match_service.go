// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bloodbank/internal/delivery/context"
	"bloodbank/internal/domain/constants"
	"bloodbank/internal/domain/entity"
	domainerrors "bloodbank/internal/domain/errors"
	"bloodbank/internal/domain/matching"
	"bloodbank/internal/domain/repository"
	"bloodbank/internal/domain/service"
	"bloodbank/internal/errors"
	"bloodbank/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// matchService implements the MatchUsecase interface.
type matchService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	metrics   service.MatchMetrics
	logger    *slog.Logger
	now       func() time.Time
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher `optional:"true"`
	Metrics   service.MatchMetrics   `optional:"true"`
	Logger    *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = noopMatchMetrics{}
	}

	return &matchService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		metrics:   metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Candidates computes the candidate donors for one patient from a consistent snapshot.
func (srv *matchService) Candidates(ctx context.Context, patientID uuid.UUID) ([]*entity.Donor, error) {
	now := srv.now()

	var candidates []*entity.Donor
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		patient, err := repos.PatientRepo().FindByID(ctx, patientID)
		if err != nil {
			return lookupFailure(err, repository.ErrPatientNotFound, "failed to find patient")
		}
		if !patient.NeedsMatch {
			candidates = make([]*entity.Donor, 0)

			return nil
		}

		donors, matches, err := loadPool(ctx, repos, now)
		if err != nil {
			return err
		}
		candidates = matching.CandidatesFor(patient, donors, matches)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.ObserveCandidates(len(candidates))

	return candidates, nil
}

// Board computes candidates for every patient still needing a match, in patient list order.
func (srv *matchService) Board(ctx context.Context) ([]*usecase.PatientCandidates, error) {
	now := srv.now()

	var board []*usecase.PatientCandidates
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		patients, err := repos.PatientRepo().List(ctx)
		if err != nil {
			return storeFailure(err, "failed to list patients")
		}

		donors, matches, err := loadPool(ctx, repos, now)
		if err != nil {
			return err
		}

		board = make([]*usecase.PatientCandidates, 0, len(patients))
		for _, patient := range patients {
			if !patient.NeedsMatch {
				continue
			}
			board = append(board, &usecase.PatientCandidates{
				Patient:    patient,
				Candidates: matching.CandidatesFor(patient, donors, matches),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return board, nil
}

// ConfirmMatch performs every read, then the three guarded writes, inside one transaction.
// Any precondition that no longer holds aborts the whole transaction with no partial effect.
func (srv *matchService) ConfirmMatch(ctx context.Context, patientID, donorID uuid.UUID) (*entity.Match, error) {
	start := srv.now()
	logger := srv.log(ctx).With(
		slog.String("patient_id", patientID.String()),
		slog.String("donor_id", donorID.String()),
	)

	var match *entity.Match
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		donorRepo := repos.DonorRepo()
		patientRepo := repos.PatientRepo()
		matchRepo := repos.MatchRepo()

		donor, err := donorRepo.FindByID(ctx, donorID)
		if err != nil {
			return lookupFailure(err, repository.ErrDonorNotFound, "failed to find donor")
		}
		patient, err := patientRepo.FindByID(ctx, patientID)
		if err != nil {
			return lookupFailure(err, repository.ErrPatientNotFound, "failed to find patient")
		}

		donor.Eligible = matching.EvaluateDonor(donor, start)
		if reason := matching.CheckPair(patient, donor); reason != nil {
			return domainerrors.ErrPreconditionFailed.WithCause(reason)
		}
		if err := ensureUnmatched(matchRepo.FindByDonorID(ctx, donorID)); err != nil {
			return preconditionOr(err, matching.ErrDonorMatched, "failed to find match by donor")
		}
		if err := ensureUnmatched(matchRepo.FindByPatientID(ctx, patientID)); err != nil {
			return preconditionOr(err, matching.ErrPatientMatched, "failed to find match by patient")
		}

		// No reads past this point.
		if err := donorRepo.Reserve(ctx, donorID); err != nil {
			return guardFailure(err, repository.ErrDonorUnavailable, matching.ErrDonorUnavailable, "failed to reserve donor")
		}
		if err := patientRepo.MarkSatisfied(ctx, patientID); err != nil {
			return guardFailure(err, repository.ErrPatientAlreadyMatched, matching.ErrPatientSatisfied, "failed to mark patient satisfied")
		}

		candidate := entity.NewMatch(patient, donor, start)
		if err := matchRepo.Create(ctx, candidate); err != nil {
			return guardFailure(err, repository.ErrDuplicateMatch, repository.ErrDuplicateMatch, "failed to create match")
		}
		match = candidate

		return nil
	})
	srv.metrics.ObserveConfirm(outcomeOf(err), srv.now().Sub(start))
	if err != nil {
		logger.Warn("Match confirmation rejected", slog.Any("error", err))

		return nil, err
	}

	logger.Info("Match confirmed", slog.String("match_id", match.ID.String()))
	srv.publish(ctx, constants.EventMatchConfirmed, match)

	return match, nil
}

// ReleaseMatch deletes the match and returns its donor and patient to the pool in one transaction.
// A missing match fails with NotFound before anything is written.
func (srv *matchService) ReleaseMatch(ctx context.Context, matchID uuid.UUID) error {
	start := srv.now()
	logger := srv.log(ctx).With(slog.String("match_id", matchID.String()))

	var released *entity.Match
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		donorRepo := repos.DonorRepo()
		patientRepo := repos.PatientRepo()
		matchRepo := repos.MatchRepo()

		match, err := matchRepo.FindByID(ctx, matchID)
		if err != nil {
			return lookupFailure(err, repository.ErrMatchNotFound, "failed to find match")
		}

		// References are weak, so a vanished donor or patient is skipped rather than fatal.
		_, donorErr := donorRepo.FindByID(ctx, match.DonorID)
		if donorErr != nil && !errors.Is(donorErr, repository.ErrDonorNotFound) {
			return storeFailure(donorErr, "failed to find donor")
		}
		_, patientErr := patientRepo.FindByID(ctx, match.PatientID)
		if patientErr != nil && !errors.Is(patientErr, repository.ErrPatientNotFound) {
			return storeFailure(patientErr, "failed to find patient")
		}

		if donorErr == nil {
			if err := donorRepo.Restore(ctx, match.DonorID); err != nil {
				return storeFailure(err, "failed to restore donor")
			}
		}
		if patientErr == nil {
			if err := patientRepo.MarkNeedsMatch(ctx, match.PatientID); err != nil {
				return storeFailure(err, "failed to mark patient as needing a match")
			}
		}
		if err := matchRepo.Delete(ctx, matchID); err != nil {
			return lookupFailure(err, repository.ErrMatchNotFound, "failed to delete match")
		}
		released = match

		return nil
	})
	srv.metrics.ObserveRelease(outcomeOf(err), srv.now().Sub(start))
	if err != nil {
		logger.Warn("Match release rejected", slog.Any("error", err))

		return err
	}

	logger.Info("Match released",
		slog.String("donor_id", released.DonorID.String()),
		slog.String("patient_id", released.PatientID.String()),
	)
	srv.publish(ctx, constants.EventMatchReleased, released)

	return nil
}

// GetMatch retrieves a live match.
func (srv *matchService) GetMatch(ctx context.Context, matchID uuid.UUID) (*entity.Match, error) {
	var match *entity.Match
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.MatchRepo().FindByID(ctx, matchID)
		if err != nil {
			return lookupFailure(err, repository.ErrMatchNotFound, "failed to find match")
		}
		match = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return match, nil
}

// ListMatches retrieves every live match.
func (srv *matchService) ListMatches(ctx context.Context) ([]*entity.Match, error) {
	var matches []*entity.Match
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.MatchRepo().List(ctx)
		if err != nil {
			return storeFailure(err, "failed to list matches")
		}
		matches = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// publish sends a lifecycle event after commit. A failed publish is logged and never
// undoes the committed change.
func (srv *matchService) publish(ctx context.Context, eventType string, match *entity.Match) {
	if srv.publisher == nil {
		return
	}

	event := &service.MatchEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		MatchID:    match.ID.String(),
		DonorID:    match.DonorID.String(),
		PatientID:  match.PatientID.String(),
		City:       string(match.City),
		OccurredAt: srv.now(),
	}
	if err := srv.publisher.PublishMatchEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish match event",
			slog.String("type", eventType),
			slog.String("match_id", event.MatchID),
			slog.Any("error", err),
		)
	}
}

// loadPool reads every donor with eligibility refreshed against now, plus every live match.
func loadPool(ctx context.Context, repos repository.RepositoryFactory, now time.Time) ([]*entity.Donor, []*entity.Match, error) {
	donors, err := repos.DonorRepo().List(ctx)
	if err != nil {
		return nil, nil, storeFailure(err, "failed to list donors")
	}
	matches, err := repos.MatchRepo().List(ctx)
	if err != nil {
		return nil, nil, storeFailure(err, "failed to list matches")
	}

	for _, donor := range donors {
		donor.Eligible = matching.EvaluateDonor(donor, now)
	}

	return donors, matches, nil
}

// ensureUnmatched turns a match lookup into nil when nothing was found.
func ensureUnmatched(_ *entity.Match, err error) error {
	if errors.Is(err, repository.ErrMatchNotFound) {
		return nil
	}
	if err == nil {
		return errAlreadyMatched
	}

	return err
}

var errAlreadyMatched = errors.New("already matched")

// preconditionOr reports reason when a live match was found, or a store failure otherwise.
func preconditionOr(err, reason error, details string) error {
	if errors.Is(err, errAlreadyMatched) {
		return domainerrors.ErrPreconditionFailed.WithCause(reason)
	}

	return storeFailure(err, details)
}

// guardFailure maps a lost conditional write to PreconditionFailed.
func guardFailure(err, guard, reason error, details string) error {
	if errors.Is(err, guard) {
		return domainerrors.ErrPreconditionFailed.WithCause(reason)
	}

	return storeFailure(err, details)
}

// lookupFailure maps a missing record to NotFound.
func lookupFailure(err, missing error, details string) error {
	if errors.Is(err, missing) {
		return domainerrors.ErrNotFound.WithCause(err)
	}

	return storeFailure(err, details)
}

// storeFailure keeps application errors as they are and reports anything else as IOFailure.
func storeFailure(err error, details string) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewStoreError(err, details)
}

// outcomeOf classifies an operation result for metrics.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return service.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return service.OutcomeValidationFailed
	case errors.Is(err, domainerrors.ErrNotFound):
		return service.OutcomeNotFound
	case errors.Is(err, domainerrors.ErrPreconditionFailed):
		return service.OutcomePreconditionFailed
	case errors.Is(err, domainerrors.ErrIOFailure):
		return service.OutcomeIOFailure
	default:
		return service.OutcomeError
	}
}

type noopMatchMetrics struct{}

func (noopMatchMetrics) ObserveConfirm(string, time.Duration) {}
func (noopMatchMetrics) ObserveRelease(string, time.Duration) {}
func (noopMatchMetrics) ObserveCandidates(int)                {}
