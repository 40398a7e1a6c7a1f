package education

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/halcyonworks/QuarterLife_Go/internal/catalog"
	"github.com/halcyonworks/QuarterLife_Go/internal/concurrency"
	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/event"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
	"github.com/halcyonworks/QuarterLife_Go/internal/repository"
	"github.com/halcyonworks/QuarterLife_Go/internal/utils"
)

// AdvanceResult carries the per-track completion messages of one quarter
// tick plus a combined space-joined message for callers expecting one string.
type AdvanceResult struct {
	Academic    string `json:"academic,omitempty"`
	Certificate string `json:"certificate,omitempty"`
	Combined    string `json:"combined,omitempty"`
}

// Service defines the interface for education operations
type Service interface {
	// CanEnroll reports eligibility without side effects. Calling it never
	// charges funds or mutates state.
	CanEnroll(ctx context.Context, playerID, programID string) (domain.EligibilityResult, error)

	// Enroll charges the cost and occupies the program's track. Validation
	// failures come back as an ineligible result carrying the same reason
	// string CanEnroll would give; a track held by a different program is
	// domain.ErrTrackOccupied.
	Enroll(ctx context.Context, playerID, programID string) (domain.EligibilityResult, error)

	// AdvanceAllTracks is the single authoritative advancement entry point.
	// Callers must invoke it exactly once per simulated quarter; a duplicate
	// call advances time again (safe, but the player pays double progress
	// and bonuses for the quarter). Both tracks advance independently in
	// one call, idle tracks are skipped.
	AdvanceAllTracks(ctx context.Context, playerID string) (AdvanceResult, error)

	// Study applies an on-demand advancement to one track. An idle track is
	// a no-op returning an empty message.
	Study(ctx context.Context, playerID string, track domain.Track, multiplier float64) (string, error)

	// DropOut clears the track to idle unconditionally. Progress is
	// discarded; no refund, no history entry.
	DropOut(ctx context.Context, playerID string, track domain.Track) error

	// Reset restores the initial empty state ("New Game").
	Reset(ctx context.Context, playerID string) error

	// GetStatus returns the current enrollment state.
	GetStatus(ctx context.Context, playerID string) (*domain.EducationState, error)
}

// service implements the Service interface
type service struct {
	repo      repository.Education
	catalog   *catalog.Catalog
	collab    Collaborators
	engine    *engine
	publisher event.Bus

	// Serializes state transitions per player. The simulation model is
	// single-turn, but the HTTP surface can deliver overlapping requests.
	locks *concurrency.LockManager
}

// NewService creates a new education service
func NewService(repo repository.Education, cat *catalog.Catalog, collab Collaborators, publisher event.Bus) Service {
	return &service{
		repo:      repo,
		catalog:   cat,
		collab:    collab,
		engine:    &engine{router: NewRouter(collab)},
		publisher: publisher,
		locks:     concurrency.NewLockManager(),
	}
}

// CanEnroll reports eligibility without side effects.
func (s *service) CanEnroll(ctx context.Context, playerID, programID string) (domain.EligibilityResult, error) {
	program, ok := s.catalog.FindByID(programID)
	if !ok {
		return domain.EligibilityResult{Reason: ReasonNotFound}, nil
	}

	state, err := s.repo.GetEducationState(ctx, playerID)
	if err != nil {
		return domain.EligibilityResult{}, fmt.Errorf(ErrMsgGetStateFailed, err)
	}

	history, err := s.historyFor(ctx, playerID, state, domain.TrackForKind(program.Kind))
	if err != nil {
		return domain.EligibilityResult{}, err
	}

	return CanEnroll(s.catalog, history, programID), nil
}

// Enroll charges the cost and occupies the program's track.
func (s *service) Enroll(ctx context.Context, playerID, programID string) (domain.EligibilityResult, error) {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)

	program, ok := s.catalog.FindByID(programID)
	if !ok {
		return domain.EligibilityResult{Reason: ReasonNotFound}, nil
	}
	track := domain.TrackForKind(program.Kind)

	state, err := s.repo.GetEducationState(ctx, playerID)
	if err != nil {
		return domain.EligibilityResult{}, fmt.Errorf(ErrMsgGetStateFailed, err)
	}

	// Occupied track is checked before eligibility so the conflict wins over
	// any reason the resolver would report. Finish or drop the current
	// program first.
	if state.TrackEnrollment(track) != nil {
		return domain.EligibilityResult{}, domain.ErrTrackOccupied
	}

	history, err := s.historyFor(ctx, playerID, state, track)
	if err != nil {
		return domain.EligibilityResult{}, err
	}

	result := CanEnroll(s.catalog, history, programID)
	if !result.Eligible {
		log.Info(LogMsgEnrollmentRejected, "player_id", playerID, "program_id", programID, "reason", result.Reason)
		return result, nil
	}

	// Charge only after eligibility is confirmed. A false result here is a
	// race on the shared funds store; the enrollment aborts with no state
	// change and the caller gets the same insufficient-funds vocabulary.
	charged, err := s.collab.Funds.Spend(ctx, playerID, result.CostDue)
	if err != nil {
		return domain.EligibilityResult{}, fmt.Errorf(ErrMsgSpendFailed, err)
	}
	if !charged {
		reason := fmt.Sprintf(ReasonFmtInsufficientFunds, utils.FormatMoney(result.CostDue))
		log.Info(LogMsgEnrollmentRejected, "player_id", playerID, "program_id", programID, "reason", reason)
		return domain.EligibilityResult{Reason: reason}, nil
	}

	state.SetTrackEnrollment(track, &domain.ActiveEnrollment{
		Program:       program,
		Progress:      0,
		CurrentPeriod: 1,
	})

	if err := s.repo.SaveEducationState(ctx, playerID, state); err != nil {
		// The tuition debit landed but the enrollment did not. Credit it
		// back so the failed attempt leaves the balance untouched.
		if refundErr := s.collab.Funds.Deposit(ctx, playerID, result.CostDue); refundErr != nil {
			log.Error(LogMsgRefundFailed,
				"player_id", playerID, "program_id", programID, "amount", result.CostDue, "error", refundErr)
		}
		return domain.EligibilityResult{}, fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	s.publish(ctx, event.NewEnrolledEvent(playerID, program, track, result.CostDue))
	log.Info(LogMsgEnrolled,
		"player_id", playerID, "program_id", programID, "track", track, "cost_charged", result.CostDue)

	return result, nil
}

// AdvanceAllTracks applies one quarter tick to both tracks.
func (s *service) AdvanceAllTracks(ctx context.Context, playerID string) (AdvanceResult, error) {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.repo.GetEducationState(ctx, playerID)
	if err != nil {
		return AdvanceResult{}, fmt.Errorf(ErrMsgGetStateFailed, err)
	}

	academic := s.engine.advanceTrack(ctx, playerID, state, domain.TrackAcademic)
	certificate := s.engine.advanceTrack(ctx, playerID, state, domain.TrackCertificate)

	if err := s.repo.SaveEducationState(ctx, playerID, state); err != nil {
		return AdvanceResult{}, fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	s.publishTickOutcome(ctx, playerID, domain.TrackAcademic, academic)
	s.publishTickOutcome(ctx, playerID, domain.TrackCertificate, certificate)

	result := AdvanceResult{
		Academic:    academic.Message,
		Certificate: certificate.Message,
	}
	result.Combined = joinMessages(academic.Message, certificate.Message)

	logger.FromContext(ctx).Info(LogMsgQuarterAdvanced, "player_id", playerID,
		"academic_active", academic.Active, "certificate_active", certificate.Active)

	return result, nil
}

// Study applies an on-demand advancement to one track.
func (s *service) Study(ctx context.Context, playerID string, track domain.Track, multiplier float64) (string, error) {
	if err := validateTrack(track); err != nil {
		return "", err
	}
	if multiplier <= 0 {
		return "", errors.New(ErrMsgInvalidMultiplier)
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.repo.GetEducationState(ctx, playerID)
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetStateFailed, err)
	}

	outcome := s.engine.studyTrack(ctx, playerID, state, track, multiplier)
	if !outcome.Active {
		// Idle track: safe no-op, UI may call this speculatively.
		return "", nil
	}

	if err := s.repo.SaveEducationState(ctx, playerID, state); err != nil {
		return "", fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	if outcome.Graduated {
		s.publish(ctx, event.NewGraduatedEvent(playerID, outcome.Program, track))
	}

	return outcome.Message, nil
}

// DropOut clears the track to idle unconditionally.
func (s *service) DropOut(ctx context.Context, playerID string, track domain.Track) error {
	if err := validateTrack(track); err != nil {
		return err
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.repo.GetEducationState(ctx, playerID)
	if err != nil {
		return fmt.Errorf(ErrMsgGetStateFailed, err)
	}

	enrollment := state.TrackEnrollment(track)
	if enrollment == nil {
		return nil
	}

	dropped := *enrollment
	state.SetTrackEnrollment(track, nil)

	if err := s.repo.SaveEducationState(ctx, playerID, state); err != nil {
		return fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	s.publish(ctx, event.NewDroppedOutEvent(playerID, track, dropped.Program, dropped.Progress))
	logger.FromContext(ctx).Info(LogMsgDroppedOut,
		"player_id", playerID, "program_id", dropped.Program.ID, "track", track, "progress", dropped.Progress)

	return nil
}

// Reset restores the initial empty state.
func (s *service) Reset(ctx context.Context, playerID string) error {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.SaveEducationState(ctx, playerID, domain.NewEducationState()); err != nil {
		return fmt.Errorf(ErrMsgSaveStateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgStateReset, "player_id", playerID)
	return nil
}

// GetStatus returns the current enrollment state.
func (s *service) GetStatus(ctx context.Context, playerID string) (*domain.EducationState, error) {
	state, err := s.repo.GetEducationState(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStateFailed, err)
	}
	return state, nil
}

func (s *service) historyFor(ctx context.Context, playerID string, state *domain.EducationState, track domain.Track) (domain.EnrollmentHistory, error) {
	balance, err := s.collab.Funds.Balance(ctx, playerID)
	if err != nil {
		return domain.EnrollmentHistory{}, fmt.Errorf(ErrMsgGetBalanceFailed, err)
	}

	activeID := ""
	if enrollment := state.TrackEnrollment(track); enrollment != nil {
		activeID = enrollment.Program.ID
	}

	return domain.EnrollmentHistory{
		CompletedProgramIDs: state.CompletedProgramIDs,
		ActiveProgramID:     activeID,
		AvailableFunds:      balance,
	}, nil
}

func (s *service) publishTickOutcome(ctx context.Context, playerID string, track domain.Track, outcome trackOutcome) {
	if !outcome.Active {
		return
	}
	if outcome.Graduated {
		s.publish(ctx, event.NewGraduatedEvent(playerID, outcome.Program, track))
		return
	}
	s.publish(ctx, event.NewQuarterAdvancedEvent(playerID, track, outcome.Program.ID, outcome.Progress, outcome.Period))
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func validateTrack(track domain.Track) error {
	if track != domain.TrackAcademic && track != domain.TrackCertificate {
		return domain.ErrInvalidTrack
	}
	return nil
}

func joinMessages(messages ...string) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, " ")
}
