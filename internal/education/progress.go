package education

import (
	"context"
	"fmt"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
)

// trackOutcome describes what one advancement did to one track.
type trackOutcome struct {
	Active    bool // the track held an enrollment when the call arrived
	Graduated bool
	Message   string
	Program   domain.ProgramDefinition
	Progress  float64
	Period    int
}

// engine is the progress state machine. It mutates the passed-in state and
// applies rewards through the router; persisting the state afterwards is the
// caller's job.
type engine struct {
	router *Router
}

// advanceTrack applies one simulated tick to a track. Quarterly bonuses are
// paid first (the player was enrolled for the quarter, including the quarter
// in which graduation occurs), then progress increments by 100/durationTicks.
// A null track is a no-op. Reaching 100 runs the completion sequence.
func (e *engine) advanceTrack(ctx context.Context, playerID string, state *domain.EducationState, track domain.Track) trackOutcome {
	enrollment := state.TrackEnrollment(track)
	if enrollment == nil {
		return trackOutcome{}
	}

	log := logger.FromContext(ctx)

	if err := e.router.ApplyBonuses(ctx, playerID, enrollment.Program.QuarterlyBonuses); err != nil {
		log.Error(LogMsgBonusApplyFailed, "track", track, "error", err)
	}

	e.addProgress(enrollment, enrollment.Program.TickIncrement())

	if enrollment.Completed() {
		return e.complete(ctx, playerID, state, track, enrollment)
	}

	return trackOutcome{
		Active:   true,
		Program:  enrollment.Program,
		Progress: enrollment.Progress,
		Period:   enrollment.CurrentPeriod,
	}
}

// studyTrack applies an on-demand advancement of increment * multiplier.
// Quarterly bonuses are tick-exclusive and are not paid here. A null track
// is a no-op returning an empty outcome.
func (e *engine) studyTrack(ctx context.Context, playerID string, state *domain.EducationState, track domain.Track, multiplier float64) trackOutcome {
	enrollment := state.TrackEnrollment(track)
	if enrollment == nil {
		return trackOutcome{}
	}

	e.addProgress(enrollment, enrollment.Program.TickIncrement()*multiplier)

	if enrollment.Completed() {
		return e.complete(ctx, playerID, state, track, enrollment)
	}

	return trackOutcome{
		Active:   true,
		Program:  enrollment.Program,
		Progress: enrollment.Progress,
		Period:   enrollment.CurrentPeriod,
		Message:  fmt.Sprintf(MsgFmtStudyProgress, enrollment.Program.Title, enrollment.Progress),
	}
}

// addProgress increments progress, clamped so stored progress never exceeds
// 100, not even transiently. Excess progress is discarded, not carried over.
func (e *engine) addProgress(enrollment *domain.ActiveEnrollment, increment float64) {
	progress := enrollment.Progress + increment
	if progress > 100 {
		progress = 100
	}
	enrollment.Progress = progress
	enrollment.RecalcPeriod()
}

// complete runs the completion sequence: completion bonuses, history entry,
// track cleared to idle, graduation message with the program's title.
// AddCompleted has set semantics, so a duplicate completion can never put
// the same program ID into the history twice.
func (e *engine) complete(ctx context.Context, playerID string, state *domain.EducationState, track domain.Track, enrollment *domain.ActiveEnrollment) trackOutcome {
	log := logger.FromContext(ctx)

	// Snap to exactly 100 so accumulated float error is never observable.
	enrollment.Progress = 100
	enrollment.CurrentPeriod = enrollment.Program.DurationTicks

	if err := e.router.ApplyBonuses(ctx, playerID, enrollment.Program.CompletionBonuses); err != nil {
		log.Error(LogMsgBonusApplyFailed, "track", track, "error", err)
	}

	state.AddCompleted(enrollment.Program.ID)
	state.SetTrackEnrollment(track, nil)

	log.Info(LogMsgGraduated, "player_id", playerID, "program_id", enrollment.Program.ID, "track", track)

	return trackOutcome{
		Active:    true,
		Graduated: true,
		Program:   enrollment.Program,
		Progress:  enrollment.Progress,
		Period:    enrollment.CurrentPeriod,
		Message:   fmt.Sprintf(MsgFmtGraduated, enrollment.Program.Title),
	}
}
