package education

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/player"
)

type testSetup struct {
	svc    Service
	player player.Service
	repo   *FakeRepository
}

func newTestSetup(t *testing.T, money int64) *testSetup {
	t.Helper()
	p := testPlayerService(t, money)
	repo := NewFakeEducationRepository()
	svc := NewService(repo, testCatalog(t), collaboratorsFor(p), nil)
	return &testSetup{svc: svc, player: p, repo: repo}
}

func (ts *testSetup) balance(t *testing.T) int64 {
	t.Helper()
	balance, err := ts.player.Balance(context.Background(), "player-1")
	require.NoError(t, err)
	return balance
}

func (ts *testSetup) status(t *testing.T) *domain.EducationState {
	t.Helper()
	state, err := ts.svc.GetStatus(context.Background(), "player-1")
	require.NoError(t, err)
	return state
}

func (ts *testSetup) attribute(t *testing.T, key string) float64 {
	t.Helper()
	value, err := ts.player.StatView(domain.DomainAttributes).Get(context.Background(), "player-1", key)
	require.NoError(t, err)
	return value
}

// Scenario: $30,000 player enrolls in a recurring-cost degree, advances 16
// quarters, graduates on the 16th with bonuses applied exactly once.
func TestEnrollAndGraduate_FullDegree(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	result, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	require.True(t, result.Eligible)
	assert.Equal(t, int64(22500), result.CostDue)
	assert.Equal(t, int64(7500), ts.balance(t))

	state := ts.status(t)
	require.NotNil(t, state.Academic)
	assert.Equal(t, float64(0), state.Academic.Progress)
	assert.Equal(t, 1, state.Academic.CurrentPeriod)

	for i := 0; i < 15; i++ {
		advance, err := ts.svc.AdvanceAllTracks(ctx, "player-1")
		require.NoError(t, err)
		assert.Empty(t, advance.Combined, "no completion message before the final tick")
	}

	advance, err := ts.svc.AdvanceAllTracks(ctx, "player-1")
	require.NoError(t, err)
	assert.Contains(t, advance.Combined, "B.S. Business Administration")

	state = ts.status(t)
	assert.Nil(t, state.Academic)
	assert.Equal(t, []string{"degree_business"}, state.CompletedProgramIDs)

	// 30 start + 0.25 quarterly x16 (paid on the graduation tick too) + 5 completion
	assert.InDelta(t, 39, ts.attribute(t, domain.AttrIntellect), 1e-9)

	business, err := ts.player.StatView(domain.DomainReputation).Get(ctx, "player-1", domain.RepBusiness)
	require.NoError(t, err)
	assert.Equal(t, float64(3), business)
}

// Scenario: missing prerequisite names the prerequisite's title; nothing is
// charged and no track is mutated.
func TestEnroll_MissingPrerequisite(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 100000)

	result, err := ts.svc.Enroll(ctx, "player-1", "master_mba")
	require.NoError(t, err)

	assert.False(t, result.Eligible)
	assert.Contains(t, result.Reason, "B.S. Business Administration")
	assert.Equal(t, int64(100000), ts.balance(t))

	state := ts.status(t)
	assert.Nil(t, state.Academic)
	assert.Nil(t, state.Certificate)
}

// Scenario: tracks are independent, a degree and a certificate can run
// simultaneously.
func TestEnroll_BothTracksSimultaneously(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	result, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	require.True(t, result.Eligible)

	result, err = ts.svc.Enroll(ctx, "player-1", "cert_first_aid")
	require.NoError(t, err)
	require.True(t, result.Eligible)

	state := ts.status(t)
	assert.NotNil(t, state.Academic)
	assert.NotNil(t, state.Certificate)
}

// Scenario: study on an idle track is a safe no-op.
func TestStudy_IdleTrackIsNoOp(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	message, err := ts.svc.Study(ctx, "player-1", domain.TrackCertificate, 1.0)
	require.NoError(t, err)
	assert.Empty(t, message)

	state := ts.status(t)
	assert.Nil(t, state.Academic)
	assert.Nil(t, state.Certificate)
}

func TestAdvanceAllTracks_IdleTracksSkipped(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	advance, err := ts.svc.AdvanceAllTracks(ctx, "player-1")
	require.NoError(t, err)
	assert.Empty(t, advance.Combined)
}

func TestAdvanceAllTracks_CertificateCompletionDoesNotTouchAcademic(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	_, err = ts.svc.Enroll(ctx, "player-1", "cert_first_aid")
	require.NoError(t, err)

	// Certificate graduates on the second tick; academic keeps going.
	_, err = ts.svc.AdvanceAllTracks(ctx, "player-1")
	require.NoError(t, err)
	advance, err := ts.svc.AdvanceAllTracks(ctx, "player-1")
	require.NoError(t, err)

	assert.Contains(t, advance.Certificate, "First Aid Certificate")
	assert.Empty(t, advance.Academic)

	state := ts.status(t)
	assert.Nil(t, state.Certificate)
	require.NotNil(t, state.Academic)
	assert.InDelta(t, 12.5, state.Academic.Progress, 1e-9)
	assert.True(t, state.HasCompleted("cert_first_aid"))
	assert.False(t, state.HasCompleted("degree_business"))
}

// Advancing after graduation must not duplicate the completed entry.
func TestAdvanceAllTracks_NoDoubleCompletion(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "cert_first_aid")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := ts.svc.AdvanceAllTracks(ctx, "player-1")
		require.NoError(t, err)
	}

	state := ts.status(t)
	assert.Equal(t, []string{"cert_first_aid"}, state.CompletedProgramIDs)
}

func TestStudy_ProgressAndGraduation(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "cert_first_aid")
	require.NoError(t, err)

	message, err := ts.svc.Study(ctx, "player-1", domain.TrackCertificate, 1.0)
	require.NoError(t, err)
	assert.Contains(t, message, "First Aid Certificate")
	assert.Contains(t, message, "50.0%")

	message, err = ts.svc.Study(ctx, "player-1", domain.TrackCertificate, 1.0)
	require.NoError(t, err)
	assert.Contains(t, message, "Graduated from First Aid Certificate!")

	state := ts.status(t)
	assert.Nil(t, state.Certificate)
	assert.True(t, state.HasCompleted("cert_first_aid"))
}

// Study does not pay quarterly bonuses; those are tick-exclusive.
func TestStudy_DoesNotApplyQuarterlyBonuses(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)

	before := ts.attribute(t, domain.AttrIntellect)
	_, err = ts.svc.Study(ctx, "player-1", domain.TrackAcademic, 1.0)
	require.NoError(t, err)

	assert.Equal(t, before, ts.attribute(t, domain.AttrIntellect))
}

// Progress stays in [0, 100] even for oversized multipliers; the excess is
// discarded.
func TestStudy_ProgressClampedAtCompletion(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)

	message, err := ts.svc.Study(ctx, "player-1", domain.TrackAcademic, 100)
	require.NoError(t, err)
	assert.Contains(t, message, "Graduated")

	state := ts.status(t)
	assert.Nil(t, state.Academic)
	assert.True(t, state.HasCompleted("degree_business"))
}

func TestStudy_InvalidInput(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Study(ctx, "player-1", domain.Track("evening"), 1.0)
	assert.ErrorIs(t, err, domain.ErrInvalidTrack)

	_, err = ts.svc.Study(ctx, "player-1", domain.TrackAcademic, 0)
	assert.Error(t, err)
}

func TestEnroll_SameProgramTwiceIsTrackConflict(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 100000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)

	// The occupied track wins over the resolver's already-enrolled reason;
	// CanEnroll still reports the reason (see TestCanEnroll_AlreadyEnrolled).
	_, err = ts.svc.Enroll(ctx, "player-1", "degree_business")
	assert.ErrorIs(t, err, domain.ErrTrackOccupied)
}

func TestEnroll_TrackOccupiedByDifferentProgram(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 100000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)

	_, err = ts.svc.Enroll(ctx, "player-1", "degree_computer_science")
	assert.ErrorIs(t, err, domain.ErrTrackOccupied)

	// Nothing was charged for the rejected attempt.
	assert.Equal(t, int64(100000-22500), ts.balance(t))
}

// Scenario: the track conflict is reported even when the player could not
// afford the second program anyway. The occupied check runs first, so the
// player is told to finish or drop the current program, not to earn money.
func TestEnroll_OccupiedTrackWinsOverInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 23000)

	result, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	require.True(t, result.Eligible)
	assert.Equal(t, int64(500), ts.balance(t))

	_, err = ts.svc.Enroll(ctx, "player-1", "degree_computer_science")
	assert.ErrorIs(t, err, domain.ErrTrackOccupied)
}

// Scenario: the state save fails after tuition was debited. The debit is
// credited back so the failed enrollment leaves the balance untouched.
func TestEnroll_SaveFailureRefundsTuition(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	ts.repo.SaveErr = errors.New("connection reset")

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.Error(t, err)

	assert.Equal(t, int64(30000), ts.balance(t))

	ts.repo.SaveErr = nil
	state := ts.status(t)
	assert.Nil(t, state.Academic)

	// The player can retry once the store recovers.
	result, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.Equal(t, int64(7500), ts.balance(t))
}

func TestEnroll_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 1000)

	result, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)

	assert.False(t, result.Eligible)
	assert.Contains(t, result.Reason, "22,500")
	assert.Equal(t, int64(1000), ts.balance(t))
}

func TestDropOut_NoRefundNoHistory(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	balanceAfterEnroll := ts.balance(t)

	_, err = ts.svc.AdvanceAllTracks(ctx, "player-1")
	require.NoError(t, err)

	require.NoError(t, ts.svc.DropOut(ctx, "player-1", domain.TrackAcademic))

	assert.Equal(t, balanceAfterEnroll, ts.balance(t), "no refund")
	state := ts.status(t)
	assert.Nil(t, state.Academic)
	assert.Empty(t, state.CompletedProgramIDs, "no history entry for a drop-out")
}

func TestDropOut_IdleTrackIsNoOp(t *testing.T) {
	ts := newTestSetup(t, 30000)
	assert.NoError(t, ts.svc.DropOut(context.Background(), "player-1", domain.TrackCertificate))
}

func TestDropOut_AllowsReEnrollment(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 100000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	require.NoError(t, ts.svc.DropOut(ctx, "player-1", domain.TrackAcademic))

	result, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	assert.True(t, result.Eligible, "a dropped program can be enrolled again")

	state := ts.status(t)
	require.NotNil(t, state.Academic)
	assert.Equal(t, float64(0), state.Academic.Progress, "progress restarts from zero")
}

func TestReset_RestoresEmptyState(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "cert_first_aid")
	require.NoError(t, err)
	_, err = ts.svc.AdvanceAllTracks(ctx, "player-1")
	require.NoError(t, err)

	require.NoError(t, ts.svc.Reset(ctx, "player-1"))

	state := ts.status(t)
	assert.Nil(t, state.Academic)
	assert.Nil(t, state.Certificate)
	assert.Empty(t, state.CompletedProgramIDs)
}

func TestCanEnroll_ServiceLevelHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	result, err := ts.svc.CanEnroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)
	assert.True(t, result.Eligible)

	assert.Equal(t, int64(30000), ts.balance(t), "eligibility check must not charge")
	assert.Nil(t, ts.status(t).Academic)
}

func TestAdvanceAllTracks_CurrentPeriodTracksProgress(t *testing.T) {
	ctx := context.Background()
	ts := newTestSetup(t, 30000)

	_, err := ts.svc.Enroll(ctx, "player-1", "degree_business")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := ts.svc.AdvanceAllTracks(ctx, "player-1")
		require.NoError(t, err)
	}

	state := ts.status(t)
	require.NotNil(t, state.Academic)
	assert.InDelta(t, 31.25, state.Academic.Progress, 1e-9)
	assert.Equal(t, 5, state.Academic.CurrentPeriod)
}
