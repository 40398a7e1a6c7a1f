package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

func newTestService() (Service, *FakeRepository) {
	repo := NewFakeRepository()
	return NewService(repo, nil), repo
}

func TestGetState_CreatesFreshSave(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	state, err := svc.GetState(ctx, "player-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StartingMoney, state.Money)
	assert.Equal(t, domain.StartingAttribute, state.Attributes[domain.AttrIntellect])
	assert.Equal(t, domain.StartingCoreStat, state.CoreStats[domain.CoreHealth])
	assert.Equal(t, 0, state.Skills[domain.SkillMartialArts].Level)
}

func TestSpend_Success(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ok, err := svc.Spend(ctx, "player-1", 2500)
	require.NoError(t, err)
	assert.True(t, ok)

	balance, err := svc.Balance(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingMoney-2500, balance)
}

func TestSpend_InsufficientFunds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ok, err := svc.Spend(ctx, "player-1", domain.StartingMoney+1)
	require.NoError(t, err)
	assert.False(t, ok, "insufficient funds must be a false result, not an error")

	balance, err := svc.Balance(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingMoney, balance, "failed spend must not change the balance")
}

func TestSpend_NegativeAmount(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Spend(context.Background(), "player-1", -5)
	assert.Error(t, err)
}

func TestSpend_ZeroAmount(t *testing.T) {
	svc, _ := newTestService()

	ok, err := svc.Spend(context.Background(), "player-1", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeposit_CreditsBalance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ok, err := svc.Spend(ctx, "player-1", 2500)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, svc.Deposit(ctx, "player-1", 2500))

	balance, err := svc.Balance(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingMoney, balance, "a deposit matching the debit restores the balance")
}

func TestDeposit_NegativeAmount(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Deposit(context.Background(), "player-1", -5)
	assert.Error(t, err)
}

func TestStatView_ClampsToCeiling(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	view := svc.StatView(domain.DomainAttributes)

	require.NoError(t, view.Set(ctx, "player-1", domain.AttrIntellect, 250))

	value, err := view.Get(ctx, "player-1", domain.AttrIntellect)
	require.NoError(t, err)
	assert.Equal(t, domain.StatCeiling, value)
}

func TestStatView_ClampsToFloor(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	view := svc.StatView(domain.DomainCoreStats)

	require.NoError(t, view.Set(ctx, "player-1", domain.CoreStress, -20))

	value, err := view.Get(ctx, "player-1", domain.CoreStress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatFloor, value)
}

func TestStatView_SecurityHasNoCeiling(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	view := svc.StatView(domain.DomainSecurity)

	require.NoError(t, view.Set(ctx, "player-1", domain.SecDigital, 150))

	value, err := view.Get(ctx, "player-1", domain.SecDigital)
	require.NoError(t, err)
	assert.Equal(t, float64(150), value)
}

func TestStatView_UnknownDomain(t *testing.T) {
	svc, _ := newTestService()
	view := svc.StatView(domain.StatDomain("bogus"))

	err := view.Set(context.Background(), "player-1", "x", 1)
	assert.Error(t, err)
}

func TestSetMartialArts_CapsLevel(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	err := svc.SetMartialArts(ctx, "player-1", domain.LeveledSkill{Level: 12, Progress: 340})
	require.NoError(t, err)

	skill, err := svc.GetMartialArts(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxSkillLevel, skill.Level)
	assert.Equal(t, float64(340), skill.Progress, "progress accumulates uncapped")
}

func TestNewGame_ResetsState(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Spend(ctx, "player-1", 4000)
	require.NoError(t, err)
	require.NoError(t, svc.StatView(domain.DomainReputation).Set(ctx, "player-1", domain.RepBusiness, 40))

	state, err := svc.NewGame(ctx, "player-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StartingMoney, state.Money)
	assert.Equal(t, domain.StatFloor, state.Reputation[domain.RepBusiness])
}

func TestGetState_ReturnsIsolatedCopies(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.GetState(ctx, "player-1")
	require.NoError(t, err)
	first.Attributes[domain.AttrCharm] = 99

	second, err := svc.GetState(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingAttribute, second.Attributes[domain.AttrCharm],
		"mutating a returned state must not leak into the cache")
}
