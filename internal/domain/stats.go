package domain

// StatID identifies the stat targeted by a bonus. The namespace is flat:
// one string key space spans four unrelated stat domains plus the single
// leveled skill. Routing is table-driven (see statRoutes) so there is one
// source of truth for where a stat lives.
type StatID string

const (
	// Attributes
	StatIntellect StatID = "intellect"
	StatCharm     StatID = "charm"
	StatLooks     StatID = "looks"
	StatStrength  StatID = "strength"

	// Core stats
	StatHealth    StatID = "health"
	StatHappiness StatID = "happiness"
	StatStress    StatID = "stress"

	// Reputation
	StatSocialTrust   StatID = "socialTrust"
	StatStreetCred    StatID = "streetCred"
	StatBusinessTrust StatID = "businessTrust"
	StatCasinoRep     StatID = "casinoRep"

	// Security
	StatDigitalSecurity  StatID = "digitalSecurity"
	StatPersonalSecurity StatID = "personalSecurity"

	// Leveled skill
	StatMartialArts StatID = "martialArts"
)

// StatDomain identifies which externally owned store holds a stat.
type StatDomain string

const (
	DomainAttributes StatDomain = "attributes"
	DomainCoreStats  StatDomain = "core_stats"
	DomainReputation StatDomain = "reputation"
	DomainSecurity   StatDomain = "security"
	DomainSkill      StatDomain = "skill"
)

// StatTarget is the routing destination for a StatID.
type StatTarget struct {
	Domain StatDomain
	Key    string
}

// statRoutes maps every known StatID to its destination. Unknown IDs fall
// through ResolveStat's ok=false branch and are skipped by the router.
var statRoutes = map[StatID]StatTarget{
	StatIntellect: {DomainAttributes, AttrIntellect},
	StatCharm:     {DomainAttributes, AttrCharm},
	StatLooks:     {DomainAttributes, AttrLooks},
	StatStrength:  {DomainAttributes, AttrStrength},

	StatHealth:    {DomainCoreStats, CoreHealth},
	StatHappiness: {DomainCoreStats, CoreHappiness},
	StatStress:    {DomainCoreStats, CoreStress},

	StatSocialTrust:   {DomainReputation, RepSocial},
	StatStreetCred:    {DomainReputation, RepStreet},
	StatBusinessTrust: {DomainReputation, RepBusiness},
	StatCasinoRep:     {DomainReputation, RepCasino},

	StatDigitalSecurity:  {DomainSecurity, SecDigital},
	StatPersonalSecurity: {DomainSecurity, SecPersonal},

	StatMartialArts: {DomainSkill, SkillMartialArts},
}

// ResolveStat routes a StatID to its destination store and key.
func ResolveStat(id StatID) (StatTarget, bool) {
	target, ok := statRoutes[id]
	return target, ok
}

// StatDelta is one named stat mutation from a bonus table.
type StatDelta struct {
	StatID StatID  `json:"stat_id"`
	Amount float64 `json:"amount"`
}
