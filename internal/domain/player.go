package domain

// Attribute keys
const (
	AttrIntellect = "intellect"
	AttrCharm     = "charm"
	AttrLooks     = "looks"
	AttrStrength  = "strength"
)

// Core stat keys
const (
	CoreHealth    = "health"
	CoreHappiness = "happiness"
	CoreStress    = "stress"
)

// Reputation keys. Police reputation exists in player state but is never
// targeted by education rewards.
const (
	RepSocial   = "social"
	RepStreet   = "street"
	RepBusiness = "business"
	RepCasino   = "casino"
	RepPolice   = "police"
)

// Security keys
const (
	SecDigital  = "digital"
	SecPersonal = "personal"
)

// SkillMartialArts is the key for the single leveled skill.
const SkillMartialArts = "martialArts"

// MaxSkillLevel caps leveled-skill progression.
const MaxSkillLevel = 8

// StatFloor and StatCeiling bound flat stats. Security stats are floored at
// zero but have no enforced upper bound.
const (
	StatFloor   = 0.0
	StatCeiling = 100.0
)

// Starting values for a fresh save
const (
	StartingMoney     int64   = 10_000
	StartingAttribute float64 = 30
	StartingCoreStat  float64 = 70
)

// LeveledSkill is a skill with discrete levels plus raw accumulated progress.
type LeveledSkill struct {
	Level    int     `json:"level"`
	Progress float64 `json:"progress"`
}

// PlayerState is the persisted per-player state owned by the player service.
// The education core only ever touches it through the collaborator
// interfaces; it never holds a reference to this struct.
type PlayerState struct {
	Money       int64                   `json:"money"`
	Attributes  map[string]float64      `json:"attributes"`
	CoreStats   map[string]float64      `json:"core_stats"`
	Reputation  map[string]float64      `json:"reputation"`
	Security    map[string]float64      `json:"security"`
	Skills      map[string]LeveledSkill `json:"skills"`
}

// NewPlayerState returns the state of a fresh save ("New Game").
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Money: StartingMoney,
		Attributes: map[string]float64{
			AttrIntellect: StartingAttribute,
			AttrCharm:     StartingAttribute,
			AttrLooks:     StartingAttribute,
			AttrStrength:  StartingAttribute,
		},
		CoreStats: map[string]float64{
			CoreHealth:    StartingCoreStat,
			CoreHappiness: StartingCoreStat,
			CoreStress:    StatFloor,
		},
		Reputation: map[string]float64{
			RepSocial:   StatFloor,
			RepStreet:   StatFloor,
			RepBusiness: StatFloor,
			RepCasino:   StatFloor,
			RepPolice:   StatFloor,
		},
		Security: map[string]float64{
			SecDigital:  StatFloor,
			SecPersonal: StatFloor,
		},
		Skills: map[string]LeveledSkill{
			SkillMartialArts: {Level: 0, Progress: 0},
		},
	}
}

// Clone returns a deep copy, used by repositories and caches so callers can
// never mutate shared state through a returned pointer.
func (s *PlayerState) Clone() *PlayerState {
	out := &PlayerState{
		Money:      s.Money,
		Attributes: make(map[string]float64, len(s.Attributes)),
		CoreStats:  make(map[string]float64, len(s.CoreStats)),
		Reputation: make(map[string]float64, len(s.Reputation)),
		Security:   make(map[string]float64, len(s.Security)),
		Skills:     make(map[string]LeveledSkill, len(s.Skills)),
	}
	for k, v := range s.Attributes {
		out.Attributes[k] = v
	}
	for k, v := range s.CoreStats {
		out.CoreStats[k] = v
	}
	for k, v := range s.Reputation {
		out.Reputation[k] = v
	}
	for k, v := range s.Security {
		out.Security[k] = v
	}
	for k, v := range s.Skills {
		out.Skills[k] = v
	}
	return out
}
