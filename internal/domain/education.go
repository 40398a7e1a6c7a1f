package domain

import "math"

// ProgramKind classifies a catalog program
type ProgramKind string

const (
	KindCertificate ProgramKind = "certificate"
	KindDegree      ProgramKind = "degree"
	KindMaster      ProgramKind = "master"
	KindDoctorate   ProgramKind = "doctorate"
)

// Track identifies one of the two independent enrollment slots
type Track string

const (
	TrackAcademic    Track = "academic"
	TrackCertificate Track = "certificate"
)

// TrackForKind maps a program kind to the enrollment slot it occupies.
// Certificates have their own slot; everything academic shares one.
func TrackForKind(kind ProgramKind) Track {
	if kind == KindCertificate {
		return TrackCertificate
	}
	return TrackAcademic
}

// RecurringCostPeriods is the number of billing periods charged up front for
// programs with recurring tuition (one quarter of monthly billing).
const RecurringCostPeriods = 3

// ProgramDefinition is an immutable catalog entry
type ProgramDefinition struct {
	ID                    string      `json:"id" validate:"required"`
	Title                 string      `json:"title" validate:"required"`
	Kind                  ProgramKind `json:"kind" validate:"required,oneof=certificate degree master doctorate"`
	Cost                  int64       `json:"cost" validate:"min=0"`
	CostIsRecurring       bool        `json:"cost_is_recurring"`
	DurationTicks         int         `json:"duration_ticks" validate:"min=1"`
	PrerequisiteProgramID string      `json:"prerequisite_program_id,omitempty"`

	// MinIntelligence is carried from catalog content but is not consulted by
	// the eligibility checks; prerequisites are the effective gate.
	MinIntelligence float64 `json:"min_intelligence,omitempty"`

	QuarterlyBonuses  []StatDelta `json:"quarterly_bonuses,omitempty"`
	CompletionBonuses []StatDelta `json:"completion_bonuses,omitempty"`
}

// CostDue returns the amount charged at enrollment time.
func (p ProgramDefinition) CostDue() int64 {
	if p.CostIsRecurring {
		return p.Cost * RecurringCostPeriods
	}
	return p.Cost
}

// TickIncrement returns the progress gained per advancement tick, in percent.
func (p ProgramDefinition) TickIncrement() float64 {
	return 100.0 / float64(p.DurationTicks)
}

// ActiveEnrollment is the mutable per-track enrollment state.
// Program is a snapshot taken at enrollment time; later catalog changes do
// not affect an enrollment already in flight.
type ActiveEnrollment struct {
	Program       ProgramDefinition `json:"program"`
	Progress      float64           `json:"progress"` // percent, [0, 100]
	CurrentPeriod int               `json:"current_period"`
}

// progressEpsilon absorbs float accumulation error so a program of N ticks
// completes on exactly the Nth tick (e.g. three additions of 100/3 may sum
// to 99.999...).
const progressEpsilon = 1e-9

// Completed reports whether the enrollment has reached full progress.
func (e *ActiveEnrollment) Completed() bool {
	return e.Progress >= 100-progressEpsilon
}

// RecalcPeriod derives the 1-indexed period counter from progress.
func (e *ActiveEnrollment) RecalcPeriod() {
	period := int(math.Ceil(e.Progress / e.Program.TickIncrement()))
	if period < 1 {
		period = 1
	}
	if period > e.Program.DurationTicks {
		period = e.Program.DurationTicks
	}
	e.CurrentPeriod = period
}

// EducationState is the persisted enrollment-store state for one player.
type EducationState struct {
	Academic            *ActiveEnrollment `json:"academic,omitempty"`
	Certificate         *ActiveEnrollment `json:"certificate,omitempty"`
	CompletedProgramIDs []string          `json:"completed_program_ids"`
}

// NewEducationState returns an empty state (both tracks idle).
func NewEducationState() *EducationState {
	return &EducationState{CompletedProgramIDs: []string{}}
}

// TrackEnrollment returns the enrollment occupying the given track, or nil.
func (s *EducationState) TrackEnrollment(track Track) *ActiveEnrollment {
	if track == TrackCertificate {
		return s.Certificate
	}
	return s.Academic
}

// SetTrackEnrollment replaces the enrollment in the given track slot.
func (s *EducationState) SetTrackEnrollment(track Track, e *ActiveEnrollment) {
	if track == TrackCertificate {
		s.Certificate = e
	} else {
		s.Academic = e
	}
}

// HasCompleted reports whether the program ID is in the completed history.
func (s *EducationState) HasCompleted(programID string) bool {
	for _, id := range s.CompletedProgramIDs {
		if id == programID {
			return true
		}
	}
	return false
}

// AddCompleted records a completed program. Set semantics: a program ID is
// recorded at most once no matter how often this is called.
func (s *EducationState) AddCompleted(programID string) {
	if s.HasCompleted(programID) {
		return
	}
	s.CompletedProgramIDs = append(s.CompletedProgramIDs, programID)
}

// EligibilityResult is the outcome of an enrollment eligibility check.
// Reason is user-displayable and empty when Eligible is true.
type EligibilityResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
	CostDue  int64  `json:"cost_due,omitempty"`
}

// EnrollmentHistory is the read-only view of player state the eligibility
// check needs. Building it is the caller's job; the check itself is pure.
type EnrollmentHistory struct {
	CompletedProgramIDs []string
	ActiveProgramID     string // active program on the target track, "" if idle
	AvailableFunds      int64
}

// HasCompleted reports whether the program ID appears in the history.
func (h EnrollmentHistory) HasCompleted(programID string) bool {
	for _, id := range h.CompletedProgramIDs {
		if id == programID {
			return true
		}
	}
	return false
}
