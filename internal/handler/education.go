package handler

import (
	"net/http"
	"strings"

	"github.com/halcyonworks/QuarterLife_Go/internal/catalog"
	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/education"
	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
)

// EducationHandlers bundles the HTTP handlers for the education endpoints.
type EducationHandlers struct {
	service education.Service
	catalog *catalog.Catalog
}

// NewEducationHandlers creates handlers backed by the education service
func NewEducationHandlers(service education.Service, cat *catalog.Catalog) *EducationHandlers {
	return &EducationHandlers{
		service: service,
		catalog: cat,
	}
}

// ProgramListResponse is the catalog listing payload
type ProgramListResponse struct {
	Programs []domain.ProgramDefinition `json:"programs"`
}

// HandleGetPrograms lists the program catalog
// @Summary List programs
// @Description Returns every program in the catalog, in declaration order
// @Tags education
// @Produce json
// @Success 200 {object} ProgramListResponse
// @Router /education/programs [get]
func (h *EducationHandlers) HandleGetPrograms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ProgramListResponse{Programs: h.catalog.All()})
}

// HandleCanEnroll reports enrollment eligibility without side effects
// @Summary Check enrollment eligibility
// @Description Dry-run eligibility check; never charges funds or mutates state
// @Tags education
// @Produce json
// @Param player_id query string true "Player ID"
// @Param program_id query string true "Program ID"
// @Success 200 {object} domain.EligibilityResult
// @Failure 400 {object} ErrorResponse
// @Router /education/can-enroll [get]
func (h *EducationHandlers) HandleCanEnroll(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}
	programID, ok := GetQueryParam(r, w, "program_id")
	if !ok {
		return
	}

	result, err := h.service.CanEnroll(r.Context(), playerID, programID)
	if err != nil {
		respondServiceError(w, r, "Can-enroll check", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// EnrollRequest represents the request to enroll a player in a program
type EnrollRequest struct {
	PlayerID  string `json:"player_id" validate:"required"`
	ProgramID string `json:"program_id" validate:"required"`
}

// HandleEnroll enrolls a player in a program
// @Summary Enroll in a program
// @Description Charges the cost and occupies the program's track. An
// @Description ineligible player gets a 200 response with eligible=false
// @Description and the blocking reason.
// @Tags education
// @Accept json
// @Produce json
// @Param request body EnrollRequest true "Enrollment request"
// @Success 200 {object} domain.EligibilityResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /education/enroll [post]
func (h *EducationHandlers) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	var req EnrollRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Enroll"); err != nil {
		return
	}

	result, err := h.service.Enroll(r.Context(), req.PlayerID, req.ProgramID)
	if err != nil {
		respondServiceError(w, r, "Enroll", err)
		return
	}

	if result.Eligible {
		logger.FromContext(r.Context()).Info("Player enrolled",
			"player_id", req.PlayerID, "program_id", req.ProgramID)
	}

	respondJSON(w, http.StatusOK, result)
}

// AdvanceRequest represents the request to advance the quarter
type AdvanceRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

// HandleAdvance advances both enrollment tracks by one quarter
// @Summary Advance the quarter
// @Description Applies one quarter of progress and bonuses to both tracks.
// @Description Call exactly once per simulated quarter.
// @Tags education
// @Accept json
// @Produce json
// @Param request body AdvanceRequest true "Advance request"
// @Success 200 {object} education.AdvanceResult
// @Failure 400 {object} ErrorResponse
// @Router /education/advance [post]
func (h *EducationHandlers) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	var req AdvanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Advance quarter"); err != nil {
		return
	}

	result, err := h.service.AdvanceAllTracks(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Advance quarter", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// StudyRequest represents the request to study on one track
type StudyRequest struct {
	PlayerID   string  `json:"player_id" validate:"required"`
	Track      string  `json:"track" validate:"required,track"`
	Multiplier float64 `json:"multiplier" validate:"gt=0"`
}

// StudyResponse carries the study progress or graduation message
type StudyResponse struct {
	Message string `json:"message"`
}

// HandleStudy applies an on-demand study action to one track
// @Summary Study
// @Description Applies multiplier-scaled progress to one track without
// @Description quarterly bonuses. An idle track is a no-op.
// @Tags education
// @Accept json
// @Produce json
// @Param request body StudyRequest true "Study request"
// @Success 200 {object} StudyResponse
// @Failure 400 {object} ErrorResponse
// @Router /education/study [post]
func (h *EducationHandlers) HandleStudy(w http.ResponseWriter, r *http.Request) {
	var req StudyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Study"); err != nil {
		return
	}

	track := domain.Track(strings.ToLower(req.Track))
	message, err := h.service.Study(r.Context(), req.PlayerID, track, req.Multiplier)
	if err != nil {
		respondServiceError(w, r, "Study", err)
		return
	}

	respondJSON(w, http.StatusOK, StudyResponse{Message: message})
}

// DropOutRequest represents the request to drop out of a track
type DropOutRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Track    string `json:"track" validate:"required,track"`
}

// HandleDropOut clears one track unconditionally
// @Summary Drop out
// @Description Clears the track to idle. Progress is discarded; no refund.
// @Tags education
// @Accept json
// @Produce json
// @Param request body DropOutRequest true "Drop out request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /education/dropout [post]
func (h *EducationHandlers) HandleDropOut(w http.ResponseWriter, r *http.Request) {
	var req DropOutRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Drop out"); err != nil {
		return
	}

	track := domain.Track(strings.ToLower(req.Track))
	if err := h.service.DropOut(r.Context(), req.PlayerID, track); err != nil {
		respondServiceError(w, r, "Drop out", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDroppedOutSuccess})
}

// ResetRequest represents the request to reset education state
type ResetRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

// HandleReset restores the initial empty education state
// @Summary Reset education state
// @Description Clears both tracks and the completion history
// @Tags education
// @Accept json
// @Produce json
// @Param request body ResetRequest true "Reset request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /education/reset [post]
func (h *EducationHandlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reset education"); err != nil {
		return
	}

	if err := h.service.Reset(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, "Reset education", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResetSuccess})
}

// HandleGetStatus returns the current enrollment state
// @Summary Education status
// @Description Returns both tracks and the completion history
// @Tags education
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.EducationState
// @Failure 400 {object} ErrorResponse
// @Router /education/status [get]
func (h *EducationHandlers) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	state, err := h.service.GetStatus(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get education status", err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}
