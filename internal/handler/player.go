package handler

import (
	"net/http"

	"github.com/halcyonworks/QuarterLife_Go/internal/logger"
	"github.com/halcyonworks/QuarterLife_Go/internal/player"
)

// PlayerHandlers bundles the HTTP handlers for the player endpoints.
type PlayerHandlers struct {
	service player.Service
}

// NewPlayerHandlers creates handlers backed by the player service
func NewPlayerHandlers(service player.Service) *PlayerHandlers {
	return &PlayerHandlers{service: service}
}

// HandleGetState returns the full player save
// @Summary Player state
// @Description Returns the player save, creating a fresh one for new players
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.PlayerState
// @Failure 400 {object} ErrorResponse
// @Router /player/state [get]
func (h *PlayerHandlers) HandleGetState(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	state, err := h.service.GetState(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get player state", err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// NewGameRequest represents the request to start a new game
type NewGameRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

// HandleNewGame discards the existing save and starts from initial state
// @Summary New game
// @Description Replaces the player save with the initial state
// @Tags player
// @Accept json
// @Produce json
// @Param request body NewGameRequest true "New game request"
// @Success 201 {object} domain.PlayerState
// @Failure 400 {object} ErrorResponse
// @Router /player/new-game [post]
func (h *PlayerHandlers) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "New game"); err != nil {
		return
	}

	state, err := h.service.NewGame(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "New game", err)
		return
	}

	logger.FromContext(r.Context()).Info("New game started", "player_id", req.PlayerID)
	respondJSON(w, http.StatusCreated, state)
}

// BalanceResponse carries the player's money balance
type BalanceResponse struct {
	PlayerID string `json:"player_id"`
	Balance  int64  `json:"balance"`
}

// HandleGetBalance returns the current money balance
// @Summary Player balance
// @Tags player
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /player/balance [get]
func (h *PlayerHandlers) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	balance, err := h.service.Balance(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get balance", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{PlayerID: playerID, Balance: balance})
}
