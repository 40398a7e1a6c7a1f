//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestPlayerStateEndpoint(t *testing.T) {
	playerID := fmt.Sprintf("staging_player_%d", time.Now().Unix())

	// Unknown players get a fresh save rather than an error
	resp, body := makeRequest(t, "GET",
		fmt.Sprintf("/api/v1/player/state?player_id=%s", playerID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var state struct {
		Money      int64              `json:"money"`
		Attributes map[string]float64 `json:"attributes"`
	}
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if state.Money <= 0 {
		t.Errorf("Expected fresh player to start with money, got %d", state.Money)
	}
	if len(state.Attributes) == 0 {
		t.Error("Expected fresh player to have starting attributes")
	}
}

func TestNewGameEndpoint(t *testing.T) {
	playerID := fmt.Sprintf("staging_newgame_%d", time.Now().Unix())

	resp, body := makeRequest(t, "POST", "/api/v1/player/new-game", map[string]interface{}{
		"player_id": playerID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	// Balance reflects the initial bankroll
	resp, body = makeRequest(t, "GET",
		fmt.Sprintf("/api/v1/player/balance?player_id=%s", playerID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var balance struct {
		Balance int64 `json:"balance"`
	}
	if err := json.Unmarshal(body, &balance); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if balance.Balance <= 0 {
		t.Errorf("Expected positive starting balance, got %d", balance.Balance)
	}
}
