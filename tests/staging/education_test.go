//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type programListResponse struct {
	Programs []struct {
		ID            string `json:"id"`
		Title         string `json:"title"`
		Kind          string `json:"kind"`
		DurationTicks int    `json:"duration_ticks"`
	} `json:"programs"`
}

func TestProgramCatalog(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/education/programs", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var list programListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(list.Programs) == 0 {
		t.Error("Expected at least one program in the catalog")
	}

	for _, p := range list.Programs {
		if p.DurationTicks <= 0 {
			t.Errorf("Program %s has non-positive duration", p.ID)
		}
	}
}

func TestEnrollmentLifecycle(t *testing.T) {
	playerID := fmt.Sprintf("staging_student_%d", time.Now().Unix())

	// Fresh players start with money, so a cheap certificate should be open
	resp, body := makeRequest(t, "GET",
		fmt.Sprintf("/api/v1/education/can-enroll?player_id=%s&program_id=cert_first_aid", playerID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var eligibility struct {
		Eligible bool   `json:"eligible"`
		Reason   string `json:"reason"`
	}
	if err := json.Unmarshal(body, &eligibility); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !eligibility.Eligible {
		t.Fatalf("Expected fresh player to be eligible, got reason: %s", eligibility.Reason)
	}

	// Enroll
	resp, body = makeRequest(t, "POST", "/api/v1/education/enroll", map[string]interface{}{
		"player_id":  playerID,
		"program_id": "cert_first_aid",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	// Status should show the certificate track occupied
	resp, body = makeRequest(t, "GET",
		fmt.Sprintf("/api/v1/education/status?player_id=%s", playerID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var status struct {
		Certificate *struct {
			Program struct {
				ID string `json:"id"`
			} `json:"program"`
		} `json:"certificate"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if status.Certificate == nil || status.Certificate.Program.ID != "cert_first_aid" {
		t.Errorf("Expected certificate track to hold cert_first_aid. Body: %s", string(body))
	}

	// Advance the quarter
	resp, body = makeRequest(t, "POST", "/api/v1/education/advance", map[string]interface{}{
		"player_id": playerID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	// Drop out to leave a clean slate
	resp, body = makeRequest(t, "POST", "/api/v1/education/dropout", map[string]interface{}{
		"player_id": playerID,
		"track":     "certificate",
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}
