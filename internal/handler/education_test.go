package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/halcyonworks/QuarterLife_Go/internal/catalog"
	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
	"github.com/halcyonworks/QuarterLife_Go/internal/education"
	"github.com/halcyonworks/QuarterLife_Go/internal/handler"
	"github.com/halcyonworks/QuarterLife_Go/mocks"
)

func testHandlerCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(context.Background(), []domain.ProgramDefinition{
		{
			ID:            "cert_first_aid",
			Title:         "First Aid Certification",
			Kind:          domain.KindCertificate,
			Cost:          500,
			DurationTicks: 2,
		},
		{
			ID:              "degree_business",
			Title:           "B.S. Business Administration",
			Kind:            domain.KindDegree,
			Cost:            7500,
			CostIsRecurring: true,
			DurationTicks:   16,
		},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return cat
}

func TestEducationHandlers_Enroll(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockEducationService)
		expectedStatus int
		expectedError  string
		expectedBody   *domain.EligibilityResult
	}{
		{
			name: "Success",
			requestBody: handler.EnrollRequest{
				PlayerID:  "player-1",
				ProgramID: "cert_first_aid",
			},
			setupMock: func(m *mocks.MockEducationService) {
				m.On("Enroll", mock.Anything, "player-1", "cert_first_aid").
					Return(domain.EligibilityResult{Eligible: true, CostDue: 500}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &domain.EligibilityResult{Eligible: true, CostDue: 500},
		},
		{
			name: "Ineligible Returns Reason",
			requestBody: handler.EnrollRequest{
				PlayerID:  "player-1",
				ProgramID: "degree_business",
			},
			setupMock: func(m *mocks.MockEducationService) {
				m.On("Enroll", mock.Anything, "player-1", "degree_business").
					Return(domain.EligibilityResult{
						Eligible: false,
						Reason:   "insufficient funds: costs $22,500",
						CostDue:  22500,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &domain.EligibilityResult{
				Eligible: false,
				Reason:   "insufficient funds: costs $22,500",
				CostDue:  22500,
			},
		},
		{
			name: "Track Occupied",
			requestBody: handler.EnrollRequest{
				PlayerID:  "player-1",
				ProgramID: "degree_business",
			},
			setupMock: func(m *mocks.MockEducationService) {
				m.On("Enroll", mock.Anything, "player-1", "degree_business").
					Return(domain.EligibilityResult{}, domain.ErrTrackOccupied)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "track already occupied",
		},
		{
			name:           "Validation Error (Missing Fields)",
			requestBody:    handler.EnrollRequest{PlayerID: "player-1"},
			setupMock:      func(m *mocks.MockEducationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request",
		},
		{
			name:           "Invalid Body (Malformed JSON)",
			requestBody:    "not-json",
			setupMock:      func(m *mocks.MockEducationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockEducationService(t)
			tt.setupMock(mockSvc)

			h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/education/enroll", bytes.NewReader(body))
			w := httptest.NewRecorder()

			h.HandleEnroll(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}

			if tt.expectedBody != nil {
				var response domain.EligibilityResult
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
		})
	}
}

func TestEducationHandlers_CanEnroll(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockEducationService(t)
		mockSvc.On("CanEnroll", mock.Anything, "player-1", "cert_first_aid").
			Return(domain.EligibilityResult{Eligible: true, CostDue: 500}, nil)

		h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

		req := httptest.NewRequest(http.MethodGet, "/education/can-enroll?player_id=player-1&program_id=cert_first_aid", nil)
		w := httptest.NewRecorder()

		h.HandleCanEnroll(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"eligible":true`)
	})

	t.Run("Missing Query Param", func(t *testing.T) {
		mockSvc := mocks.NewMockEducationService(t)
		h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

		req := httptest.NewRequest(http.MethodGet, "/education/can-enroll?player_id=player-1", nil)
		w := httptest.NewRecorder()

		h.HandleCanEnroll(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "program_id")
	})
}

func TestEducationHandlers_Advance(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockEducationService(t)
		mockSvc.On("AdvanceAllTracks", mock.Anything, "player-1").
			Return(education.AdvanceResult{
				Certificate: "Graduated from First Aid Certification!",
				Combined:    "Graduated from First Aid Certification!",
			}, nil)

		h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

		body, _ := json.Marshal(handler.AdvanceRequest{PlayerID: "player-1"})
		req := httptest.NewRequest(http.MethodPost, "/education/advance", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HandleAdvance(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Graduated from First Aid Certification!")
	})

	t.Run("Service Error", func(t *testing.T) {
		mockSvc := mocks.NewMockEducationService(t)
		mockSvc.On("AdvanceAllTracks", mock.Anything, "player-1").
			Return(education.AdvanceResult{}, assert.AnError)

		h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

		body, _ := json.Marshal(handler.AdvanceRequest{PlayerID: "player-1"})
		req := httptest.NewRequest(http.MethodPost, "/education/advance", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HandleAdvance(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEducationHandlers_Study(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    handler.StudyRequest
		setupMock      func(*mocks.MockEducationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: handler.StudyRequest{
				PlayerID:   "player-1",
				Track:      "academic",
				Multiplier: 2,
			},
			setupMock: func(m *mocks.MockEducationService) {
				m.On("Study", mock.Anything, "player-1", domain.TrackAcademic, 2.0).
					Return("Studied B.S. Business Administration: 12.5% complete", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "12.5% complete",
		},
		{
			name: "Idle Track Empty Message",
			requestBody: handler.StudyRequest{
				PlayerID:   "player-1",
				Track:      "certificate",
				Multiplier: 1,
			},
			setupMock: func(m *mocks.MockEducationService) {
				m.On("Study", mock.Anything, "player-1", domain.TrackCertificate, 1.0).
					Return("", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":""}`,
		},
		{
			name: "Invalid Track",
			requestBody: handler.StudyRequest{
				PlayerID:   "player-1",
				Track:      "night-school",
				Multiplier: 1,
			},
			setupMock:      func(m *mocks.MockEducationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid track",
		},
		{
			name: "Zero Multiplier",
			requestBody: handler.StudyRequest{
				PlayerID:   "player-1",
				Track:      "academic",
				Multiplier: 0,
			},
			setupMock:      func(m *mocks.MockEducationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockEducationService(t)
			tt.setupMock(mockSvc)

			h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}

			req := httptest.NewRequest(http.MethodPost, "/education/study", bytes.NewReader(body))
			w := httptest.NewRecorder()

			h.HandleStudy(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestEducationHandlers_DropOut(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockEducationService(t)
		mockSvc.On("DropOut", mock.Anything, "player-1", domain.TrackAcademic).Return(nil)

		h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

		body, _ := json.Marshal(handler.DropOutRequest{PlayerID: "player-1", Track: "academic"})
		req := httptest.NewRequest(http.MethodPost, "/education/dropout", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HandleDropOut(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), handler.MsgDroppedOutSuccess)
	})

	t.Run("Uppercase Track Accepted", func(t *testing.T) {
		mockSvc := mocks.NewMockEducationService(t)
		mockSvc.On("DropOut", mock.Anything, "player-1", domain.TrackCertificate).Return(nil)

		h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

		body, _ := json.Marshal(handler.DropOutRequest{PlayerID: "player-1", Track: "Certificate"})
		req := httptest.NewRequest(http.MethodPost, "/education/dropout", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.HandleDropOut(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEducationHandlers_Status(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		state := domain.NewEducationState()
		state.AddCompleted("cert_first_aid")

		mockSvc := mocks.NewMockEducationService(t)
		mockSvc.On("GetStatus", mock.Anything, "player-1").Return(state, nil)

		h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

		req := httptest.NewRequest(http.MethodGet, "/education/status?player_id=player-1", nil)
		w := httptest.NewRecorder()

		h.HandleGetStatus(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cert_first_aid")
	})
}

func TestEducationHandlers_GetPrograms(t *testing.T) {
	mockSvc := mocks.NewMockEducationService(t)
	h := handler.NewEducationHandlers(mockSvc, testHandlerCatalog(t))

	req := httptest.NewRequest(http.MethodGet, "/education/programs", nil)
	w := httptest.NewRecorder()

	h.HandleGetPrograms(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response handler.ProgramListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Programs, 2)
	assert.Equal(t, "cert_first_aid", response.Programs[0].ID)
}
