package changeStatus

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/http-server/handlers/event/changeStatus/mocks"
	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/models"
)

func TestChangeStatusHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.StatusChanger)
		expectedStatus int
		expectedBody   string
		contains       string
	}{
		{
			name:        "Success",
			requestBody: `{"status":"published"}`,
			mockSetup: func(m *mocks.StatusChanger) {
				m.On("ChangeStatus", mock.Anything, "e1", models.StatusPublished).
					Return(models.Event{ID: "e1", Status: models.StatusPublished}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       `"status":"published"`,
		},
		{
			name:           "Unknown status",
			requestBody:    `{"status":"live"}`,
			mockSetup:      func(m *mocks.StatusChanger) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Status must be one of [draft published cancelled completed archived]"}`,
		},
		{
			name:           "Missing status",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.StatusChanger) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Status is a required field"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.StatusChanger) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Rejected transition",
			requestBody: `{"status":"archived"}`,
			mockSetup: func(m *mocks.StatusChanger) {
				m.On("ChangeStatus", mock.Anything, "e1", models.StatusArchived).
					Return(models.Event{}, &models.TransitionError{From: models.StatusDraft, To: models.StatusArchived})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"invalid transition from \"draft\" to \"archived\""}`,
		},
		{
			name:        "Event not found",
			requestBody: `{"status":"published"}`,
			mockSetup: func(m *mocks.StatusChanger) {
				m.On("ChangeStatus", mock.Anything, "e1", models.StatusPublished).Return(models.Event{}, models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			changer := mocks.NewStatusChanger(t)
			tc.mockSetup(changer)

			router := chi.NewRouter()
			router.Post("/events/{id}/status", New(slogdiscard.NewDiscardLogger(), changer))

			req, err := http.NewRequest(http.MethodPost, "/events/e1/status", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			if tc.contains != "" {
				assert.Contains(t, rr.Body.String(), tc.contains)
			}
		})
	}
}
