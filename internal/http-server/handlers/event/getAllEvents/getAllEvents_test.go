package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/models"
	"eventAdmin/internal/store"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvents := []models.Event{
		{ID: "e1", Title: "Test Event 1", Status: models.StatusPublished},
		{ID: "e2", Title: "Test Event 2", Status: models.StatusDraft},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success with events",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, store.Query{}).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Error)
				require.Len(t, resp.Events, 2)
				assert.Equal(t, "e1", resp.Events[0].ID)
			},
		},
		{
			name: "Filters are passed through",
			url:  "/events?status=draft&type=all&search=meetup",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, store.Query{Status: "draft", Type: "all", Search: "meetup"}).
					Return(testEvents[1:], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"e2"`)
				assert.NotContains(t, body, `"e1"`)
			},
		},
		{
			name: "Empty list",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, store.Query{}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","events":[]}`,
		},
		{
			name: "Superseded",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, store.Query{}).Return(nil, models.ErrSuperseded)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"request superseded by a newer one"}`,
		},
		{
			name: "Unexpected error",
			url:  "/events",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("ListEvents", mock.Anything, store.Query{}).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventsGetter(t)
			tc.mockSetup(getter)

			handler := New(logger, getter)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
