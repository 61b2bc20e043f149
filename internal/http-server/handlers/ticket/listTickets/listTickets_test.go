package listTickets

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventAdmin/internal/http-server/handlers/ticket/listTickets/mocks"
	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/models"
)

func TestListTicketsHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		tickets        []models.Ticket
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			tickets:        []models.Ticket{{ID: "t1", EventID: "e1", Name: "General"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty list",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","tickets":[]}`,
		},
		{
			name:           "Session expired",
			err:            models.ErrUnauthorized,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "Superseded",
			err:            models.ErrSuperseded,
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"request superseded by a newer one"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewTicketsLister(t)
			lister.On("ListTickets", mock.Anything).Return(tc.tickets, tc.err)

			rr := httptest.NewRecorder()
			New(slogdiscard.NewDiscardLogger(), lister).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tickets", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"id":"t1"`)
			}
		})
	}
}
