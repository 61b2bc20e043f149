package groupBooking

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/dashboard"
	"eventAdmin/internal/http-server/handlers/event/groupBooking/mocks"
	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/models"
)

func TestRequestHandler(t *testing.T) {
	t.Parallel()

	validBody := `{"ticketTypeId":"t1","groupName":"Acme","contactEmail":"ops@acme.test","requestedQuantity":12}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.GroupBookingRequester)
		expectedStatus int
		contains       string
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.GroupBookingRequester) {
				m.On("RequestGroupBooking", mock.Anything, "e1", dashboard.GroupBookingRequest{
					TicketTypeID:      "t1",
					GroupName:         "Acme",
					ContactEmail:      "ops@acme.test",
					RequestedQuantity: 12,
				}).Return(models.GroupBooking{ID: "g1", Status: models.GroupBookingPending, DiscountPercentage: 10}, nil)
			},
			expectedStatus: http.StatusCreated,
			contains:       `"status":"pending"`,
		},
		{
			name:        "Below group minimum",
			requestBody: validBody,
			mockSetup: func(m *mocks.GroupBookingRequester) {
				m.On("RequestGroupBooking", mock.Anything, "e1", mock.Anything).Return(models.GroupBooking{}, models.ErrInvalidQuantity)
			},
			expectedStatus: http.StatusBadRequest,
			contains:       `"error":"invalid quantity"`,
		},
		{
			name:           "Bad email",
			requestBody:    `{"ticketTypeId":"t1","groupName":"Acme","contactEmail":"nope","requestedQuantity":12}`,
			mockSetup:      func(m *mocks.GroupBookingRequester) {},
			expectedStatus: http.StatusBadRequest,
			contains:       `"error":"field ContactEmail is not valid"`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `nope`,
			mockSetup:      func(m *mocks.GroupBookingRequester) {},
			expectedStatus: http.StatusBadRequest,
			contains:       `"error":"failed to decode request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			requester := mocks.NewGroupBookingRequester(t)
			tc.mockSetup(requester)

			router := chi.NewRouter()
			router.Post("/events/{id}/group-bookings", NewRequest(slogdiscard.NewDiscardLogger(), requester))

			req, err := http.NewRequest(http.MethodPost, "/events/e1/group-bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}

func TestDecideHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.GroupBookingDecider)
		expectedStatus int
		contains       string
	}{
		{
			name:        "Approve",
			requestBody: `{"status":"approved"}`,
			mockSetup: func(m *mocks.GroupBookingDecider) {
				m.On("DecideGroupBooking", mock.Anything, "e1", "g1", models.GroupBookingApproved).
					Return(models.GroupBooking{ID: "g1", Status: models.GroupBookingApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       `"status":"approved"`,
		},
		{
			name:        "Already decided",
			requestBody: `{"status":"rejected"}`,
			mockSetup: func(m *mocks.GroupBookingDecider) {
				m.On("DecideGroupBooking", mock.Anything, "e1", "g1", models.GroupBookingRejected).
					Return(models.GroupBooking{}, models.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
			contains:       `"error":"invalid state"`,
		},
		{
			name:           "Pending is not a decision",
			requestBody:    `{"status":"pending"}`,
			mockSetup:      func(m *mocks.GroupBookingDecider) {},
			expectedStatus: http.StatusBadRequest,
			contains:       `"error":"field Status must be one of [approved rejected]"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			decider := mocks.NewGroupBookingDecider(t)
			tc.mockSetup(decider)

			router := chi.NewRouter()
			router.Post("/events/{id}/group-bookings/{bookingId}/decision", NewDecide(slogdiscard.NewDiscardLogger(), decider))

			req, err := http.NewRequest(http.MethodPost, "/events/e1/group-bookings/g1/decision", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.contains)
		})
	}
}
