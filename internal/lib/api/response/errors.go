package response

import (
	"errors"
	"net/http"

	"eventAdmin/internal/models"
)

var statuses = []struct {
	err    error
	status int
}{
	{models.ErrUnauthorized, http.StatusUnauthorized},
	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrInvalidQuantity, http.StatusBadRequest},
	{models.ErrInvalidState, http.StatusConflict},
	{models.ErrInsufficientInventory, http.StatusConflict},
	{models.ErrNotOnSale, http.StatusConflict},
	{models.ErrIdempotencyConflict, http.StatusConflict},
	{models.ErrPromoNotValid, http.StatusConflict},
	{models.ErrPromoNotApplicable, http.StatusConflict},
	{models.ErrUsageLimitReached, http.StatusConflict},
	{models.ErrDuplicateCode, http.StatusConflict},
	{models.ErrSuperseded, http.StatusConflict},
	{models.ErrDuplicateSubmission, http.StatusConflict},
	{models.ErrNotSupported, http.StatusUnprocessableEntity},
}

// FromError maps a service error onto a status code and an error body.
// Unknown errors become 500 with fallback as the message.
func FromError(err error, fallback string) (int, Response) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, Fields(verr.Fields)
	}

	var terr *models.TransitionError
	if errors.As(err, &terr) {
		return http.StatusConflict, Error(terr.Error())
	}

	var nerr *models.NetworkError
	if errors.As(err, &nerr) {
		return http.StatusBadGateway, Error(nerr.Message)
	}

	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status, Error(s.err.Error())
		}
	}

	return http.StatusInternalServerError, Error(fallback)
}
