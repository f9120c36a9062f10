package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/codearena.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, data)
}

func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// FromError maps a service error onto the status code the API reports.
// Anything unknown is an internal error and its text is not exposed.
func FromError(err error) ErrorMessage {
	switch {
	case errors.Is(err, errs.ErrCodeRequired),
		errors.Is(err, errs.ErrLanguageRequired),
		errors.Is(err, errs.ErrUnsupportedLanguage),
		errors.Is(err, errs.ErrNoTestCases),
		errors.Is(err, errs.EmailRequired),
		errors.Is(err, errs.ErrInvalidProblem),
		errors.Is(err, errs.ErrProblemExists),
		errors.Is(err, errs.ErrBookmarkExists):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, errs.ErrProblemNotFound),
		errors.Is(err, errs.ErrSubmissionNotFound),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrBookmarkNotFound):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.InvalidCredentials),
		errors.Is(err, errs.Unauthorized):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusUnauthorized}
	case errors.Is(err, errs.Forbidden):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusForbidden}
	}
	return ErrorMessage{Message: errs.InternalError.Error(), StatusCode: http.StatusInternalServerError}
}

// BadRequest writes a 400 with the given message
func BadRequest(w http.ResponseWriter, message string) {
	WriteError(w, ErrorMessage{Message: message, StatusCode: http.StatusBadRequest})
}
