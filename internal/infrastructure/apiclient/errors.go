package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// APIError is returned for every non-2xx answer from the backend.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// ServerMessage is the human-readable message the backend sent, if any.
func (e *APIError) ServerMessage() string { return e.Message }

// Unwrap maps the status to a domain sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status >= 500:
		return domain.ErrServer
	case e.Status >= 400:
		return domain.ErrValidation
	}
	return nil
}

// errorBody covers the error shapes the backend produces: Spring's default
// error document, hand-written {"message": ...} maps and field error maps.
type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	return &APIError{
		Method:  method,
		Path:    path,
		Status:  status,
		Message: extractMessage(body),
		Body:    body,
	}
}

func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "<") {
			return ""
		}
		return trimmed
	}
	switch {
	case eb.Message != "":
		return eb.Message
	case len(eb.Errors) > 0:
		fields := make([]string, 0, len(eb.Errors))
		for field := range eb.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, field+": "+eb.Errors[field])
		}
		return strings.Join(parts, "; ")
	default:
		return eb.Error
	}
}
