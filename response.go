package taxicompare

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theoremus-urban-solutions/taxi-compare/formatter"
	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// errorResponse is the body of every non-2xx API response
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps a request error to its HTTP status. Anything unrecognised is
// a query failure scoped to this request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, views.ErrUnknownView):
		return http.StatusNotFound
	case errors.Is(err, formatter.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) int {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "query failed: " + msg
	}
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID(r.Context())})
	return status
}

func writeBody(w http.ResponseWriter, format formatter.Format, body []byte) int {
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	return http.StatusOK
}
