package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBody = 4 << 10

// HTTPError is returned for any response outside the 2xx range.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	// Message and Reason are read from the catalog's JSON error body when
	// present.
	Message string
	Reason  string
	Body    string
}

func (err *HTTPError) Error() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s %s: %d - %s", err.Method, err.URL, err.StatusCode, http.StatusText(err.StatusCode)))
	if err.Message != "" {
		s.WriteString(": " + err.Message)
	}
	if err.Reason != "" {
		s.WriteString(": " + err.Reason)
	}
	return s.String()
}

// Temporary reports whether repeating the request may succeed.
func (err *HTTPError) Temporary() bool {
	return err.StatusCode == http.StatusTooManyRequests || err.StatusCode >= http.StatusInternalServerError
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Reason  string `json:"reason"`
}

func newHTTPError(resp *http.Response) *HTTPError {
	herr := &HTTPError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	herr.Body = strings.TrimSpace(string(b))

	var eb errorBody
	if json.Unmarshal(b, &eb) == nil {
		herr.Message = eb.Message
		herr.Reason = eb.Reason
	}
	return herr
}

// IsStatus reports whether err is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var herr *HTTPError
	return errors.As(err, &herr) && herr.StatusCode == code
}
