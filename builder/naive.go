package builder

import (
	"fmt"
	"time"
)

// NaiveRequest is the without-pattern rendition: telescoping constructors,
// mutable fields, no validation. An invalid request can exist and a built
// one can be mutated behind its owner's back.
type NaiveRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    string
	Timeout time.Duration
}

func NewNaiveRequest(url string) *NaiveRequest {
	return NewNaiveRequestFull(url, "GET", "", 30*time.Second)
}

func NewNaiveRequestWithMethod(url, method string) *NaiveRequest {
	return NewNaiveRequestFull(url, method, "", 30*time.Second)
}

// NewNaiveRequestFull is where the telescoping ends up:
// every caller passes every position, readable or not.
func NewNaiveRequestFull(url, method, body string, timeout time.Duration) *NaiveRequest {
	return &NaiveRequest{
		URL:     url,
		Method:  method,
		Body:    body,
		Timeout: timeout,
		Headers: map[string]string{},
	}
}

func (r *NaiveRequest) String() string {
	body := r.Body
	if body == "" {
		body = "none"
	}
	return fmt.Sprintf("Request[%s %s, body=%s, timeout=%s]", r.Method, r.URL, body, r.Timeout)
}
