// Package builder demonstrates the Builder pattern on HTTP request
// construction: an immutable Request product, a fluent Builder that
// validates at Build time, and a Director bundling common presets.
package builder

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrURLMissing is returned by Build when the mandatory URL was never set.
const ErrURLMissing errorkit.Error = "request URL is required"

const (
	defaultMethod  = "GET"
	defaultTimeout = 30 * time.Second
)

// Request is the product: an immutable description of an HTTP call.
// The zero Request is not valid; construct it through Builder or Director.
type Request struct {
	url     string
	method  string
	headers map[string]string
	body    string
	timeout time.Duration
}

func (r Request) URL() string            { return r.url }
func (r Request) Method() string         { return r.method }
func (r Request) Body() string           { return r.body }
func (r Request) Timeout() time.Duration { return r.timeout }

// Header returns the value of a single header.
func (r Request) Header(key string) (string, bool) {
	v, ok := r.headers[key]
	return v, ok
}

// Headers returns a copy of the header set,
// so callers cannot mutate the built request through it.
func (r Request) Headers() map[string]string {
	out := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		out[k] = v
	}
	return out
}

func (r Request) String() string {
	var hs []string
	for k, v := range r.headers {
		hs = append(hs, k+"="+v)
	}
	sort.Strings(hs)
	body := r.body
	if body == "" {
		body = "none"
	}
	return fmt.Sprintf("Request[%s %s, headers={%s}, body=%s, timeout=%s]",
		r.method, r.url, strings.Join(hs, ", "), body, r.timeout)
}

// Builder accumulates request attributes in any order.
// Every With method returns the receiver for chaining.
type Builder struct {
	url     string
	method  string
	headers map[string]string
	body    string
	timeout time.Duration
}

func New() *Builder {
	return &Builder{headers: map[string]string{}}
}

func (b *Builder) WithURL(url string) *Builder {
	b.url = url
	return b
}

func (b *Builder) WithMethod(method string) *Builder {
	b.method = method
	return b
}

func (b *Builder) WithHeader(key, value string) *Builder {
	if b.headers == nil {
		b.headers = map[string]string{}
	}
	b.headers[key] = value
	return b
}

func (b *Builder) WithBody(body string) *Builder {
	b.body = body
	return b
}

func (b *Builder) WithTimeout(d time.Duration) *Builder {
	b.timeout = d
	return b
}

// Build validates the accumulated attributes and produces the Request.
// Missing mandatory attributes fail fast with ErrURLMissing.
func (b *Builder) Build() (Request, error) {
	if b.url == "" {
		return Request{}, ErrURLMissing
	}
	r := Request{
		url:     b.url,
		method:  b.method,
		body:    b.body,
		timeout: b.timeout,
		headers: make(map[string]string, len(b.headers)),
	}
	for k, v := range b.headers {
		r.headers[k] = v
	}
	if r.method == "" {
		r.method = defaultMethod
	}
	if r.timeout == 0 {
		r.timeout = defaultTimeout
	}
	return r, nil
}

// Director bundles the request shapes the scenarios keep reaching for.
type Director struct{}

func (Director) SimpleGet(url string) (Request, error) {
	return New().WithURL(url).Build()
}

func (Director) JSONPost(url, json string) (Request, error) {
	return New().
		WithURL(url).
		WithMethod("POST").
		WithHeader("Content-Type", "application/json").
		WithBody(json).
		Build()
}

func (Director) Authenticated(url, token string) (Request, error) {
	return New().
		WithURL(url).
		WithHeader("Authorization", "Bearer "+token).
		Build()
}
