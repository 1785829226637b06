package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	cookies []*http.Cookie
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest runs one request through the router and returns the recorded
// response. Options add headers (bearer tokens) or cookies (sessions).
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) *http.Response {
	options := RequestOptions{
		headers: make(map[string]string),
		cookies: nil,
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	request.Header.Set("Content-Type", "application/json")
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}
	for _, cookie := range options.cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result()
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers[name] = value
	}
}

func WithCookies(c []*http.Cookie) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.cookies = c
	}
}
