package sportsdb

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestObserver is notified after every request the client issues.
type RequestObserver interface {
	ObserveRequest(endpoint, outcome string, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(string, string, time.Duration) {}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func resolveObserver(o RequestObserver) RequestObserver {
	if o != nil {
		return o
	}
	return nopObserver{}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveAPIKey(key string) string {
	if key == "" {
		return defaultAPIKey
	}
	return key
}
