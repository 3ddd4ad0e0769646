package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// Transport records every round trip in APIRequests and APIRequestDuration.
type Transport struct {
	Base http.RoundTripper
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()

	res, err := transport.RoundTrip(req)

	APIRequestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	if err != nil {
		APIRequests.WithLabelValues(req.Method, "error").Inc()
		return nil, err
	}

	APIRequests.WithLabelValues(req.Method, strconv.Itoa(res.StatusCode)).Inc()

	return res, nil
}

func NewTransport(base http.RoundTripper) *Transport {
	return &Transport{Base: base}
}

var _ http.RoundTripper = &Transport{}
