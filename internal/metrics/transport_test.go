package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	counter := APIRequests.WithLabelValues(http.MethodGet, "418")
	before := testutil.ToFloat64(counter)

	client := &http.Client{
		Transport: NewTransport(server.Client().Transport),
	}

	res, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res.Body.Close()

	if e, g := before+1, testutil.ToFloat64(counter); e != g {
		t.Errorf("api_requests{method=GET,status=418}: expected '%v', got '%v'", e, g)
	}
}
