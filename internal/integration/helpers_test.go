package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mkaraslan/cinema-hall-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// Fields whose values are nondeterministic across runs: request metadata,
// server-generated ids, and the QR artifact (it encodes the booking ref).
var keysToIgnore = map[string]struct{}{
	"timestamp":  {},
	"requestId":  {},
	"createdAt":  {},
	"bookingRef": {},
	"qrCode":     {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req, nil
}

// availableDatesJSON renders the current booking window the way the API
// serializes it.
func availableDatesJSON() string {
	dates := domain.BookableDates(time.Now())

	quoted := make([]string, len(dates))
	for i, date := range dates {
		quoted[i] = `"` + date.Format(domain.DateLayout) + `"`
	}

	return "[" + strings.Join(quoted, ", ") + "]"
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}
