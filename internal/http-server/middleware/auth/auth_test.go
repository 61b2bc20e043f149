package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventAdmin/internal/lib/clock"
	"eventAdmin/internal/lib/logger/handlers/slogdiscard"
	"eventAdmin/internal/lib/session"
)

var (
	now    = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	secret = []byte("test-secret")
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	return signWith(t, claims, secret)
}

func signWith(t *testing.T, claims jwt.MapClaims, key []byte) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func unsigned(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return s
}

func TestAuth(t *testing.T) {
	t.Parallel()

	valid := sign(t, jwt.MapClaims{"organization_id": "org-1", "exp": now.Add(time.Hour).Unix()})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantOrg    string
		wantBody   string
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusOK, wantOrg: "org-1"},
		{name: "camel case claim", header: "Bearer " + sign(t, jwt.MapClaims{"organizationId": "org-2"}), wantStatus: http.StatusOK, wantOrg: "org-2"},
		{name: "subject fallback", header: "Bearer " + sign(t, jwt.MapClaims{"sub": "user-7"}), wantStatus: http.StatusOK, wantOrg: "user-7"},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: `{"status":"Error","error":"authorization header is required"}`},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer   ", wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized, wantBody: `{"status":"Error","error":"invalid access token"}`},
		{
			name:       "expired",
			header:     "Bearer " + sign(t, jwt.MapClaims{"organization_id": "org-1", "exp": now.Add(-time.Second).Unix()}),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"Error","error":"access token has expired"}`,
		},
		{name: "no organization", header: "Bearer " + sign(t, jwt.MapClaims{"role": "admin"}), wantStatus: http.StatusUnauthorized},
		{
			name:       "signed with another key",
			header:     "Bearer " + signWith(t, jwt.MapClaims{"organization_id": "org-1"}, []byte("attacker-key")),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"Error","error":"invalid access token"}`,
		},
		{
			name:       "unsigned",
			header:     "Bearer " + unsigned(t, jwt.MapClaims{"organization_id": "org-1"}),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"Error","error":"invalid access token"}`,
		},
		{
			name:       "signature stripped",
			header:     "Bearer " + valid[:strings.LastIndex(valid, ".")+1],
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"Error","error":"invalid access token"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotOrg, gotToken string
			h := New(slogdiscard.NewDiscardLogger(), clock.NewFixed(now), secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotOrg = session.Organization(r.Context())
				gotToken = session.Token(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantOrg, gotOrg)
				assert.NotEmpty(t, gotToken)
			}
		})
	}
}
