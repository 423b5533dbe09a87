package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T) *BasicAuthenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Admin_1234!"), bcrypt.MinCost)
	require.NoError(t, err)

	a, err := NewBasicAuthenticator("operator", string(hash), nil)
	require.NoError(t, err)

	return a
}

func TestBasicAuthenticator(t *testing.T) {
	h := newTestHandler(t, WithDevice(testDevice()), WithBasicAuth(newTestAuthenticator(t)))

	cases := []struct {
		name     string
		user     string
		pass     string
		setAuth  bool
		expected int
	}{
		{name: "no credentials", expected: http.StatusUnauthorized},
		{name: "wrong password", user: "operator", pass: "nope", setAuth: true, expected: http.StatusUnauthorized},
		{name: "wrong user", user: "admin", pass: "Admin_1234!", setAuth: true, expected: http.StatusUnauthorized},
		{name: "valid", user: "operator", pass: "Admin_1234!", setAuth: true, expected: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.pass)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tc.expected, w.Code)
			if tc.expected == http.StatusUnauthorized {
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")
			}
		})
	}
}

func TestNewBasicAuthenticatorValidation(t *testing.T) {
	_, err := NewBasicAuthenticator("", "$2a$10$abc", nil)
	assert.Error(t, err)

	_, err = NewBasicAuthenticator("operator", "plaintext", nil)
	assert.Error(t, err)
}
