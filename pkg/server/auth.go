package server

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// BasicAuthenticator guards the UI with a single operator account whose
// password is stored as a bcrypt hash.
type BasicAuthenticator struct {
	username     string
	passwordHash []byte
	realm        string
	l            *logrus.Logger
}

func NewBasicAuthenticator(username, passwordHash string, l *logrus.Logger) (*BasicAuthenticator, error) {
	if username == "" {
		return nil, errors.New("empty username")
	}

	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}

	if l == nil {
		l = logrus.New()
	}

	return &BasicAuthenticator{
		username:     username,
		passwordHash: []byte(passwordHash),
		realm:        "nxview",
		l:            l,
	}, nil
}

func (a BasicAuthenticator) Middleware(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !a.valid(user, pass) {
			if ok {
				a.l.WithField("user", user).Warn("rejected UI login")
			}
			w.Header().Set("WWW-Authenticate", `Basic realm="`+a.realm+`", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func (a BasicAuthenticator) valid(user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(pass)) == nil

	return userOK && passOK
}
