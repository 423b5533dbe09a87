package server

import (
	"github.com/sirupsen/logrus"
)

func WithAddress(address string) func(*Server) {
	return func(s *Server) {
		s.address = address
	}
}

func WithDevice(device Device) func(*Server) {
	return func(s *Server) {
		s.device = device
	}
}

func WithHistory(history HistoryReader) func(*Server) {
	return func(s *Server) {
		s.history = history
	}
}

func WithLogger(l *logrus.Logger) func(*Server) {
	return func(s *Server) {
		s.l = l
	}
}

func WithBasicAuth(auth *BasicAuthenticator) func(*Server) {
	return func(s *Server) {
		s.auth = auth
	}
}
