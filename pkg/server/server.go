package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/aRestless/nxview/pkg/model"
	"github.com/aRestless/nxview/pkg/nxapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Device is the subset of the NX-API client the pages need.
type Device interface {
	Interfaces(ctx context.Context) ([]nxapi.Interface, error)
	DeviceInfo(ctx context.Context) (nxapi.DeviceInfo, error)
	NonVlanInterfaces(ctx context.Context) ([]nxapi.Interface, error)
}

type HistoryReader interface {
	Recent(limit int) ([]model.CommandLog, error)
}

type Server struct {
	address string
	device  Device
	history HistoryReader
	auth    *BasicAuthenticator
	l       *logrus.Logger
	pages   map[string]*template.Template
}

func New(options ...func(*Server)) *Server {
	svr := &Server{
		address: "127.0.0.1:5000",
		l:       logrus.New(),
	}
	for _, o := range options {
		o(svr)
	}

	return svr
}

func (s *Server) Serve() error {
	r, err := s.Handler()
	if err != nil {
		return fmt.Errorf("creating router: %w", err)
	}

	s.l.Infof("listening on http://%s", s.address)
	return http.ListenAndServe(s.address, r)
}

// Handler builds the router. It fails only if the embedded templates do not parse.
func (s *Server) Handler() (http.Handler, error) {
	if s.device == nil {
		return nil, fmt.Errorf("no device configured")
	}

	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	s.pages = pages

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if s.auth != nil {
		r.Use(s.auth.Middleware)
	}

	r.Get("/", s.index)
	r.Post("/navigate", s.navigate)
	r.Get("/interfaces", s.interfaces)
	r.Get("/interface_detail", s.interfaceDetail)
	r.Post("/interface_detail", s.interfaceDetail)
	r.Get("/device_info", s.deviceInfo)
	r.Get("/non_vlan", s.nonVlan)
	if s.history != nil {
		r.Get("/history", s.listHistory)
	}

	return r, nil
}

func (s *Server) handleErr(err error, w http.ResponseWriter) {
	s.l.Error(err)
	w.WriteHeader(http.StatusInternalServerError)
}

func (s *Server) render(w http.ResponseWriter, page string, data PageData) {
	tmpl, ok := s.pages[page]
	if !ok {
		s.handleErr(fmt.Errorf("unknown page %s", page), w)
		return
	}

	data.Page = page
	data.HasHistory = s.history != nil

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.handleErr(fmt.Errorf("rendering %s: %w", page, err), w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	if err != nil {
		s.l.WithError(err).Debug("flushing response")
	}
}
