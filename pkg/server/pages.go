package server

import (
	"fmt"
	"net/http"

	"github.com/aRestless/nxview/pkg/nxapi"
)

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index", PageData{})
}

func (s *Server) navigate(w http.ResponseWriter, r *http.Request) {
	dest, ok := Destination(r.PostFormValue("command"))
	if !ok {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid Command"))
		return
	}

	http.Redirect(w, r, dest, http.StatusFound)
}

func (s *Server) interfaces(w http.ResponseWriter, r *http.Request) {
	interfaces, err := s.device.Interfaces(r.Context())

	s.render(w, "interfaces", PageData{
		Interfaces:  interfaces,
		DeviceError: deviceError(err),
	})
}

func (s *Server) interfaceDetail(w http.ResponseWriter, r *http.Request) {
	interfaces, err := s.device.Interfaces(r.Context())

	data := PageData{
		Interfaces:  interfaces,
		DeviceError: deviceError(err),
	}

	if r.Method == http.MethodPost {
		name := r.PostFormValue("interface_name")
		detail, ok := nxapi.FindInterface(interfaces, name)
		if ok {
			data.Detail = detail
		} else {
			data.Error = fmt.Sprintf("Interface '%s' not found. Please try again.", name)
		}
	}

	s.render(w, "interface_detail", data)
}

func (s *Server) deviceInfo(w http.ResponseWriter, r *http.Request) {
	info, err := s.device.DeviceInfo(r.Context())

	s.render(w, "device_info", PageData{
		Info:        info,
		DeviceError: deviceError(err),
	})
}

func (s *Server) nonVlan(w http.ResponseWriter, r *http.Request) {
	interfaces, err := s.device.NonVlanInterfaces(r.Context())

	s.render(w, "non_vlan", PageData{
		Interfaces:  interfaces,
		DeviceError: deviceError(err),
	})
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	logs, err := s.history.Recent(historyLimit)
	if err != nil {
		s.handleErr(fmt.Errorf("listing history: %w", err), w)
		return
	}

	s.render(w, "history", PageData{History: logs})
}

func deviceError(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("Switch query failed: %v", err)
}
