package api

import (
	"errors"
	"net/http"

	"github.com/homelab-edu/homelab/pkg/discovery"
)

// discoveryStatus maps a discovery failure onto an HTTP status: the
// service manager being unreachable is a 503, anything else a 500.
func discoveryStatus(err error) int {
	if errors.Is(err, discovery.ErrDiscoveryUnavailable) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func (s *APIServer) getServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.discovery.GetAllServices(r.Context())
	if err != nil {
		s.writeFailure(w, discoveryStatus(err), "Failed to retrieve services", err)
		return
	}

	s.writeSuccess(w, services,
		"Services are background programs managed by systemd. Their status shows whether each one is currently running.")
}

func (s *APIServer) getServiceCategories(w http.ResponseWriter, r *http.Request) {
	grouped, err := s.discovery.GetServicesByCategory(r.Context())
	if err != nil {
		s.writeFailure(w, discoveryStatus(err), "Failed to categorize services", err)
		return
	}

	s.writeSuccess(w, grouped,
		"Grouping services by function makes it easier to understand what each part of your system does.")
}

func (s *APIServer) getCriticalServices(w http.ResponseWriter, r *http.Request) {
	critical, err := s.discovery.GetCriticalServices(r.Context())
	if err != nil {
		s.writeFailure(w, discoveryStatus(err), "Failed to retrieve critical services", err)
		return
	}

	s.writeSuccess(w, critical,
		"Critical services are the ones external users depend on. A failed or missing entry deserves immediate attention.")
}
