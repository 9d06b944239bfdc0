package api

import (
	"net/http"
	"strconv"

	"github.com/homelab-edu/homelab/pkg/models"
	"github.com/homelab-edu/homelab/pkg/sysmon"
)

const defaultProcessLimit = 10

func (s *APIServer) getCPU(w http.ResponseWriter, r *http.Request) {
	info, err := s.sysmon.CPUInfo(r.Context())
	if err != nil {
		s.writeFailure(w, http.StatusInternalServerError, "Failed to retrieve CPU information", err)
		return
	}

	s.writeSuccess(w, info,
		"CPU usage shows processor activity. High sustained usage may indicate system stress.")
}

func (s *APIServer) getMemory(w http.ResponseWriter, r *http.Request) {
	info, err := s.sysmon.MemoryInfo(r.Context())
	if err != nil {
		s.writeFailure(w, http.StatusInternalServerError, "Failed to retrieve memory information", err)
		return
	}

	s.writeSuccess(w, info,
		"Memory usage shows RAM consumption. High usage forces the system to use slower disk swap.")
}

func (s *APIServer) getDisk(w http.ResponseWriter, r *http.Request) {
	info, err := s.sysmon.DiskInfo(r.Context())
	if err != nil {
		s.writeFailure(w, http.StatusInternalServerError, "Failed to retrieve disk information", err)
		return
	}

	s.writeSuccess(w, info,
		"Disk usage monitoring prevents system failures from full storage devices.")
}

func (s *APIServer) getProcesses(w http.ResponseWriter, r *http.Request) {
	limit := defaultProcessLimit

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			s.writeJSON(w, http.StatusBadRequest, models.APIResponse{
				Success: false,
				Message: "Invalid limit parameter",
			})

			return
		}

		limit = parsed
	}

	report, err := s.sysmon.TopProcesses(r.Context(), limit)
	if err != nil {
		s.writeFailure(w, http.StatusInternalServerError, "Failed to retrieve process information", err)
		return
	}

	s.writeSuccess(w, report,
		"Process monitoring helps identify what's using system resources and troubleshoot performance issues.")
}

func (s *APIServer) getOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.sysmon.Overview(r.Context())
	if err != nil {
		s.writeFailure(w, http.StatusInternalServerError, "Failed to retrieve system overview", err)
		return
	}

	s.writeSuccess(w, overview,
		"System overview provides a holistic view of homelab health for comprehensive monitoring.")
}

func (s *APIServer) getEducation(w http.ResponseWriter, _ *http.Request) {
	s.writeSuccess(w, sysmon.EducationalContext(),
		"Educational explanations for system monitoring concepts.")
}
