package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homelab-edu/homelab/pkg/discovery"
	"github.com/homelab-edu/homelab/pkg/logger"
	"github.com/homelab-edu/homelab/pkg/models"
)

var errSampleBroken = errors.New("collector broken")

type fakeDiscovery struct {
	err error
}

func (f *fakeDiscovery) GetAllServices(_ context.Context) ([]models.EnrichedUnit, error) {
	if f.err != nil {
		return nil, f.err
	}

	return []models.EnrichedUnit{
		{
			ServiceUnit: models.ServiceUnit{Name: "nginx.service", Status: models.UnitStatusActive},
			Category:    models.CategoryNetworking,
			Education:   models.EducationalContext{Description: "web server", Importance: "x", Troubleshooting: "y"},
		},
	}, nil
}

func (f *fakeDiscovery) GetServicesByCategory(ctx context.Context) (map[models.CategoryLabel][]models.EnrichedUnit, error) {
	all, err := f.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}

	return map[models.CategoryLabel][]models.EnrichedUnit{models.CategoryNetworking: all}, nil
}

func (f *fakeDiscovery) GetCriticalServices(_ context.Context) (models.CriticalServices, error) {
	if f.err != nil {
		return nil, f.err
	}

	return models.CriticalServices{
		{Name: "nginx.service", Status: models.UnitStatusActive, Importance: "a", Troubleshooting: "b"},
		{Name: "plex.service", Status: models.UnitStatusUnknown, Importance: "c", Troubleshooting: "d"},
	}, nil
}

type fakeSysmon struct {
	err       error
	lastLimit int
}

func (f *fakeSysmon) CPUInfo(_ context.Context) (*models.CPUInfo, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &models.CPUInfo{UsagePercent: 12.5}, nil
}

func (f *fakeSysmon) MemoryInfo(_ context.Context) (*models.MemoryInfo, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &models.MemoryInfo{UsagePercent: 50}, nil
}

func (f *fakeSysmon) DiskInfo(_ context.Context) (*models.DiskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &models.DiskInfo{}, nil
}

func (f *fakeSysmon) TopProcesses(_ context.Context, limit int) (*models.ProcessReport, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.lastLimit = limit

	return &models.ProcessReport{TotalProcesses: 3}, nil
}

func (f *fakeSysmon) Overview(_ context.Context) (*models.Overview, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &models.Overview{Hostname: "test-host"}, nil
}

func newTestServer(d ServiceDiscovery, m SystemMonitor) *APIServer {
	return NewAPIServer(
		WithDiscoveryService(d),
		WithSystemMonitor(m),
		WithLogger(logger.NewTestLogger()),
	)
}

func doRequest(t *testing.T, s *APIServer, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()

	var resp models.APIResponse

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeDiscovery{}, &fakeSysmon{})
	rec := doRequest(t, s, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "homelab", body["service"])
}

func TestGetServices(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeDiscovery{}, &fakeSysmon{})
	rec := doRequest(t, s, "/api/services")

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.NotEmpty(t, resp.EducationalNote)
}

func TestGetServicesDiscoveryUnavailable(t *testing.T) {
	t.Parallel()

	failure := fmt.Errorf("%w: systemctl exited 1", discovery.ErrDiscoveryUnavailable)
	s := newTestServer(&fakeDiscovery{err: failure}, &fakeSysmon{})

	for _, path := range []string{"/api/services", "/api/services/categories", "/api/services/critical"} {
		rec := doRequest(t, s, path)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)

		resp := decodeEnvelope(t, rec)
		assert.False(t, resp.Success, path)
		assert.NotEmpty(t, resp.Error, path)
		assert.Nil(t, resp.Data, path)
	}
}

func TestGetCriticalServicesOrdered(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeDiscovery{}, &fakeSysmon{})
	rec := doRequest(t, s, "/api/services/critical")

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Index(body, "nginx.service") < strings.Index(body, "plex.service"))
}

func TestGetProcessesLimit(t *testing.T) {
	t.Parallel()

	mon := &fakeSysmon{}
	s := newTestServer(&fakeDiscovery{}, mon)

	rec := doRequest(t, s, "/api/processes?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, mon.lastLimit)

	rec = doRequest(t, s, "/api/processes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, defaultProcessLimit, mon.lastLimit)
}

func TestGetProcessesInvalidLimit(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeDiscovery{}, &fakeSysmon{})

	for _, path := range []string{"/api/processes?limit=abc", "/api/processes?limit=0"} {
		rec := doRequest(t, s, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestSysmonEndpointFailure(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeDiscovery{}, &fakeSysmon{err: errSampleBroken})

	for _, path := range []string{"/api/cpu", "/api/memory", "/api/disk", "/api/overview"} {
		rec := doRequest(t, s, path)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)

		resp := decodeEnvelope(t, rec)
		assert.False(t, resp.Success, path)
	}
}

func TestGetEducation(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeDiscovery{}, &fakeSysmon{})
	rec := doRequest(t, s, "/api/education")

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["cpu_usage"])
}

func TestAPIIndexListsEndpoints(t *testing.T) {
	t.Parallel()

	s := newTestServer(&fakeDiscovery{}, &fakeSysmon{})
	rec := doRequest(t, s, "/api")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/services/critical")
}
