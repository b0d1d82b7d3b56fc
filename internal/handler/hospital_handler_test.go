package handler

import (
	"net/http"
	"testing"

	"hospital-coordination-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalHandler(t *testing.T) {
	s := newTestServer(t, "")
	testutil.SeedHospital(t, s.db, 11)
	testutil.SeedHospital(t, s.db, 12)

	w := s.do(http.MethodPut, "/hospital/11/beds", `{"ICU": 2}`, s.token(11, "hospital"))
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/hospitals", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := envelopeData(t, w)
	assert.Equal(t, float64(2), data["count"])
	assert.NotContains(t, w.Body.String(), "password")

	w = s.do(http.MethodGet, "/hospitals/11", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data = envelopeData(t, w)
	assert.Equal(t, "LIC-00011", data["licenseNumber"])
	resources := data["resources"].(map[string]any)
	assert.Len(t, resources, 1)
	assert.Equal(t, float64(2), resources["beds"].(map[string]any)["ICU"])

	w = s.do(http.MethodGet, "/hospitals/404", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/hospitals/nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", envelopeData(t, w)["status"])

	w = s.do(http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
