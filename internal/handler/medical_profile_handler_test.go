package handler

import (
	"fmt"
	"net/http"
	"testing"

	"hospital-coordination-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalProfileHandler(t *testing.T) {
	s := newTestServer(t, "")
	testutil.SeedHospital(t, s.db, 3)
	patient := testutil.SeedPatient(t, s.db, "meera@example.com")
	other := testutil.SeedPatient(t, s.db, "kiran@example.com")

	patientToken := s.token(patient.ID, "patient")
	hospitalToken := s.token(3, "hospital")
	profilePath := fmt.Sprintf("/medical-profile/%d", patient.ID)

	w := s.do(http.MethodGet, "/medical-profile/exists", nil, patientToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, envelopeData(t, w)["exists"])

	w = s.do(http.MethodGet, profilePath, nil, patientToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := map[string]any{
		"bloodType":   "O+",
		"allergies":   []string{"penicillin", " "},
		"medications": []string{},
		"lastCheckup": "2026-03-14",
	}
	w = s.do(http.MethodPost, "/medical-profile", body, hospitalToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/medical-profile", body, patientToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := envelopeData(t, w)
	assert.Equal(t, []any{"penicillin"}, created["allergies"])

	w = s.do(http.MethodPost, "/medical-profile", body, patientToken)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodGet, "/medical-profile/exists", nil, patientToken)
	assert.Equal(t, true, envelopeData(t, w)["exists"])

	// Owner and hospitals may read the profile, other patients may not.
	w = s.do(http.MethodGet, profilePath, nil, patientToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodGet, profilePath, nil, hospitalToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodGet, profilePath, nil, s.token(other.ID, "patient"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/hospital/3/doctors", map[string]string{"name": "Dr. Sen", "specialization": "ENT"}, hospitalToken)
	require.Equal(t, http.StatusCreated, w.Code)
	doctorID := uint(decodeJSON(t, w)["id"].(float64))

	w = s.do(http.MethodPost, "/medical-profile/favorites", map[string]any{"doctorId": doctorID}, patientToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, envelopeData(t, w)["favoriteDoctors"], 1)

	w = s.do(http.MethodPost, "/medical-profile/favorites", map[string]any{"doctorId": 9999}, patientToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodDelete, fmt.Sprintf("/medical-profile/favorites/%d", doctorID), nil, patientToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, envelopeData(t, w)["favoriteDoctors"], 0)
}

func TestMedicalProfileHandler_BadCheckupDate(t *testing.T) {
	s := newTestServer(t, "")
	patient := testutil.SeedPatient(t, s.db, "anu@example.com")

	w := s.do(http.MethodPost, "/medical-profile", map[string]any{"bloodType": "A+", "lastCheckup": "14/03/2026"},
		s.token(patient.ID, "patient"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
