package handler

import (
	"net/http"

	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MedicalProfileHandler struct {
	profileService *service.MedicalProfileService
}

func NewMedicalProfileHandler(profileService *service.MedicalProfileService) *MedicalProfileHandler {
	return &MedicalProfileHandler{
		profileService: profileService,
	}
}

type MedicalProfileRequest struct {
	BloodType    string   `json:"bloodType" binding:"required"`
	Allergies    []string `json:"allergies"`
	Medications  []string `json:"medications"`
	Conditions   []string `json:"conditions"`
	Vaccinations []string `json:"vaccinations"`
	LastCheckup  string   `json:"lastCheckup"`
}

type FavoriteDoctorRequest struct {
	DoctorID uint `json:"doctorId" binding:"required"`
}

// SubmitProfile stores the session patient's medical profile
func (h *MedicalProfileHandler) SubmitProfile(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req MedicalProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.profileService.SubmitProfile(c.Request.Context(), a, service.MedicalProfileInput{
		BloodType:    req.BloodType,
		Allergies:    req.Allergies,
		Medications:  req.Medications,
		Conditions:   req.Conditions,
		Vaccinations: req.Vaccinations,
		LastCheckup:  req.LastCheckup,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, profile)
}

// ProfileExists reports whether the session patient has a profile
func (h *MedicalProfileHandler) ProfileExists(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	exists, err := h.profileService.ProfileExists(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"exists": exists})
}

// GetProfile returns the profile of :userId
func (h *MedicalProfileHandler) GetProfile(c *gin.Context) {
	patientID, ok := positiveIDParam(c, "userId", "Invalid user ID")
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// AddFavorite marks a doctor as a favorite of the session patient
func (h *MedicalProfileHandler) AddFavorite(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req FavoriteDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "doctorId is required")
		return
	}

	profile, err := h.profileService.AddFavoriteDoctor(c.Request.Context(), a, req.DoctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// RemoveFavorite drops :doctorId from the session patient's favorites
func (h *MedicalProfileHandler) RemoveFavorite(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	doctorID, ok := positiveIDParam(c, "doctorId", "Invalid doctor ID")
	if !ok {
		return
	}

	profile, err := h.profileService.RemoveFavoriteDoctor(c.Request.Context(), a, doctorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}
