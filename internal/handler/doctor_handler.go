package handler

import (
	"net/http"

	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type CreateDoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	Shift          string `json:"shift"`
}

type UpdateDoctorRequest struct {
	ID             uint    `json:"id" binding:"required"`
	Name           *string `json:"name"`
	Specialization *string `json:"specialization"`
	Shift          *string `json:"shift"`
}

// ListDoctors returns every doctor of the hospital
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	hospitalID, ok := hospitalIDParam(c)
	if !ok {
		return
	}

	doctors, err := h.doctorService.ListDoctors(c.Request.Context(), hospitalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor adds a doctor to the hospital
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	hospitalID, ok := hospitalIDParam(c)
	if !ok {
		return
	}

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and specialization are required")
		return
	}

	doctor, err := h.doctorService.CreateDoctor(c.Request.Context(), a, hospitalID, service.DoctorInput{
		Name:           req.Name,
		Specialization: req.Specialization,
		Shift:          req.Shift,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

// UpdateDoctor applies the non-empty fields of the body to the doctor named by id
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	hospitalID, ok := hospitalIDParam(c)
	if !ok {
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Doctor ID is required")
		return
	}

	doctor, err := h.doctorService.UpdateDoctor(c.Request.Context(), a, hospitalID, service.DoctorPatch{
		ID:             req.ID,
		Name:           req.Name,
		Specialization: req.Specialization,
		Shift:          req.Shift,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// DeleteDoctor removes the doctor named by ?id=
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	hospitalID, ok := hospitalIDParam(c)
	if !ok {
		return
	}

	doctorID, err := parsePositiveID(c.Query("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Doctor ID is required")
		return
	}

	if err := h.doctorService.DeleteDoctor(c.Request.Context(), a, hospitalID, doctorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
