package handler

import (
	"net/http"
	"time"

	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	authService   *service.AuthService
	refreshMaxAge time.Duration
	secureCookie  bool
}

// NewAuthHandler creates the auth handler. refreshMaxAge is the lifetime of
// the refresh_token cookie; secureCookie should be set behind HTTPS.
func NewAuthHandler(authService *service.AuthService, refreshMaxAge time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		refreshMaxAge: refreshMaxAge,
		secureCookie:  secureCookie,
	}
}

type HospitalRegisterRequest struct {
	Name            string  `json:"name" binding:"required,min=3"`
	Address         string  `json:"address" binding:"required,min=10"`
	ContactPerson   string  `json:"contactPerson" binding:"required,min=3"`
	Phone           string  `json:"phone" binding:"required,min=10"`
	Email           string  `json:"email" binding:"required,email"`
	LicenseNumber   string  `json:"licenseNumber" binding:"required,min=5"`
	Password        string  `json:"password" binding:"required,min=6"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required,eqfield=Password"`
	Latitude        float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude       float64 `json:"longitude" binding:"gte=-180,lte=180"`
}

type HospitalLoginRequest struct {
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Password      string `json:"password" binding:"required"`
}

type PatientRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type PatientLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterHospital handles hospital sign-up
func (h *AuthHandler) RegisterHospital(c *gin.Context) {
	var req HospitalRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.authService.RegisterHospital(c.Request.Context(), service.HospitalRegistration{
		Name:          req.Name,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		LicenseNumber: req.LicenseNumber,
		Password:      req.Password,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.startSession(c, http.StatusCreated, session)
}

// LoginHospital authenticates a hospital by license number
func (h *AuthHandler) LoginHospital(c *gin.Context) {
	var req HospitalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.login(c, service.Credentials{
		Kind:       service.HospitalCredential,
		Identifier: req.LicenseNumber,
		Email:      req.Email,
		Password:   req.Password,
	})
}

// RegisterPatient handles patient sign-up
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req PatientRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.authService.RegisterPatient(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.startSession(c, http.StatusCreated, session)
}

// LoginPatient authenticates a patient by email
func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req PatientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.login(c, service.Credentials{
		Kind:       service.PatientCredential,
		Identifier: req.Email,
		Password:   req.Password,
	})
}

func (h *AuthHandler) login(c *gin.Context, creds service.Credentials) {
	session, err := h.authService.Login(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}

	h.startSession(c, http.StatusOK, session)
}

// startSession sets the refresh cookie and returns the access token with the
// principal
func (h *AuthHandler) startSession(c *gin.Context, status int, session *service.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, session.RefreshToken, int(h.refreshMaxAge.Seconds()), "/", "", h.secureCookie, true)

	c.JSON(status, gin.H{
		"success": true,
		"data":    session,
	})
}

// Refresh generates a new access token from the refresh cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookie)
	if err != nil || refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(refreshCookie); err == nil && refreshToken != "" {
		if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
			respondError(c, err)
			return
		}
	}

	c.SetCookie(refreshCookie, "", -1, "/", "", h.secureCookie, true)
	utils.MessageResponse(c, "Logged out successfully")
}

// Me returns the session principal
func (h *AuthHandler) Me(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	identity, err := h.authService.Me(c.Request.Context(), a)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, identity)
}
