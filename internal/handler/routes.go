package handler

import (
	"net/http"

	"hospital-coordination-backend/internal/database"
	"hospital-coordination-backend/internal/metrics"
	"hospital-coordination-backend/internal/middleware"
	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/internal/resource"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Routes holds everything the HTTP surface is built from
type Routes struct {
	DB      *gorm.DB
	Tokens  *utils.TokenManager
	Limiter *middleware.IPRateLimiter

	Auth           *AuthHandler
	Hospital       *HospitalHandler
	Resource       *ResourceHandler
	Doctor         *DoctorHandler
	MedicalProfile *MedicalProfileHandler
	Community      *CommunityHandler
	Payment        *PaymentHandler
	Chatbot        *ChatbotHandler
}

// Register mounts every route on r
func (rt Routes) Register(r *gin.Engine) {
	authenticated := middleware.AuthMiddleware(rt.Tokens)
	limited := rt.Limiter.Middleware()

	r.GET("/health", rt.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Auth routes (public, rate limited)
	auth := r.Group("/auth")
	{
		auth.POST("/hospital/register", limited, rt.Auth.RegisterHospital)
		auth.POST("/hospital/login", limited, rt.Auth.LoginHospital)
		auth.POST("/patient/register", limited, rt.Auth.RegisterPatient)
		auth.POST("/patient/login", limited, rt.Auth.LoginPatient)
		auth.POST("/refresh", limited, rt.Auth.Refresh)
		auth.POST("/logout", rt.Auth.Logout)
		auth.GET("/me", authenticated, rt.Auth.Me)
	}

	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("", rt.Hospital.GetAllHospitals)
		hospitals.GET("/:hospitalId", rt.Hospital.GetHospital)
	}

	// Resource and doctor routes (authenticated)
	hospital := r.Group("/hospital/:hospitalId")
	hospital.Use(authenticated)
	{
		for _, kind := range resource.Kinds {
			hospital.GET("/"+string(kind), rt.Resource.Read(kind))
			hospital.PUT("/"+string(kind), rt.Resource.Upsert(kind))
		}

		hospital.GET("/doctors", rt.Doctor.ListDoctors)
		hospital.POST("/doctors", rt.Doctor.CreateDoctor)
		hospital.PUT("/doctors", rt.Doctor.UpdateDoctor)
		hospital.DELETE("/doctors", rt.Doctor.DeleteDoctor)
	}

	profile := r.Group("/medical-profile")
	profile.Use(authenticated)
	{
		patientOnly := middleware.RequireRole(models.RolePatient)
		profile.POST("", patientOnly, rt.MedicalProfile.SubmitProfile)
		profile.GET("/exists", patientOnly, rt.MedicalProfile.ProfileExists)
		profile.POST("/favorites", patientOnly, rt.MedicalProfile.AddFavorite)
		profile.DELETE("/favorites/:doctorId", patientOnly, rt.MedicalProfile.RemoveFavorite)
		profile.GET("/:userId", middleware.CheckPatientRecordAccess(), rt.MedicalProfile.GetProfile)
	}

	// Community board (public, writes rate limited)
	community := r.Group("/community")
	{
		community.GET("", rt.Community.ListRequests)
		community.POST("/submit", limited, rt.Community.SubmitRequest)
		community.POST("/reply", limited, rt.Community.Reply)
	}

	r.POST("/payments/checkout", authenticated, rt.Payment.Checkout)
	r.POST("/webhooks/stripe", rt.Payment.StripeWebhook)

	r.POST("/chatbot", authenticated, limited, rt.Chatbot.Ask)
}

func (rt Routes) health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), rt.DB); err != nil {
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status":  "healthy",
		"service": "hospital-coordination-backend",
	})
}
