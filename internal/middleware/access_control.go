package middleware

import (
	"net/http"
	"strconv"

	"hospital-coordination-backend/internal/models"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CheckPatientRecordAccess guards routes addressing a patient's own records
// by a :userId path parameter. Hospital sessions may read any patient's
// record; a patient session only its own.
func CheckPatientRecordAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "User not authenticated")
			return
		}

		patientID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
		if err != nil || patientID == 0 {
			utils.AbortWithError(c, http.StatusBadRequest, "Invalid user ID")
			return
		}

		switch actor.Role {
		case models.RoleHospital:
			c.Next()
		case models.RolePatient:
			if actor.ID != uint(patientID) {
				utils.AbortWithError(c, http.StatusForbidden, "Access denied: you can only view your own medical profile")
				return
			}
			c.Next()
		default:
			utils.AbortWithError(c, http.StatusForbidden, "Access denied")
		}
	}
}
