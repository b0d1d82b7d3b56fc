package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-coordination-backend/internal/resource"
	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Resource bodies are a handful of counters
const maxResourceBody = 1 << 16

type ResourceHandler struct {
	resourceService *service.ResourceService
}

func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
	}
}

// Read returns the canonical record of kind for :hospitalId
func (h *ResourceHandler) Read(kind resource.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		hospitalID, ok := hospitalIDParam(c)
		if !ok {
			return
		}

		row, err := h.resourceService.Read(c.Request.Context(), hospitalID, kind)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, row)
	}
}

// Upsert replaces the record of kind for :hospitalId with the normalized body
func (h *ResourceHandler) Upsert(kind resource.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := actor(c)
		if !ok {
			return
		}

		hospitalID, ok := hospitalIDParam(c)
		if !ok {
			return
		}

		body, ok := decodeObject(c)
		if !ok {
			return
		}

		row, err := h.resourceService.Upsert(c.Request.Context(), a, hospitalID, kind, body)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, row)
	}
}

// decodeObject reads exactly one JSON object keeping numbers as json.Number
// so that large and fractional values reach validation unchanged
func decodeObject(c *gin.Context) (map[string]any, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxResourceBody))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		utils.ErrorResponse(c, http.StatusBadRequest, "request body must contain a single JSON object")
		return nil, false
	}

	body, ok := raw.(map[string]any)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return body, true
}
