package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutriplan/backend/internal/domain"
	"github.com/nutriplan/backend/internal/units"
	"github.com/nutriplan/backend/internal/usecase"
	"go.uber.org/zap"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	profiles *usecase.ProfileService
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler. profiles may be nil, in which case
// the calculator still works and the profile endpoints answer 501.
func NewHandler(profiles *usecase.ProfileService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if profiles == nil {
		profiles = usecase.NewProfileService(nil, nil, logger, usecase.ProfileServiceConfig{})
	}
	return &Handler{profiles: profiles, logger: logger}
}

// profileResponse is a stored profile plus its rendering in the user's units
type profileResponse struct {
	Profile *domain.UserProfile `json:"profile"`
	Display units.Display       `json:"display"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutriplan-backend",
		"version": Version,
	})
}

// Calculate computes energy and macro targets without storing anything.
// POST /api/v1/energy/calculate
func (h *Handler) Calculate(c *gin.Context) {
	var req domain.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := h.profiles.Calculate(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ConvertUnits converts a single value between two units.
// GET /api/v1/units/convert?value=176&from=lb&to=kg
func (h *Handler) ConvertUnits(c *gin.Context) {
	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil {
		apiError(c, http.StatusBadRequest, "value must be a number")
		return
	}
	from, err := units.ParseUnit(c.Query("from"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	to, err := units.ParseUnit(c.Query("to"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := units.Convert(value, from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"value":  value,
		"from":   from,
		"to":     to,
		"result": result,
	})
}

// GetProfile returns the authenticated user's stored profile.
// GET /api/v1/profile
func (h *Handler) GetProfile(c *gin.Context) {
	if !h.profilesEnabled() {
		apiError(c, http.StatusNotImplemented, "Profile store not configured")
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{Profile: profile, Display: units.DisplayProfile(profile)})
}

// PutProfile recomputes and stores the authenticated user's profile.
// PUT /api/v1/profile
func (h *Handler) PutProfile(c *gin.Context) {
	if !h.profilesEnabled() {
		apiError(c, http.StatusNotImplemented, "Profile store not configured")
		return
	}

	var req domain.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := h.profiles.SaveProfile(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{Profile: profile, Display: units.DisplayProfile(profile)})
}

func (h *Handler) profilesEnabled() bool {
	return h.profiles.ProfilesEnabled()
}

// respondError maps domain errors to status codes. Input rejections are
// final and must not be retried by clients.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case domain.IsRejection(err),
		errors.Is(err, units.ErrUnsupportedUnit),
		errors.Is(err, units.ErrIncompatibleUnits):
		apiError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		apiError(c, http.StatusNotFound, "Profile not found")
	case errors.Is(err, domain.ErrProfileStoreFailure):
		h.logger.Error("profile store failure", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		apiError(c, http.StatusServiceUnavailable, "Profile store temporarily unavailable")
	default:
		h.logger.Error("unhandled error", zap.String("request_id", c.GetString(requestIDKey)), zap.Error(err))
		apiError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// apiError returns a consistent JSON error response: {"error": "message"}
func apiError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// currentUserID returns the user set by AuthMiddleware
func currentUserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
