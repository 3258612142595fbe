package handlers

import (
	"errors"
	"net/http"

	"mindlog-backend/middleware"
	"mindlog-backend/models"
	"mindlog-backend/service"

	"github.com/gin-gonic/gin"
)

// MoodHandler handles HTTP requests for mood logging
type MoodHandler struct {
	moodService *service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService *service.MoodService) *MoodHandler {
	return &MoodHandler{moodService: moodService}
}

// CreateMoodRequest represents the request body for logging a mood
type CreateMoodRequest struct {
	Mood     string `json:"mood" binding:"required"`
	MoodDate string `json:"mood_date" binding:"required"`
}

// CreateMood handles POST /moods/
func (h *MoodHandler) CreateMood(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Authentication required",
			},
		})
		return
	}

	var req CreateMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	moodDate, err := models.ParseDateOnly(req.MoodDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": "mood_date must be YYYY-MM-DD",
			},
		})
		return
	}

	serviceReq := service.LogMoodRequest{
		UserID:   user.ID,
		Mood:     models.MoodLabel(req.Mood),
		MoodDate: moodDate,
	}

	result, err := h.moodService.LogMood(c.Request.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMoodLabel) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_FAILED",
					"message": err.Error(),
				},
			})
			return
		}
		if errors.Is(err, service.ErrMoodAlreadyLogged) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MOOD_ALREADY_LOGGED",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"mood":   result.Mood,
			"prompt": result.PromptText,
		},
	})
}

// ListMoods handles GET /moods/
func (h *MoodHandler) ListMoods(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Authentication required",
			},
		})
		return
	}

	result, err := h.moodService.ListMoods(c.Request.Context(), service.ListMoodsRequest{UserID: user.ID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Moods,
	})
}
