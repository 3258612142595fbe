package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mindlog-backend/middleware"
	"mindlog-backend/models"
	"mindlog-backend/service"

	"github.com/gin-gonic/gin"
)

// JournalHandler handles HTTP requests for journal entries
type JournalHandler struct {
	journalService  *service.JournalService
	feedbackService *service.FeedbackService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService *service.JournalService, feedbackService *service.FeedbackService) *JournalHandler {
	return &JournalHandler{
		journalService:  journalService,
		feedbackService: feedbackService,
	}
}

// CreateEntryRequest represents the request body for creating an entry
type CreateEntryRequest struct {
	PromptID  *int64 `json:"prompt_id"`
	EntryDate string `json:"entry_date" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// CreateEntry handles POST /journal/
func (h *JournalHandler) CreateEntry(c *gin.Context) {
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

	var req CreateEntryRequest
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

	entryDate, err := models.ParseDateOnly(req.EntryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": "entry_date must be YYYY-MM-DD",
			},
		})
		return
	}

	serviceReq := service.CreateEntryRequest{
		UserID:    user.ID,
		PromptID:  req.PromptID,
		EntryDate: entryDate,
		Content:   req.Content,
	}

	result, err := h.journalService.CreateEntry(c.Request.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, service.ErrPromptRefInvalid) || errors.Is(err, service.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_FAILED",
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
		"data":    result.Entry,
	})
}

// ListEntries handles GET /journal/
func (h *JournalHandler) ListEntries(c *gin.Context) {
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

	result, err := h.journalService.ListEntries(c.Request.Context(), service.ListEntriesRequest{UserID: user.ID})
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
		"data":    result.Entries,
	})
}

// GetEntry handles GET /journal/:id
func (h *JournalHandler) GetEntry(c *gin.Context) {
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

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid entry ID format",
			},
		})
		return
	}

	result, err := h.journalService.GetEntry(c.Request.Context(), service.GetEntryRequest{
		ID:     id,
		UserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Journal entry not found",
				},
			})
			return
		}
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
		"data":    result.Entry,
	})
}

// UpdateEntryRequest represents the request body for updating an entry
type UpdateEntryRequest struct {
	PromptID  *int64 `json:"prompt_id"`
	EntryDate string `json:"entry_date" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// UpdateEntry handles PUT /journal/:id
func (h *JournalHandler) UpdateEntry(c *gin.Context) {
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

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid entry ID format",
			},
		})
		return
	}

	var req UpdateEntryRequest
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

	entryDate, err := models.ParseDateOnly(req.EntryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": "entry_date must be YYYY-MM-DD",
			},
		})
		return
	}

	serviceReq := service.UpdateEntryRequest{
		ID:        id,
		UserID:    user.ID,
		PromptID:  req.PromptID,
		EntryDate: entryDate,
		Content:   req.Content,
	}

	result, err := h.journalService.UpdateEntry(c.Request.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Journal entry not found",
				},
			})
			return
		}
		if errors.Is(err, service.ErrPromptRefInvalid) || errors.Is(err, service.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_FAILED",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPDATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Entry,
	})
}

// DeleteEntry handles DELETE /journal/:id
func (h *JournalHandler) DeleteEntry(c *gin.Context) {
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

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid entry ID format",
			},
		})
		return
	}

	err = h.journalService.DeleteEntry(c.Request.Context(), service.DeleteEntryRequest{
		ID:     id,
		UserID: user.ID,
	})
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Journal entry not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message": "Journal entry deleted",
		},
	})
}

// FeedbackRequest represents the request body for AI feedback
type FeedbackRequest struct {
	Content string `json:"content" binding:"required"`
}

// Feedback handles POST /journal/feedback
func (h *JournalHandler) Feedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.feedbackService.GenerateFeedback(c.Request.Context(), service.GenerateFeedbackRequest{
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_FAILED",
					"message": err.Error(),
				},
			})
			return
		}
		if errors.Is(err, service.ErrUpstreamUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UPSTREAM_UNAVAILABLE",
					"message": "Feedback generation is temporarily unavailable",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "GENERATION_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"feedback": result.Feedback,
		},
	})
}
