package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"mindlog-backend/service"

	"github.com/gin-gonic/gin"
)

// PromptHandler handles HTTP requests for the prompt catalog
type PromptHandler struct {
	promptService *service.PromptService
}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler(promptService *service.PromptService) *PromptHandler {
	return &PromptHandler{promptService: promptService}
}

// ListPrompts handles GET /prompts/
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	result, err := h.promptService.ListPrompts(c.Request.Context())
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
		"data":    result.Prompts,
	})
}

// GetPrompt handles GET /prompts/:id
func (h *PromptHandler) GetPrompt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid prompt ID format",
			},
		})
		return
	}

	result, err := h.promptService.GetPrompt(c.Request.Context(), service.GetPromptRequest{ID: id})
	if err != nil {
		if errors.Is(err, service.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Prompt not found",
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
		"data":    result.Prompt,
	})
}
