package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/middleware"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		httperr.Unauthorized(c, "unauthorized", "authentication required")
		return
	}

	var user models.User
	if err := h.db.Preload("Medspa").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "not_found", "user not found")
			return
		}
		httperr.Internal(c, "internal_error", "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"medspa": user.Medspa,
	})
}
