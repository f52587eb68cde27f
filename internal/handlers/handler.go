package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"eldercare-backend/internal/config"
	"eldercare-backend/internal/middleware"
	"eldercare-backend/internal/models"
	"eldercare-backend/pkg/utils"
)

// Handler carries the dependencies every endpoint needs. One instance is
// built in main and shared across requests.
type Handler struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Log    *logrus.Logger
	Pusher *utils.Pusher
}

func New(db *gorm.DB, cfg *config.Config, log *logrus.Logger, pusher *utils.Pusher) *Handler {
	return &Handler{DB: db, Cfg: cfg, Log: log, Pusher: pusher}
}

// currentUserID reads the caller identity the auth middleware attached.
func currentUserID(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.CtxUserID); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}

// logUserActivity appends an entry to the caller's audit trail. Failures
// are logged and swallowed; the trail is never worth failing a request.
func (h *Handler) logUserActivity(userID uint64, action string) {
	if userID == 0 {
		return
	}
	entry := models.UserActivity{UserID: userID, Action: action}
	if err := h.DB.Create(&entry).Error; err != nil {
		h.Log.WithFields(logrus.Fields{"user_id": userID, "action": action, "error": err}).
			Warn("Failed to record user activity")
	}
}
