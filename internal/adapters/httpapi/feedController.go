package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FeedController struct {
	fc     FeedUseCase
	logger *zap.Logger
}

func NewFeedController(fc FeedUseCase, logger *zap.Logger) *FeedController {
	return &FeedController{fc: fc, logger: logger}
}

func (ctl *FeedController) GetRecent(c *gin.Context) {
	// گرفتن start و limit از Query params و مقداردهی پیش‌فرض
	start, err := strconv.ParseInt(c.DefaultQuery("start", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	posts, err := ctl.fc.Recent(c.Request.Context(), start, limit)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": posts})
}
