package httpapi

import (
	"net/http"
	"strconv"

	"postboard/internal/adapters/httpapi/middleware"
	"postboard/internal/core/page"
	postPort "postboard/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostController struct {
	pc     PostUseCase
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, logger: logger}
}

type postBody struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required,max=1000"`
}

func (b postBody) request() postPort.PostRequest {
	return postPort.PostRequest{Title: b.Title, Content: b.Content}
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	id, err := ctl.pc.Save(c.Request.Context(), middleware.UserID(c), req.request())
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ctl *PostController) GetPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	res, err := ctl.pc.Find(c.Request.Context(), id)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	// گرفتن page و size از Query params و مقداردهی پیش‌فرض
	number, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(page.DefaultSize)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}

	res, err := ctl.pc.FindAll(c.Request.Context(), page.Of(number, size))
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req postBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if err := ctl.pc.Update(c.Request.Context(), id, middleware.UserID(c), req.request()); err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ctl.pc.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
