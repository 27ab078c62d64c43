package httpapi

import (
	"net/http"
	"strconv"

	"postboard/internal/adapters/httpapi/middleware"
	userPort "postboard/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	uc     UserUseCase
	logger *zap.Logger
}

func NewUserController(uc UserUseCase, logger *zap.Logger) *UserController {
	return &UserController{uc: uc, logger: logger}
}

func (ctl *UserController) LoginUser(c *gin.Context) {
	var req struct {
		UserID   uint64 `json:"user_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) RegisterUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Age      int    `json:"age"`
		Hobby    string `json:"hobby"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	id, err := ctl.uc.Save(c.Request.Context(), userPort.SaveUserRequest{
		Name:     req.Name,
		Age:      req.Age,
		Hobby:    req.Hobby,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ctl *UserController) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	u, err := ctl.uc.Find(c.Request.Context(), id)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteMe حذف کاربر فعلی همراه با پست‌هایش
func (ctl *UserController) DeleteMe(c *gin.Context) {
	if err := ctl.uc.Delete(c.Request.Context(), middleware.UserID(c)); err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
