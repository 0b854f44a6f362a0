package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmorate/internal/config"
	"github.com/user/filmorate/internal/service"
	"github.com/user/filmorate/internal/utils"
)

// Handler HTTP 处理器
type Handler struct {
	Services *service.Services
	Config   *config.Config
}

// NewHandler 创建处理器
func NewHandler(services *service.Services, cfg *config.Config) *Handler {
	return &Handler{
		Services: services,
		Config:   cfg,
	}
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// pathID 解析路径中的正整数 ID，失败时直接返回 400
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequest(c, fmt.Sprintf("无效的 %s: %q", name, c.Param(name)))
		return 0, false
	}
	return id, true
}

// queryID 解析查询参数中的正整数 ID，参数缺失时返回 nil
func queryID(c *gin.Context, name string) (*int64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequest(c, fmt.Sprintf("无效的 %s: %q", name, raw))
		return nil, false
	}
	return &id, true
}

// requiredQueryID 必填的正整数查询参数
func requiredQueryID(c *gin.Context, name string) (int64, bool) {
	id, ok := queryID(c, name)
	if !ok {
		return 0, false
	}
	if id == nil {
		utils.BadRequest(c, fmt.Sprintf("缺少参数 %s", name))
		return 0, false
	}
	return *id, true
}

// queryCount 解析正整数 count，缺失时使用默认值
func queryCount(c *gin.Context, defaultCount int) (int, bool) {
	raw, ok := c.GetQuery("count")
	if !ok || raw == "" {
		return defaultCount, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		utils.BadRequest(c, fmt.Sprintf("无效的 count: %q", raw))
		return 0, false
	}
	return n, true
}

// bindJSON 绑定并校验请求体，失败时返回 400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequest(c, "无效的请求数据: "+err.Error())
		return false
	}
	return true
}
