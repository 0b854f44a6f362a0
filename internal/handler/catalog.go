package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmorate/internal/model"
	"github.com/user/filmorate/internal/service"
	"github.com/user/filmorate/internal/utils"
)

// ==================== 类型 / 分级（只读）====================

func (h *Handler) ListGenres(c *gin.Context) {
	listAll(c, h.Services.Catalog.Genres)
}

func (h *Handler) GetGenre(c *gin.Context) {
	getOne(c, h.Services.Catalog.Genres)
}

func (h *Handler) ListMpa(c *gin.Context) {
	listAll(c, h.Services.Catalog.Mpa)
}

func (h *Handler) GetMpa(c *gin.Context) {
	getOne(c, h.Services.Catalog.Mpa)
}

// ==================== 导演 ====================

func (h *Handler) ListDirectors(c *gin.Context) {
	listAll(c, h.Services.Catalog.Directors)
}

func (h *Handler) GetDirector(c *gin.Context) {
	getOne(c, h.Services.Catalog.Directors)
}

// CreateDirector 新建导演
func (h *Handler) CreateDirector(c *gin.Context) {
	var req DirectorRequest
	if !bindJSON(c, &req) {
		return
	}
	director, err := h.Services.Catalog.Directors.Create(c.Request.Context(), &model.Director{Name: req.Name})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Created(c, director)
}

// UpdateDirector 修改导演姓名
func (h *Handler) UpdateDirector(c *gin.Context) {
	var req DirectorRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ID <= 0 {
		utils.BadRequest(c, "缺少导演 ID")
		return
	}
	director, err := h.Services.Catalog.Directors.Update(c.Request.Context(), req.ID, &model.Director{ID: req.ID, Name: req.Name})
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, director)
}

// DeleteDirector 删除导演，电影与导演的关联级联删除
func (h *Handler) DeleteDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Services.Catalog.Directors.Delete(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, nil)
}

func listAll[T any](c *gin.Context, catalog *service.Catalog[T]) {
	items, err := catalog.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, items)
}

func getOne[T any](c *gin.Context, catalog *service.Catalog[T]) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := catalog.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, item)
}
