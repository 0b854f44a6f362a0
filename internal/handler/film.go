package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/filmorate/internal/utils"
)

// ListFilms 全部电影
func (h *Handler) ListFilms(c *gin.Context) {
	films, err := h.Services.Film.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponses(films))
}

// GetFilm 电影详情
func (h *Handler) GetFilm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	film, err := h.Services.Film.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponse(film))
}

// CreateFilm 新建电影
func (h *Handler) CreateFilm(c *gin.Context) {
	var req FilmRequest
	if !bindJSON(c, &req) {
		return
	}
	film, err := h.Services.Film.Create(c.Request.Context(), req.Film())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Created(c, newFilmResponse(film))
}

// UpdateFilm 更新电影
func (h *Handler) UpdateFilm(c *gin.Context) {
	var req FilmRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ID <= 0 {
		utils.BadRequest(c, "缺少电影 ID")
		return
	}
	film, err := h.Services.Film.Update(c.Request.Context(), req.Film())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponse(film))
}

// DeleteFilm 删除电影
func (h *Handler) DeleteFilm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Services.Film.Delete(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, nil)
}

// AddLike 点赞
func (h *Handler) AddLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	film, err := h.Services.Film.AddLike(c.Request.Context(), filmID, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponse(film))
}

// RemoveLike 取消点赞
func (h *Handler) RemoveLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	film, err := h.Services.Film.RemoveLike(c.Request.Context(), filmID, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponse(film))
}

// PopularFilms 热门电影，支持 count、genreId、year 参数
func (h *Handler) PopularFilms(c *gin.Context) {
	count, ok := queryCount(c, h.Config.TopFilmsDefaultCount)
	if !ok {
		return
	}
	genreID, ok := queryID(c, "genreId")
	if !ok {
		return
	}
	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y <= 0 {
			utils.BadRequest(c, "无效的 year: "+strconv.Quote(raw))
			return
		}
		year = &y
	}

	films, err := h.Services.Film.Popular(c.Request.Context(), count, genreID, year)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponses(films))
}

// DirectorFilms 导演作品，sortBy=likes|year
func (h *Handler) DirectorFilms(c *gin.Context) {
	directorID, ok := pathID(c, "directorId")
	if !ok {
		return
	}
	films, err := h.Services.Film.DirectorFilms(c.Request.Context(), directorID, c.Query("sortBy"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponses(films))
}

// CommonFilms 两个用户共同点赞的电影
func (h *Handler) CommonFilms(c *gin.Context) {
	userID, ok := requiredQueryID(c, "userId")
	if !ok {
		return
	}
	friendID, ok := requiredQueryID(c, "friendId")
	if !ok {
		return
	}
	films, err := h.Services.Film.CommonFilms(c.Request.Context(), userID, friendID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponses(films))
}

// SearchFilms 按标题/导演搜索
func (h *Handler) SearchFilms(c *gin.Context) {
	query, ok := c.GetQuery("query")
	if !ok {
		utils.BadRequest(c, "缺少参数 query")
		return
	}
	films, err := h.Services.Film.Search(c.Request.Context(), query, c.Query("by"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponses(films))
}
