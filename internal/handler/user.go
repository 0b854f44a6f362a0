package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmorate/internal/utils"
)

// ListUsers 全部用户
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Services.User.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newUserResponses(users))
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.Services.User.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newUserResponse(user))
}

// CreateUser 注册用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.Services.User.Create(c.Request.Context(), req.User())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Created(c, newUserResponse(user))
}

// UpdateUser 更新用户
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UserRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.ID <= 0 {
		utils.BadRequest(c, "缺少用户 ID")
		return
	}
	user, err := h.Services.User.Update(c.Request.Context(), req.User())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newUserResponse(user))
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Services.User.Delete(c.Request.Context(), id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, nil)
}

// AddFriend 添加好友
func (h *Handler) AddFriend(c *gin.Context) {
	id, friendID, ok := friendPair(c)
	if !ok {
		return
	}
	if err := h.Services.User.AddFriend(c.Request.Context(), id, friendID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, nil)
}

// RemoveFriend 删除好友
func (h *Handler) RemoveFriend(c *gin.Context) {
	id, friendID, ok := friendPair(c)
	if !ok {
		return
	}
	if err := h.Services.User.RemoveFriend(c.Request.Context(), id, friendID); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, nil)
}

// Friends 好友列表
func (h *Handler) Friends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	friends, err := h.Services.User.Friends(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newUserResponses(friends))
}

// CommonFriends 共同好友
func (h *Handler) CommonFriends(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}
	friends, err := h.Services.User.CommonFriends(c.Request.Context(), id, otherID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newUserResponses(friends))
}

// Recommendations 推荐电影
func (h *Handler) Recommendations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	films, err := h.Services.User.Recommendations(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, newFilmResponses(films))
}

// Feed 用户动态
func (h *Handler) Feed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	events, err := h.Services.User.Feed(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.Success(c, events)
}

func friendPair(c *gin.Context) (int64, int64, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return 0, 0, false
	}
	friendID, ok := pathID(c, "friendId")
	if !ok {
		return 0, 0, false
	}
	return id, friendID, true
}
