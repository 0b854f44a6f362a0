package router

import (
	"github.com/gin-gonic/gin"
	"github.com/user/filmorate/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)

	// ==================== 电影 ====================
	films := r.Group("/films")
	{
		films.GET("", h.ListFilms)
		films.POST("", h.CreateFilm)
		films.PUT("", h.UpdateFilm)
		films.GET("/popular", h.PopularFilms)
		films.GET("/common", h.CommonFilms)
		films.GET("/search", h.SearchFilms)
		films.GET("/director/:directorId", h.DirectorFilms)
		films.GET("/:id", h.GetFilm)
		films.DELETE("/:id", h.DeleteFilm)
		films.PUT("/:id/like/:userId", h.AddLike)
		films.DELETE("/:id/like/:userId", h.RemoveLike)
	}

	// ==================== 用户 ====================
	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.PUT("", h.UpdateUser)
		users.GET("/:id", h.GetUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/friends", h.Friends)
		users.PUT("/:id/friends/:friendId", h.AddFriend)
		users.DELETE("/:id/friends/:friendId", h.RemoveFriend)
		users.GET("/:id/friends/common/:otherId", h.CommonFriends)
		users.GET("/:id/recommendations", h.Recommendations)
		users.GET("/:id/feed", h.Feed)
	}

	// ==================== 字典 ====================
	r.GET("/genres", h.ListGenres)
	r.GET("/genres/:id", h.GetGenre)
	r.GET("/mpa", h.ListMpa)
	r.GET("/mpa/:id", h.GetMpa)

	directors := r.Group("/directors")
	{
		directors.GET("", h.ListDirectors)
		directors.POST("", h.CreateDirector)
		directors.PUT("", h.UpdateDirector)
		directors.GET("/:id", h.GetDirector)
		directors.DELETE("/:id", h.DeleteDirector)
	}

	// ==================== 影评 ====================
	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.ListReviews)
		reviews.POST("", h.CreateReview)
		reviews.PUT("", h.UpdateReview)
		reviews.GET("/:id", h.GetReview)
		reviews.DELETE("/:id", h.DeleteReview)
		reviews.PUT("/:id/like/:userId", h.LikeReview)
		reviews.PUT("/:id/dislike/:userId", h.DislikeReview)
		reviews.DELETE("/:id/like/:userId", h.RemoveReviewLike)
		reviews.DELETE("/:id/dislike/:userId", h.RemoveReviewDislike)
	}
}
