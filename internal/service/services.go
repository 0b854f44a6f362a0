package service

import "github.com/user/filmorate/internal/repository"

// Services 业务服务集合
type Services struct {
	Film    *FilmService
	User    *UserService
	Review  *ReviewService
	Catalog *CatalogService
	Event   *EventService
}

// NewServices 基于仓库集合组装全部服务
func NewServices(repos *repository.Repositories) *Services {
	events := NewEventService(repos.Event, repos.User)
	recommender := NewRecommender(repos.User, repos.Film)
	return &Services{
		Film:    NewFilmService(repos.Film, repos.User, repos.Mpa, repos.Genre, repos.Director, events),
		User:    NewUserService(repos.User, recommender, events),
		Review:  NewReviewService(repos.Review, repos.Film, repos.User, events),
		Catalog: NewCatalogService(repos.Genre, repos.Mpa, repos.Director),
		Event:   events,
	}
}
