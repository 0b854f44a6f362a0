package handler

import (
	"github.com/user/filmorate/internal/model"
)

// IDRef 通过 ID 引用分级、类型或导演
type IDRef struct {
	ID int64 `json:"id" binding:"gt=0"`
}

// FilmRequest 创建/更新电影请求
type FilmRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" binding:"required,notblank"`
	Description string  `json:"description" binding:"max=200"`
	ReleaseDate string  `json:"releaseDate" binding:"required,datetime=2006-01-02,releasedate"`
	Duration    int64   `json:"duration" binding:"required,gt=0"`
	Mpa         *IDRef  `json:"mpa" binding:"required"`
	Genres      []IDRef `json:"genres" binding:"omitempty,dive"`
	Directors   []IDRef `json:"directors" binding:"omitempty,dive"`
}

// Film 转换为领域对象
func (r *FilmRequest) Film() *model.Film {
	film := &model.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: parseDate(r.ReleaseDate),
		Duration:    r.Duration,
		Mpa:         model.MpaRating{ID: r.Mpa.ID},
		Genres:      make([]model.Genre, 0, len(r.Genres)),
		Directors:   make([]model.Director, 0, len(r.Directors)),
	}
	for _, g := range r.Genres {
		film.Genres = append(film.Genres, model.Genre{ID: g.ID})
	}
	for _, d := range r.Directors {
		film.Directors = append(film.Directors, model.Director{ID: d.ID})
	}
	return film
}

// FilmResponse 电影响应，日期格式为 yyyy-MM-dd
type FilmResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ReleaseDate string           `json:"releaseDate"`
	Duration    int64            `json:"duration"`
	Mpa         model.MpaRating  `json:"mpa"`
	Genres      []model.Genre    `json:"genres"`
	Directors   []model.Director `json:"directors"`
	Likes       []int64          `json:"likes"`
}

func newFilmResponse(f *model.Film) FilmResponse {
	resp := FilmResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate.Format(DateLayout),
		Duration:    f.Duration,
		Mpa:         f.Mpa,
		Genres:      f.Genres,
		Directors:   f.Directors,
		Likes:       f.Likes,
	}
	if resp.Genres == nil {
		resp.Genres = []model.Genre{}
	}
	if resp.Directors == nil {
		resp.Directors = []model.Director{}
	}
	if resp.Likes == nil {
		resp.Likes = []int64{}
	}
	return resp
}

func newFilmResponses(films []*model.Film) []FilmResponse {
	out := make([]FilmResponse, 0, len(films))
	for _, f := range films {
		out = append(out, newFilmResponse(f))
	}
	return out
}

// UserRequest 创建/更新用户请求
type UserRequest struct {
	ID       int64  `json:"id"`
	Email    string `json:"email" binding:"required,email"`
	Login    string `json:"login" binding:"required,nospaces"`
	Name     string `json:"name"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02,pastdate"`
}

func (r *UserRequest) User() *model.User {
	return &model.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: parseDate(r.Birthday),
	}
}

// UserResponse 用户响应
type UserResponse struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Login    string  `json:"login"`
	Name     string  `json:"name"`
	Birthday string  `json:"birthday"`
	Friends  []int64 `json:"friends"`
}

func newUserResponse(u *model.User) UserResponse {
	friends := u.Friends
	if friends == nil {
		friends = []int64{}
	}
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday.Format(DateLayout),
		Friends:  friends,
	}
}

func newUserResponses(users []*model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

// DirectorRequest 创建/更新导演请求
type DirectorRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required,notblank"`
}

// CreateReviewRequest 发表影评请求
type CreateReviewRequest struct {
	Content    string `json:"content" binding:"required,notblank"`
	IsPositive *bool  `json:"isPositive" binding:"required"`
	UserID     int64  `json:"userId" binding:"required,gt=0"`
	FilmID     int64  `json:"filmId" binding:"required,gt=0"`
}

func (r *CreateReviewRequest) Review() *model.Review {
	return &model.Review{
		Content:    r.Content,
		IsPositive: *r.IsPositive,
		UserID:     r.UserID,
		FilmID:     r.FilmID,
	}
}

// UpdateReviewRequest 修改影评请求，作者和电影不可修改
type UpdateReviewRequest struct {
	ReviewID   int64  `json:"reviewId" binding:"required,gt=0"`
	Content    string `json:"content" binding:"required,notblank"`
	IsPositive *bool  `json:"isPositive" binding:"required"`
}

func (r *UpdateReviewRequest) Review() *model.Review {
	return &model.Review{
		ID:         r.ReviewID,
		Content:    r.Content,
		IsPositive: *r.IsPositive,
	}
}
