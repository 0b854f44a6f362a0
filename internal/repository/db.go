package repository

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/user/filmorate/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接（lib/pq 驱动 + GORM 封装）
func InitDB(databaseURL string, maxOpen, maxIdle int) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return OpenGorm(sqlDB)
}

// OpenGorm 用已有的 *sql.DB 创建 GORM 实例
func OpenGorm(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.New(gormLogWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("初始化 GORM 失败: %w", err)
	}
	return db, nil
}

// gormLogWriter 将 GORM 日志转发到 zerolog
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...interface{}) {
	log.Warn().Str("component", "gorm").Msgf(format, args...)
}

// Repositories 仓库集合
type Repositories struct {
	DB       *gorm.DB
	Film     *FilmRepository
	User     *UserRepository
	Genre    *Catalog[model.Genre]
	Mpa      *Catalog[model.MpaRating]
	Director *Catalog[model.Director]
	Review   *ReviewRepository
	Event    *EventRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:       db,
		Film:     NewFilmRepository(db),
		User:     NewUserRepository(db),
		Genre:    NewCatalog[model.Genre](db, "genre"),
		Mpa:      NewCatalog[model.MpaRating](db, "mpa rating"),
		Director: NewCatalog[model.Director](db, "director"),
		Review:   NewReviewRepository(db),
		Event:    NewEventRepository(db),
	}
}
