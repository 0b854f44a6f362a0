package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// schemaStatements 建表语句（可重复执行）
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS mpa_ratings (
		id   BIGINT PRIMARY KEY,
		name VARCHAR(16) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS genres (
		id   BIGINT PRIMARY KEY,
		name VARCHAR(64) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS directors (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS films (
		id            BIGSERIAL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		description   VARCHAR(200) NOT NULL DEFAULT '',
		release_date  DATE NOT NULL,
		duration      BIGINT NOT NULL CHECK (duration > 0),
		mpa_rating_id BIGINT NOT NULL REFERENCES mpa_ratings (id)
	)`,
	`CREATE TABLE IF NOT EXISTS film_genres (
		film_id  BIGINT NOT NULL REFERENCES films (id) ON DELETE CASCADE,
		genre_id BIGINT NOT NULL REFERENCES genres (id) ON DELETE CASCADE,
		PRIMARY KEY (film_id, genre_id)
	)`,
	`CREATE TABLE IF NOT EXISTS film_directors (
		film_id     BIGINT NOT NULL REFERENCES films (id) ON DELETE CASCADE,
		director_id BIGINT NOT NULL REFERENCES directors (id) ON DELETE CASCADE,
		PRIMARY KEY (film_id, director_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id       BIGSERIAL PRIMARY KEY,
		email    VARCHAR(255) NOT NULL,
		login    VARCHAR(255) NOT NULL,
		name     VARCHAR(255) NOT NULL,
		birthday DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS film_likes (
		film_id BIGINT NOT NULL REFERENCES films (id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		PRIMARY KEY (film_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_film_likes_user ON film_likes (user_id)`,
	`CREATE TABLE IF NOT EXISTS friendships (
		user_id   BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		friend_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, friend_id),
		CHECK (user_id <> friend_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id          BIGSERIAL PRIMARY KEY,
		content     TEXT NOT NULL,
		is_positive BOOLEAN NOT NULL,
		user_id     BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		film_id     BIGINT NOT NULL REFERENCES films (id) ON DELETE CASCADE,
		useful      INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS review_votes (
		review_id BIGINT NOT NULL REFERENCES reviews (id) ON DELETE CASCADE,
		user_id   BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		is_useful BOOLEAN NOT NULL,
		PRIMARY KEY (review_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id         BIGSERIAL PRIMARY KEY,
		event_time BIGINT NOT NULL,
		user_id    BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		event_type VARCHAR(16) NOT NULL,
		operation  VARCHAR(16) NOT NULL,
		entity_id  BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_user ON events (user_id)`,
}

// seedStatements 基础字典数据
var seedStatements = []string{
	`INSERT INTO mpa_ratings (id, name) VALUES
		(1, 'G'), (2, 'PG'), (3, 'PG-13'), (4, 'R'), (5, 'NC-17')
	ON CONFLICT DO NOTHING`,
	`INSERT INTO genres (id, name) VALUES
		(1, 'Комедия'), (2, 'Драма'), (3, 'Мультфильм'),
		(4, 'Триллер'), (5, 'Документальный'), (6, 'Боевик')
	ON CONFLICT DO NOTHING`,
}

// Migrate 建表并写入字典数据
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmts := range [][]string{schemaStatements, seedStatements} {
			for _, stmt := range stmts {
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("执行迁移失败: %w", err)
				}
			}
		}
		return nil
	})
}
