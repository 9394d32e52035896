package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"publish-blog/app/server/auth"
	"publish-blog/app/server/content"
	"publish-blog/app/server/jwt"
)

type App struct {
	l   *zap.Logger   // logging
	db  *gorm.DB      // database
	rdb *redis.Client // Redis, session revocation list
	jwt *jwt.JWT      // stateless session tokens

	auth    *auth.Service
	content *content.Service
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT) *App {
	return &App{
		l:       l,
		db:      db,
		rdb:     rdb,
		jwt:     j,
		auth:    auth.NewService(db),
		content: content.NewService(db),
	}
}
