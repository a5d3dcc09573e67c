package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yaritu/core/internal/database"
	"github.com/yaritu/core/internal/middleware"
	"github.com/yaritu/core/internal/modules/auth"
	"github.com/yaritu/core/internal/modules/chat"
	"github.com/yaritu/core/internal/modules/contact"
	"github.com/yaritu/core/internal/modules/jewellery"
	"github.com/yaritu/core/internal/modules/testimonial"
	"github.com/yaritu/core/internal/modules/upload"
	"github.com/yaritu/core/internal/modules/video"
	"github.com/yaritu/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	auth.NewHandler(a.cfg.Admin).RegisterRoutes(api)

	upload.NewHandler(a.store, a.cfg.Storage.MaxUploadBytes(), a.logger).
		RegisterRoutes(api, authMW)

	contact.NewHandler(
		contact.NewService(a.db),
		contact.NewMailNotifier(a.cfg.Mail),
		a.logger,
	).RegisterRoutes(api, authMW)

	testimonial.NewHandler(testimonial.NewService(a.db)).RegisterRoutes(api, authMW)

	video.NewHandler(video.NewService(a.db, database.CollTrendingVideos), "trending").
		RegisterRoutes(api, authMW)
	video.NewHandler(video.NewService(a.db, database.CollCelebrityVideos), "celebrity").
		RegisterRoutes(api, authMW)

	jewellery.NewHandler(jewellery.NewService(a.db)).RegisterRoutes(api, authMW)

	chat.NewHandler(chat.NewCompleter(a.cfg.Chat), a.logger).RegisterRoutes(api)
}
