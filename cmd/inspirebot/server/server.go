// Package server exposes the block workspace and the chat assistant over
// HTTP for the browser front end.
package server

import (
	"context"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/assistant"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/simulator"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/pkg/logger"
)

// Asker answers chat messages. *assistant.Assistant implements it.
type Asker interface {
	Ask(ctx context.Context, text string) assistant.Reply
}

// Server serves one workspace. The engine is single-threaded, so every
// handler that touches it holds mu.
type Server struct {
	mu    sync.Mutex
	eng   *blocks.Engine
	scene *simulator.Scene
	chat  Asker
	log   *logger.Logger
}

// New returns a Server over eng. chat and log may be nil.
func New(eng *blocks.Engine, chat Asker, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if chat == nil {
		chat = assistant.New(nil, assistant.WithLogger(log))
	}
	return &Server{
		eng:   eng,
		scene: simulator.New(uint64(time.Now().UnixNano())),
		chat:  chat,
		log:   log,
	}
}

// Router builds the gin engine. origins lists the browser origins allowed by CORS.
func (s *Server) Router(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	if len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Content-Type"},
		}))
	}

	router.GET("/healthcheck", s.healthcheck)

	api := router.Group("/api")
	{
		api.GET("/palette", s.getPalette)
		api.GET("/workspace", s.getWorkspace)
		api.DELETE("/workspace", s.resetWorkspace)
		api.POST("/workspace/blocks", s.placeBlock)
		api.POST("/workspace/reorder", s.reorder)
		api.DELETE("/workspace/blocks/:id", s.removeBlock)
		api.PUT("/workspace/blocks/:id/pins/:slot", s.setPin)
		api.PUT("/workspace/blocks/:id/values/:slot", s.setGeneric)
		api.PUT("/workspace/blocks/:id/wait", s.setWait)
		api.POST("/run", s.run)
		api.POST("/chat", s.askChat)
	}
	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
