package httpserver

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rahulkure2004/rahul-portfolio/internal/config"
	"github.com/rahulkure2004/rahul-portfolio/internal/handler"
)

// Router assembles the HTTP surface: the JSON API under /api and the SPA
// bundle for everything else.
type Router struct {
	Engine *gin.Engine
}

// New builds the router from the handler set
func New(
	cfg *config.Config,
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	inquiry *handler.InquiryHandler,
	admin *handler.AdminHandler,
) *Router {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(recovery())

	api := r.Group("/api")
	{
		api.GET("/health", health.Check)
		api.POST("/auth/login", auth.Login)
		api.POST("/contact", inquiry.Submit)

		adminGroup := api.Group("/admin", handler.RequireAuth())
		{
			adminGroup.GET("/messages", admin.ListMessages)
			adminGroup.GET("/messages/filter", admin.FilterMessages)
			adminGroup.GET("/messages/search", admin.SearchMessages)
			adminGroup.GET("/stats", admin.Stats)
			adminGroup.PUT("/message/:id/status", admin.UpdateStatus)
			adminGroup.DELETE("/message/:id", admin.DeleteMessage)
		}
	}

	// Unmatched /api paths are a JSON 404; everything else falls back to the
	// SPA entry document so client-side routing keeps working.
	staticDir := cfg.Static.Dir
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": fmt.Sprintf("API route not found: %s %s", c.Request.Method, path),
			})
			return
		}
		serveSPA(c, staticDir, path)
	})

	return &Router{Engine: r}
}

// serveSPA serves a static asset when it exists, the SPA entry document
// otherwise.
func serveSPA(c *gin.Context, staticDir, path string) {
	clean := filepath.Clean(path)
	if clean == "/" || strings.Contains(clean, "..") {
		clean = "/index.html"
	}

	file := filepath.Join(staticDir, clean)
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}

	index := filepath.Join(staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	c.File(index)
}

// recovery converts panics into the generic error response: JSON on API
// paths, plain text elsewhere.
func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[HTTP] panic recovered: %v", recovered)
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server Error",
			})
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		c.Abort()
	})
}
