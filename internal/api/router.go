package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"care-site-backend/config"
	"care-site-backend/internal/content"
	"care-site-backend/internal/mw"
	"care-site-backend/internal/store"
)

// NewRouter creates and configures a new Gin router. Snapshot routes are only
// registered when st is non-nil.
func NewRouter(svc *content.Service, st store.Store, cfg config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(svc, st)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(ttl, 2*ttl)
	caching := mw.Cache(cacheStore, ttl)

	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	api.Use(rateLimiter, caching)
	{
		api.GET("/news", handler.ListNews)
		api.GET("/news/:id", handler.GetNews)
		api.GET("/staff", handler.ListStaff)
		api.GET("/faq", handler.ListFaq)
		api.GET("/services", handler.ListServices)
		api.GET("/rental-categories", handler.ListRentalCategories)
		api.GET("/rental-categories/:slug", handler.GetRentalCategory)
		api.GET("/sale-items", handler.ListSaleItems)
		api.GET("/sale-items/:slug", handler.GetSaleItem)
		api.GET("/recruit", handler.GetRecruit)

		if st != nil {
			api.GET("/snapshots", handler.GetSnapshotCounts)
			api.GET("/snapshots/:kind", handler.GetSnapshot)
		}
	}

	return r
}
