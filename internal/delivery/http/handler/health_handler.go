package handler

import (
	"net/http"
	"time"

	"radiograph-service/internal/service"
	"radiograph-service/pkg/response"

	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	cache     *service.PatientCache
	startTime time.Time
}

func NewHealthHandler(db *gorm.DB, cache *service.PatientCache) *HealthHandler {
	return &HealthHandler{
		db:        db,
		cache:     cache,
		startTime: time.Now(),
	}
}

type healthResponse struct {
	Status      string    `json:"status"`
	DBStatus    string    `json:"dbStatus"`
	CacheStatus string    `json:"cacheStatus"`
	Uptime      float64   `json:"uptime"`
	Timestamp   time.Time `json:"timestamp"`
}

// Check always answers 200; it reports store connectivity and process
// uptime, never request-handling health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	dbStatus := "disconnected"
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil {
			if err := sqlDB.PingContext(r.Context()); err == nil {
				dbStatus = "connected"
			}
		}
	}

	cacheStatus := "disconnected"
	if err := h.cache.Ping(r.Context()); err == nil {
		cacheStatus = "connected"
	}

	response.JSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		DBStatus:    dbStatus,
		CacheStatus: cacheStatus,
		Uptime:      time.Since(h.startTime).Seconds(),
		Timestamp:   time.Now(),
	})
}
