package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ventas/backend/internal/infrastructure/persistence"
	"github.com/ventas/backend/internal/interfaces/http/dto"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/info", h.GetSystemInfo)
	rg.GET("/ping", h.Ping)
}

// healthResponse reports overall service health
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// systemInfoResponse reports build and runtime details
type systemInfoResponse struct {
	Version      string `json:"version"`
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	Uptime       string `json:"uptime"`
	StartedAt    string `json:"started_at"`
}

// Health reports service health including database connectivity.
// An unreachable database yields 503 so load balancers stop routing here.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := healthResponse{
		Status:   "ok",
		Database: "ok",
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(resp))
			return
		}
	}

	h.Success(c, resp)
}

// GetSystemInfo returns build and runtime information
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, systemInfoResponse{
		Version:      h.version,
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		StartedAt:    h.startTime.UTC().Format(time.RFC3339),
	})
}

// Ping is a minimal liveness probe
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}
