package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
	"github.com/joelapexsolutions/lottery-api-service/internal/results"
	"github.com/joelapexsolutions/lottery-api-service/pkg/lotteries"
)

// ResultsService is the core contract the HTTP layer consumes.
type ResultsService interface {
	Record(ctx context.Context, id string) (*domain.LotteryRecord, error)
	Catalog() []lotteries.Lottery
}

// Handler serves the lottery API endpoints.
type Handler struct {
	svc ResultsService
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(svc ResultsService) *gin.Engine {
	h := &Handler{svc: svc}

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/lotteries", h.ListLotteries)
		api.GET("/lotteries/:id", h.GetLottery)
	}

	return router
}

// ListLotteries handles GET /api/v1/lotteries: the catalog of supported
// identifiers with display names.
func (h *Handler) ListLotteries(c *gin.Context) {
	entries := h.svc.Catalog()
	out := make([]gin.H, 0, len(entries))
	for _, lot := range entries {
		out = append(out, gin.H{
			"identifier":  lot.ID,
			"displayName": lot.Name,
		})
	}
	c.JSON(http.StatusOK, gin.H{"lotteries": out})
}

// GetLottery handles GET /api/v1/lotteries/:id.
func (h *Handler) GetLottery(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.svc.Record(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, rec)
	case errors.Is(err, results.ErrNotSupported):
		c.JSON(http.StatusNotFound, gin.H{"error": "lottery not supported", "identifier": id})
	case errors.Is(err, results.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "lottery results unavailable", "identifier": id})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
