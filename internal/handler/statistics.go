package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/model"
)

type StatisticsReader interface {
	BookStatistics(ctx context.Context) (model.BookStatistics, error)
	PublisherAuthorStatistics(ctx context.Context) (model.PublisherAuthorStatistics, error)
	PublisherPurchases(ctx context.Context, limit int) ([]model.PublisherPurchase, error)
}

type StatisticsHandler struct {
	stats StatisticsReader
	log   logrus.FieldLogger
}

func NewStatisticsHandler(stats StatisticsReader, log logrus.FieldLogger) *StatisticsHandler {
	return &StatisticsHandler{stats: stats, log: log.WithField("component", "statistics")}
}

func (h *StatisticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api")
	{
		api.GET("/book-statistics", h.BookStatistics)
		api.GET("/publisher-author-statistics", h.PublisherAuthorStatistics)
		api.GET("/publisher-purchases", h.PublisherPurchases)
	}
}

// BookStatistics godoc
// @Summary      Book totals
// @Description  Number of books, copies in stock and copies sold
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  model.BookStatistics
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /api/book-statistics [get]
func (h *StatisticsHandler) BookStatistics(c *gin.Context) {
	stats, err := h.stats.BookStatistics(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err,
			"STATISTICS_FAILED",
			"failed to compute book statistics",
		)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// PublisherAuthorStatistics godoc
// @Summary      Publisher and author counts
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  model.PublisherAuthorStatistics
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /api/publisher-author-statistics [get]
func (h *StatisticsHandler) PublisherAuthorStatistics(c *gin.Context) {
	stats, err := h.stats.PublisherAuthorStatistics(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err,
			"STATISTICS_FAILED",
			"failed to compute publisher statistics",
		)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// PublisherPurchases godoc
// @Summary      Top publishers by copies sold
// @Description  Up to ten publishers ordered by copies sold, as parallel arrays
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  PublisherPurchasesResponse
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /api/publisher-purchases [get]
func (h *StatisticsHandler) PublisherPurchases(c *gin.Context) {
	rows, err := h.stats.PublisherPurchases(c.Request.Context(), model.TopPublishers)
	if err != nil {
		writeInternalError(c, h.log, err,
			"STATISTICS_FAILED",
			"failed to compute publisher purchases",
		)
		return
	}

	c.JSON(http.StatusOK, toPublisherPurchases(rows))
}
