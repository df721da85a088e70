// Package server assembles the HTTP engine from the configured services.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/handler"
	"github.com/snnyvrz/bookstore/internal/middleware"
	"github.com/snnyvrz/bookstore/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/snnyvrz/bookstore/internal/docs"
)

const (
	ServiceFeedback = "feedback"
	ServiceInquiry  = "inquiry"
	ServiceCatalog  = "catalog"
)

var AllServices = []string{ServiceFeedback, ServiceInquiry, ServiceCatalog}

// Deps is everything the router needs. A nil repository leaves its
// service unmounted.
type Deps struct {
	Feedback repository.FeedbackRepository
	Inquiry  repository.InquiryRepository
	Catalog  repository.CatalogRepository

	Store  handler.Pinger
	Driver string

	Log         logrus.FieldLogger
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string

	StartTime time.Time
	Version   string
}

func NewRouter(d Deps) *gin.Engine {
	e := gin.New()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		gin.Recovery(),
		middleware.CORS(d.CORSOrigins),
	)

	handler.NewHealthHandler(d.Store, d.Driver, d.StartTime, d.Version).RegisterRoutes(e)

	var submit []gin.HandlerFunc
	if d.RateLimiter != nil {
		submit = append(submit, d.RateLimiter.Handler())
	}

	root := e.Group("")
	if d.Feedback != nil {
		handler.NewFeedbackHandler(d.Feedback, d.Log).RegisterRoutes(root, submit...)
	}
	if d.Inquiry != nil {
		handler.NewInquiryHandler(d.Inquiry, d.Log).RegisterRoutes(root, submit...)
	}
	if d.Catalog != nil {
		handler.NewCatalogHandler(d.Catalog, d.Log).RegisterRoutes(root)
		handler.NewStatisticsHandler(d.Catalog, d.Log).RegisterRoutes(root)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
