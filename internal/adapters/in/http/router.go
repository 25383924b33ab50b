package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const maxBodySize = "10M"

// RouterConfig carries what NewRouter mounts besides the API itself.
type RouterConfig struct {
	Logger *zap.Logger
	// Files is set when blobs are stored on local disk.
	Files FileOpener
}

// NewRouter builds the echo instance with health, metrics, Swagger UI and
// the /api/v1 routes.
func NewRouter(ctx context.Context, s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.Validator = newRequestBodyValidator()
	e.HTTPErrorHandler = errorHandler(cfg.Logger)

	e.Use(
		middleware.RequestID(),
		requestMetrics,
		requestLogger(cfg.Logger),
		middleware.Recover(),
		middleware.BodyLimit(maxBodySize),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Files != nil {
		e.GET("/files/:bucket/*", serveFile(cfg.Files))
	}

	if s.issuer != nil {
		e.POST("/api/v1/auth/token", s.IssueToken, validate)
	}

	api := e.Group("/api/v1", s.authenticate, validate)
	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/pool", s.GetPublicPool)
	api.GET("/deliveries/assigned", s.GetAssignedDeliveries)
	api.GET("/deliveries/mine", s.GetStudentDeliveries)
	api.GET("/deliveries/mess/:messId", s.GetMessDeliveries)
	api.POST("/deliveries/:deliveryId/accept", s.AcceptFromPool)
	api.POST("/deliveries/:deliveryId/status", s.AdvanceStatus)
	api.GET("/deliveries/:deliveryId/proofs", s.GetDeliveryProofs)
	api.PUT("/deliveries/:deliveryId/proofs/:slot", s.AttachProof)
	api.POST("/subscriptions", s.RequestSubscription)
	api.POST("/subscriptions/:subscriptionId/review", s.ReviewSubscription)
	api.GET("/messes/:messId/staff", s.GetMessStaff)
	api.POST("/staff", s.CreateStaff)
	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/:notificationId/read", s.MarkNotificationRead)

	return e, nil
}
