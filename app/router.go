package app

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	wmmetrics "github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// NewMessageRouter builds the shared watermill router that every module
// registers its handlers on. Middleware order matters: correlation IDs are
// stamped before anything else so the recoverer logs them on panic.
func NewMessageRouter(logger watermill.LoggerAdapter, registry *prometheus.Registry) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	metricsBuilder := wmmetrics.NewPrometheusMetricsBuilder(registry, "greens_engine", "watermill")
	metricsBuilder.AddPrometheusRouterMetrics(router)

	return router, nil
}
