package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the portal's Prometheus scrape endpoint via Fiber.
// Collectors register on first use, so the endpoint can be mounted before
// any request-path code has run. Scrapes stay partial instead of failing
// outright when a single collector errors.
func MetricsHandler() fiber.Handler {
	RegisterMetrics()
	scraper := promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
	return adaptor.HTTPHandler(scraper)
}
