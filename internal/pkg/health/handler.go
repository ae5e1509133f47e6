package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Probe reports whether a backing dependency is reachable. A nil error
// means ready.
type Probe func() error

type status struct {
	Service    string    `json:"service"`
	Version    string    `json:"version"`
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	ServerTime time.Time `json:"server_time"`
}

// RegisterHealthEndpoints wires liveness and readiness endpoints onto
// the router. Liveness always succeeds while the process serves;
// readiness fails if any probe reports an error.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, probes ...Probe) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "development"
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, status{
			Service:    serviceName,
			Version:    version,
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now(),
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		for _, probe := range probes {
			if err := probe(); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
					"error":  err.Error(),
				})
			}
		}
		return c.String(http.StatusOK, "OK")
	})
}
