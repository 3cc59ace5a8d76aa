package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vapeshop/logger"
)

const (
	maxProbeCollections = 10
	maxProbeErrorLen    = 80
)

// DiagnosticReport is the body of GET /test.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthController struct {
	base
	databaseURLSet bool
}

// NewHealthController builds the liveness and probe handlers. databaseURLSet
// only feeds the database_url field of the probe report.
func NewHealthController(d Deps, databaseURLSet bool) *HealthController {
	return &HealthController{base: newBase(d), databaseURLSet: databaseURLSet}
}

func (hc *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Vape Shop API running"})
}

// Probe reports whether the store is reachable. It always answers 200; any
// failure ends up as text in the database field.
func (hc *HealthController) Probe(c *gin.Context) {
	report := &DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			logger.With(c, hc.log).Error("Probe panicked", zap.Any("panic", r))
			report.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxProbeErrorLen)
		}
		c.JSON(http.StatusOK, report)
	}()

	hc.probe(c, report)
}

func (hc *HealthController) probe(c *gin.Context, report *DiagnosticReport) {
	store, err := hc.store.Get()
	if err != nil {
		report.Database = "⚠️ Available but not initialized"
		return
	}

	report.Database = "✅ Available"
	urlState := "❌ Not Set"
	if hc.databaseURLSet {
		urlState = "✅ Set"
	}
	report.DatabaseURL = &urlState

	name := store.DatabaseName()
	if name == "" {
		name = "Unknown"
	}
	report.DatabaseName = &name

	ctx, cancel := hc.withTimeout(c)
	defer cancel()

	names, err := store.CollectionNames(ctx)
	if err != nil {
		logger.With(c, hc.log).Warn("Database probe failed", zap.Error(err))
		report.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxProbeErrorLen)
		return
	}

	if names == nil {
		names = []string{}
	}
	if len(names) > maxProbeCollections {
		names = names[:maxProbeCollections]
	}
	report.Collections = names
	report.Database = "✅ Connected & Working"
	report.ConnectionStatus = "Connected"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
