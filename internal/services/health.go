package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/strawhutmedia/onboarding/internal/config"
	"github.com/strawhutmedia/onboarding/internal/utils"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Relay        string            `json:"relay"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB, sessions *SessionStore) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check email relay reachability. The relay is an external service, so
	// an outage degrades the report without failing it outright.
	if err := utils.PingRelay(cfg.RelayBaseURL); err != nil {
		result.Relay = "unreachable"
		result.Details["relay_error"] = err.Error()
		if result.Status == "healthy" {
			result.Status = "degraded"
		}
		log.Printf("Health check warning - relay ping: %v", err)
	} else {
		result.Relay = "ok"
		result.Details["relay_url"] = cfg.RelayBaseURL
	}

	if sessions != nil {
		result.Details["live_sessions"] = fmt.Sprintf("%d", sessions.Count())
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
