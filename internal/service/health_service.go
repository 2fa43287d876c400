// internal/service/health_service.go
package service

import (
	"context"
	"strings"

	"userhub/internal/repository"
)

// Health status values.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthStatus describes the state of the service and its database.
// When the database cannot be reached, UserCount is 0, DatabaseVersion
// is "N/A", and Err carries the failure text.
type HealthStatus struct {
	Status            string
	DatabaseConnected bool
	UserCount         int64
	DatabaseVersion   string
	Err               string
}

// HealthService reports whether the service can reach its database.
type HealthService interface {
	// Check probes the database. It never fails; problems are reported
	// inside the returned HealthStatus.
	Check(ctx context.Context) HealthStatus
}

// healthService implements HealthService over the shared connection pool.
type healthService struct {
	dbExecutor repository.DBExecutor
}

// NewHealthService creates a new instance of HealthService.
func NewHealthService(dbExecutor repository.DBExecutor) HealthService {
	return &healthService{dbExecutor: dbExecutor}
}

// Check runs two probe queries: the user count and the server version.
// Any failure marks the whole status unhealthy.
func (s *healthService) Check(ctx context.Context) HealthStatus {
	var count int64
	if err := s.dbExecutor.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return unhealthyStatus(err)
	}

	var version string
	if err := s.dbExecutor.GetContext(ctx, &version, `SELECT version()`); err != nil {
		return unhealthyStatus(err)
	}
	// Keep the short product/version part, e.g. "PostgreSQL 16.2".
	version, _, _ = strings.Cut(version, ",")

	return HealthStatus{
		Status:            StatusHealthy,
		DatabaseConnected: true,
		UserCount:         count,
		DatabaseVersion:   version,
	}
}

func unhealthyStatus(err error) HealthStatus {
	return HealthStatus{
		Status:            StatusUnhealthy,
		DatabaseConnected: false,
		UserCount:         0,
		DatabaseVersion:   "N/A",
		Err:               err.Error(),
	}
}
