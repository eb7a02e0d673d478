package jobs

import (
	"fmt"
	"log/slog"

	"github.com/singhmantoshkumar22/cjdquick-app-sub001/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	slaMonitorJob *SLAMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	undeliveredHandler queries.GetUndeliveredOrdersQueryHandler,
	complianceHandler queries.TrackComplianceQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		slaMonitorJob: NewSLAMonitorJob(undeliveredHandler, complianceHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.slaMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start sla monitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.slaMonitorJob.Stop()
}
