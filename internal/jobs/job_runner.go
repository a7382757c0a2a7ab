package jobs

import (
	"potluck-backend/internal/config"
	"potluck-backend/internal/logger"
	"potluck-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	admission service.AdmissionService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(admission service.AdmissionService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		admission: admission,
		config:    cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
