package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/rgcluster/pkg/partition"
	"github.com/gilchrisn/rgcluster/pkg/rg"
	"github.com/gilchrisn/rgcluster/service/models"
)

// defaultSampleSize, defaultRuns, etc. back-fill any job parameter a client
// did not set.
const (
	defaultSampleSize   = 1
	defaultRuns         = 1
	defaultInitClusters = 2
	defaultRestartK     = 1
)

// JobService runs clustering jobs asynchronously against a bounded worker
// pool: a buffered channel as semaphore, a uuid-keyed job map guarded by a
// mutex, and periodic TTL cleanup of every job, whatever its status, that
// has not been updated within the TTL.
type JobService struct {
	jobs       map[string]*models.Job
	partitions map[string]*partition.Partition
	workers    chan struct{}
	datasets   *DatasetService
	mutex      sync.RWMutex
	jobTTL     time.Duration
	logger     zerolog.Logger
}

// NewJobService creates a job service with maxWorkers concurrent slots and
// starts its background cleanup loop.
func NewJobService(datasets *DatasetService, maxWorkers int, jobTTL, cleanupInterval time.Duration, logger zerolog.Logger) *JobService {
	s := &JobService{
		jobs:       make(map[string]*models.Job),
		partitions: make(map[string]*partition.Partition),
		workers:    make(chan struct{}, maxWorkers),
		datasets:   datasets,
		jobTTL:     jobTTL,
		logger:     logger,
	}
	go s.cleanupLoop(cleanupInterval)
	return s
}

// Submit creates and queues a new clustering job, returning immediately;
// the job runs on its own goroutine.
func (s *JobService) Submit(datasetID string, algorithm models.AlgorithmType, params models.JobParameters) (*models.Job, error) {
	if algorithm != models.AlgorithmRG && algorithm != models.AlgorithmCGGC {
		return nil, fmt.Errorf("unknown algorithm: %s", algorithm)
	}
	if _, err := s.datasets.Get(datasetID); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	job := &models.Job{
		ID:         uuid.New().String(),
		DatasetID:  datasetID,
		Algorithm:  algorithm,
		Parameters: params,
		Status:     models.JobStatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.jobs[job.ID] = job

	s.logger.Info().Str("job_id", job.ID).Str("dataset_id", datasetID).Str("algorithm", string(algorithm)).Msg("job submitted")

	go s.processJob(job.ID)
	return job, nil
}

// Get retrieves a job by id.
func (s *JobService) Get(jobID string) (*models.Job, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}
	return job, nil
}

// Partition returns the partition a completed job produced.
func (s *JobService) Partition(jobID string) (*partition.Partition, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, exists := s.partitions[jobID]
	if !exists {
		return nil, fmt.Errorf("result not found for job: %s", jobID)
	}
	return p, nil
}

// List returns every job submitted for a dataset.
func (s *JobService) List(datasetID string) []*models.Job {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var jobs []*models.Job
	for _, job := range s.jobs {
		if job.DatasetID == datasetID {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// Cancel marks a running or queued job cancelled; a job already executing
// on a worker goroutine still runs to completion but its result is
// discarded by processJob.
func (s *JobService) Cancel(jobID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return fmt.Errorf("job not found: %s", jobID)
	}
	if job.Status == models.JobStatusQueued || job.Status == models.JobStatusRunning {
		job.Status = models.JobStatusCancelled
		now := time.Now()
		job.CompletedAt = &now
		job.UpdatedAt = now
	}
	return nil
}

func (s *JobService) processJob(jobID string) {
	s.workers <- struct{}{}
	defer func() { <-s.workers }()

	job, err := s.Get(jobID)
	if err != nil {
		s.logger.Error().Str("job_id", jobID).Msg("job not found during processing")
		return
	}
	if job.Status == models.JobStatusCancelled {
		return
	}

	start := time.Now()
	s.updateStatus(jobID, models.JobStatusRunning, &start)

	g, err := s.datasets.Graph(job.DatasetID)
	if err != nil {
		s.failJob(jobID, fmt.Errorf("failed to get dataset: %w", err))
		return
	}

	seed := time.Now().UnixNano()
	if job.Parameters.Seed != nil {
		seed = *job.Parameters.Seed
	}

	var result *rg.Result
	switch job.Algorithm {
	case models.AlgorithmRG:
		k := intOrDefault(job.Parameters.SampleSize, defaultSampleSize)
		runs := intOrDefault(job.Parameters.Runs, defaultRuns)
		result, err = rg.RunRG(g, k, runs, seed, s.logger)
	case models.AlgorithmCGGC:
		initClusters := intOrDefault(job.Parameters.InitClusters, defaultInitClusters)
		restartK := intOrDefault(job.Parameters.RestartK, defaultRestartK)
		iterative := job.Parameters.Iterative != nil && *job.Parameters.Iterative
		result, err = rg.RunCGGC(g, initClusters, restartK, iterative, seed, s.logger)
	}
	if err != nil {
		s.failJob(jobID, fmt.Errorf("algorithm execution failed: %w", err))
		return
	}

	s.completeJob(jobID, result, time.Since(start))
}

func intOrDefault(v *int, d int) int {
	if v == nil {
		return d
	}
	return *v
}

func (s *JobService) updateStatus(jobID string, status models.JobStatus, startTime *time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return
	}
	job.Status = status
	job.UpdatedAt = time.Now()
	if startTime != nil {
		job.StartedAt = startTime
	}
}

func (s *JobService) completeJob(jobID string, result *rg.Result, elapsed time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, exists := s.jobs[jobID]
	if !exists || job.Status == models.JobStatusCancelled {
		return
	}

	job.Status = models.JobStatusCompleted
	now := time.Now()
	job.CompletedAt = &now
	job.UpdatedAt = now
	job.Result = &models.JobResult{
		Modularity:       result.Q,
		NumClusters:      result.Partition.NumClusters(),
		ProcessingTimeMS: elapsed.Milliseconds(),
	}

	s.partitions[jobID] = result.Partition

	s.logger.Info().
		Str("job_id", jobID).
		Float64("modularity", result.Q).
		Int("clusters", result.Partition.NumClusters()).
		Msg("job completed")
}

func (s *JobService) failJob(jobID string, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return
	}
	job.Status = models.JobStatusFailed
	job.Error = err.Error()
	now := time.Now()
	job.CompletedAt = &now
	job.UpdatedAt = now

	s.logger.Error().Str("job_id", jobID).Err(err).Msg("job failed")
}

func (s *JobService) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		s.cleanup()
	}
}

func (s *JobService) cleanup() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cutoff := time.Now().Add(-s.jobTTL)
	cleaned := 0
	for jobID, job := range s.jobs {
		if job.UpdatedAt.Before(cutoff) {
			delete(s.jobs, jobID)
			delete(s.partitions, jobID)
			cleaned++
		}
	}
	if cleaned > 0 {
		s.logger.Info().Int("cleaned_jobs", cleaned).Msg("job cleanup completed")
	}
}
