// Package models holds the wire types the HTTP service exchanges with
// clients: datasets, jobs, and the comparisons run between two completed
// jobs.
package models

import "time"

// Dataset is a graph registered with the service, ready to be clustered.
type Dataset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NodeCount int       `json:"nodeCount"`
	EdgeCount int       `json:"edgeCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// AlgorithmType selects which pkg/rg entry point a job runs.
type AlgorithmType string

const (
	AlgorithmRG   AlgorithmType = "rg"
	AlgorithmCGGC AlgorithmType = "cggc"
)

// JobParameters carries the per-algorithm parameters a client may set;
// unset fields fall back to the service's defaults.
type JobParameters struct {
	// RG parameters.
	SampleSize *int `json:"sampleSize,omitempty"`
	Runs       *int `json:"runs,omitempty"`

	// CGGC parameters.
	InitClusters *int  `json:"initClusters,omitempty"`
	RestartK     *int  `json:"restartK,omitempty"`
	Iterative    *bool `json:"iterative,omitempty"`

	Seed *int64 `json:"seed,omitempty"`
}

// JobStatus is the lifecycle state of a Job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job is one ClusterRG/ClusterCGGC invocation.
type Job struct {
	ID          string        `json:"id"`
	DatasetID   string        `json:"datasetId"`
	Algorithm   AlgorithmType `json:"algorithm"`
	Parameters  JobParameters `json:"parameters"`
	Status      JobStatus     `json:"status"`
	Result      *JobResult    `json:"result,omitempty"`
	Error       string        `json:"error,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	StartedAt   *time.Time    `json:"startedAt,omitempty"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// JobResult summarizes a completed job's partition.
type JobResult struct {
	Modularity       float64 `json:"modularity"`
	NumClusters      int     `json:"numClusters"`
	ProcessingTimeMS int64   `json:"processingTimeMS"`
}

// ComparisonResult is the outcome of comparing two completed jobs'
// partitions over the same dataset.
type ComparisonResult struct {
	JobAID string  `json:"jobAId"`
	JobBID string  `json:"jobBId"`
	NMI    float64 `json:"nmi"`
}

// APIResponse is the JSON envelope every handler responds with.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
