package service

import (
	"fmt"

	"github.com/gilchrisn/rgcluster/pkg/nmi"
	"github.com/gilchrisn/rgcluster/service/models"
)

// ComparisonService compares two completed jobs' partitions by NMI.
type ComparisonService struct {
	datasets *DatasetService
	jobs     *JobService
}

// NewComparisonService wires a comparison service to the dataset and job
// services it reads from.
func NewComparisonService(datasets *DatasetService, jobs *JobService) *ComparisonService {
	return &ComparisonService{datasets: datasets, jobs: jobs}
}

// Compare returns the NMI between jobA's and jobB's partitions. Both jobs
// must have completed against the same dataset.
func (s *ComparisonService) Compare(jobAID, jobBID string) (*models.ComparisonResult, error) {
	jobA, err := s.jobs.Get(jobAID)
	if err != nil {
		return nil, err
	}
	jobB, err := s.jobs.Get(jobBID)
	if err != nil {
		return nil, err
	}
	if jobA.DatasetID != jobB.DatasetID {
		return nil, fmt.Errorf("comparison: jobs ran on different datasets")
	}
	if jobA.Status != models.JobStatusCompleted || jobB.Status != models.JobStatusCompleted {
		return nil, fmt.Errorf("comparison: both jobs must be completed")
	}

	pA, err := s.jobs.Partition(jobAID)
	if err != nil {
		return nil, err
	}
	pB, err := s.jobs.Partition(jobBID)
	if err != nil {
		return nil, err
	}

	dataset, err := s.datasets.Get(jobA.DatasetID)
	if err != nil {
		return nil, err
	}

	score, err := nmi.Compute(pA, pB, dataset.NodeCount)
	if err != nil {
		return nil, fmt.Errorf("comparison: %w", err)
	}

	return &models.ComparisonResult{JobAID: jobAID, JobBID: jobBID, NMI: score}, nil
}
