package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gilchrisn/rgcluster/pkg/graph"
	"github.com/gilchrisn/rgcluster/pkg/loader"
	"github.com/gilchrisn/rgcluster/service/models"
)

// DatasetService is an in-memory registry of graphs available for
// clustering, keyed by a generated dataset id.
type DatasetService struct {
	mutex    sync.RWMutex
	datasets map[string]*models.Dataset
	graphs   map[string]*graph.Graph
}

// NewDatasetService creates an empty dataset registry.
func NewDatasetService() *DatasetService {
	return &DatasetService{
		datasets: make(map[string]*models.Dataset),
		graphs:   make(map[string]*graph.Graph),
	}
}

// RegisterFile loads an edge-list file from path and registers it under
// name, returning the new dataset's metadata.
func (s *DatasetService) RegisterFile(name, path string) (*models.Dataset, error) {
	g, err := loader.LoadEdgeList(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	return s.register(name, g)
}

func (s *DatasetService) register(name string, g *graph.Graph) (*models.Dataset, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := uuid.New().String()
	dataset := &models.Dataset{
		ID:        id,
		Name:      name,
		NodeCount: g.NumNodes(),
		EdgeCount: int(g.M()),
		CreatedAt: time.Now(),
	}

	s.datasets[id] = dataset
	s.graphs[id] = g
	return dataset, nil
}

// Get returns a dataset's metadata by id.
func (s *DatasetService) Get(datasetID string) (*models.Dataset, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	dataset, exists := s.datasets[datasetID]
	if !exists {
		return nil, fmt.Errorf("dataset not found: %s", datasetID)
	}
	return dataset, nil
}

// Graph returns the graph backing a dataset by id.
func (s *DatasetService) Graph(datasetID string) (*graph.Graph, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	g, exists := s.graphs[datasetID]
	if !exists {
		return nil, fmt.Errorf("dataset not found: %s", datasetID)
	}
	return g, nil
}

// List returns every registered dataset.
func (s *DatasetService) List() []*models.Dataset {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]*models.Dataset, 0, len(s.datasets))
	for _, d := range s.datasets {
		out = append(out, d)
	}
	return out
}

// Delete removes a dataset and its backing graph.
func (s *DatasetService) Delete(datasetID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.datasets[datasetID]; !exists {
		return fmt.Errorf("dataset not found: %s", datasetID)
	}
	delete(s.datasets, datasetID)
	delete(s.graphs, datasetID)
	return nil
}
