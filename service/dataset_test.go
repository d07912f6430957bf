package service

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempEdgeList(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write temp edge list: %v", err)
	}
	return path
}

func TestRegisterFileAndGet(t *testing.T) {
	path := writeTempEdgeList(t, "0 1\n1 2\n2 0\n")
	s := NewDatasetService()

	dataset, err := s.RegisterFile("triangle", path)
	if err != nil {
		t.Fatalf("RegisterFile returned error: %v", err)
	}
	if dataset.NodeCount != 3 {
		t.Errorf("NodeCount = %d, want 3", dataset.NodeCount)
	}

	got, err := s.Get(dataset.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.ID != dataset.ID {
		t.Errorf("Get returned a different dataset")
	}
}

func TestGetUnknownDataset(t *testing.T) {
	s := NewDatasetService()
	if _, err := s.Get("missing"); err == nil {
		t.Error("Get on an unregistered id: want error, got nil")
	}
}

func TestDeleteDataset(t *testing.T) {
	path := writeTempEdgeList(t, "0 1\n")
	s := NewDatasetService()
	dataset, _ := s.RegisterFile("pair", path)

	if err := s.Delete(dataset.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := s.Get(dataset.ID); err == nil {
		t.Error("Get after Delete: want error, got nil")
	}
}

func TestListDatasets(t *testing.T) {
	path := writeTempEdgeList(t, "0 1\n")
	s := NewDatasetService()
	s.RegisterFile("a", path)
	s.RegisterFile("b", path)

	if got := len(s.List()); got != 2 {
		t.Errorf("List() returned %d datasets, want 2", got)
	}
}
