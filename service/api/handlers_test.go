package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/rgcluster/service"
	"github.com/gilchrisn/rgcluster/service/models"
)

func newTestRouter(t *testing.T) (*mux.Router, *service.DatasetService) {
	t.Helper()
	datasets := service.NewDatasetService()
	jobs := service.NewJobService(datasets, 2, time.Hour, time.Hour, zerolog.Nop())
	comparisons := service.NewComparisonService(datasets, jobs)
	handlers := NewHandlers(datasets, jobs, comparisons)

	router := mux.NewRouter()
	SetupRoutes(router, handlers)
	return router, datasets
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("response.Success = false, want true")
	}
}

func TestRegisterDatasetAndGet(t *testing.T) {
	router, _ := newTestRouter(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.txt")
	if err := os.WriteFile(path, []byte("0 1\n1 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp edge list: %v", err)
	}

	body, _ := json.Marshal(map[string]string{"name": "test", "path": path})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/datasets", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("register status = %d, want %d, body=%s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response data is not an object: %#v", resp.Data)
	}
	datasetID, _ := data["id"].(string)
	if datasetID == "" {
		t.Fatal("registered dataset has no id")
	}

	getReq := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/"+datasetID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	if getRec.Code != http.StatusOK {
		t.Errorf("get status = %d, want %d", getRec.Code, http.StatusOK)
	}
}

func TestGetDatasetNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
