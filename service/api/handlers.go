package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gilchrisn/rgcluster/service"
	"github.com/gilchrisn/rgcluster/service/models"
	"github.com/gilchrisn/rgcluster/service/utils"
)

// Handlers holds the services the HTTP layer dispatches into.
type Handlers struct {
	datasets    *service.DatasetService
	jobs        *service.JobService
	comparisons *service.ComparisonService
}

// NewHandlers wires a Handlers to its backing services.
func NewHandlers(datasets *service.DatasetService, jobs *service.JobService, comparisons *service.ComparisonService) *Handlers {
	return &Handlers{datasets: datasets, jobs: jobs, comparisons: comparisons}
}

type registerDatasetRequest struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// RegisterDataset loads the edge-list file named in the request body and
// registers it as a dataset.
func (h *Handlers) RegisterDataset(w http.ResponseWriter, r *http.Request) {
	var req registerDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	dataset, err := h.datasets.RegisterFile(req.Name, req.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "failed to register dataset", err)
		return
	}
	utils.WriteSuccessResponse(w, "dataset registered", dataset)
}

// ListDatasets returns every registered dataset.
func (h *Handlers) ListDatasets(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, "datasets listed", h.datasets.List())
}

// GetDataset returns a single dataset's metadata.
func (h *Handlers) GetDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]
	dataset, err := h.datasets.Get(datasetID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "dataset not found", err)
		return
	}
	utils.WriteSuccessResponse(w, "dataset found", dataset)
}

// DeleteDataset removes a registered dataset.
func (h *Handlers) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]
	if err := h.datasets.Delete(datasetID); err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "dataset not found", err)
		return
	}
	utils.WriteSuccessResponse(w, "dataset deleted", nil)
}

type submitJobRequest struct {
	Algorithm  models.AlgorithmType `json:"algorithm"`
	Parameters models.JobParameters `json:"parameters"`
}

// SubmitJob queues a clustering job for a dataset.
func (h *Handlers) SubmitJob(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]

	var req submitJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	job, err := h.jobs.Submit(datasetID, req.Algorithm, req.Parameters)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "failed to submit job", err)
		return
	}
	utils.WriteSuccessResponse(w, "job submitted", job)
}

// ListJobs returns every job submitted for a dataset.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	datasetID := mux.Vars(r)["datasetId"]
	utils.WriteSuccessResponse(w, "jobs listed", h.jobs.List(datasetID))
}

// GetJob returns a single job's status and result.
func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]
	job, err := h.jobs.Get(jobID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "job not found", err)
		return
	}
	utils.WriteSuccessResponse(w, "job found", job)
}

// CancelJob cancels a queued or running job.
func (h *Handlers) CancelJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]
	if err := h.jobs.Cancel(jobID); err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "job not found", err)
		return
	}
	utils.WriteSuccessResponse(w, "job cancelled", nil)
}

type createComparisonRequest struct {
	JobAID string `json:"jobAId"`
	JobBID string `json:"jobBId"`
}

// CreateComparison computes the NMI between two completed jobs' partitions.
func (h *Handlers) CreateComparison(w http.ResponseWriter, r *http.Request) {
	var req createComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.comparisons.Compare(req.JobAID, req.JobBID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "failed to compare jobs", err)
		return
	}
	utils.WriteSuccessResponse(w, "comparison complete", result)
}

// HealthCheck reports the service is up.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, "ok", nil)
}
