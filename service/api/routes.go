package api

import "github.com/gorilla/mux"

// SetupRoutes wires the service's REST surface onto router.
func SetupRoutes(router *mux.Router, handlers *Handlers) {
	v1 := router.PathPrefix("/api/v1").Subrouter()

	datasets := v1.PathPrefix("/datasets").Subrouter()
	datasets.HandleFunc("", handlers.ListDatasets).Methods("GET")
	datasets.HandleFunc("", handlers.RegisterDataset).Methods("POST")
	datasets.HandleFunc("/{datasetId}", handlers.GetDataset).Methods("GET")
	datasets.HandleFunc("/{datasetId}", handlers.DeleteDataset).Methods("DELETE")

	jobs := datasets.PathPrefix("/{datasetId}/jobs").Subrouter()
	jobs.HandleFunc("", handlers.ListJobs).Methods("GET")
	jobs.HandleFunc("", handlers.SubmitJob).Methods("POST")

	job := v1.PathPrefix("/jobs").Subrouter()
	job.HandleFunc("/{jobId}", handlers.GetJob).Methods("GET")
	job.HandleFunc("/{jobId}/cancel", handlers.CancelJob).Methods("POST")

	v1.HandleFunc("/comparisons", handlers.CreateComparison).Methods("POST")

	v1.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
}
