package http

import (
	"forklift-backend/internal/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	forkliftHandler *handlers.ForkliftHandler,
	checklistItemHandler *handlers.ChecklistItemHandler,
	inspectionHandler *handlers.InspectionHandler,
	fleetStatusHandler *handlers.FleetStatusHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Health probes and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authentication (trusted user selection, no credentials)
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Users
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")

	// Forklifts
	forkliftsAPI := r.PathPrefix("/api/forklifts").Subrouter()
	forkliftsAPI.HandleFunc("", forkliftHandler.ListForklifts).Methods("GET")
	forkliftsAPI.HandleFunc("", forkliftHandler.CreateForklift).Methods("POST")
	forkliftsAPI.HandleFunc("/status", fleetStatusHandler.GetFleetStatus).Methods("GET")
	forkliftsAPI.HandleFunc("/{id}", forkliftHandler.GetForklift).Methods("GET")
	forkliftsAPI.HandleFunc("/{id}/status", forkliftHandler.UpdateStatus).Methods("PATCH")

	// Checklist items
	checklistAPI := r.PathPrefix("/api/checklist-items").Subrouter()
	checklistAPI.HandleFunc("", checklistItemHandler.ListItems).Methods("GET")
	checklistAPI.HandleFunc("", checklistItemHandler.CreateItem).Methods("POST")
	checklistAPI.HandleFunc("/{id}", checklistItemHandler.GetItem).Methods("GET")
	checklistAPI.HandleFunc("/{id}", checklistItemHandler.DeactivateItem).Methods("DELETE")

	// Inspections
	inspectionsAPI := r.PathPrefix("/api/inspections").Subrouter()
	inspectionsAPI.HandleFunc("", inspectionHandler.ListInspections).Methods("GET")
	inspectionsAPI.HandleFunc("", inspectionHandler.RecordInspection).Methods("POST")
	inspectionsAPI.HandleFunc("/{id}", inspectionHandler.GetInspection).Methods("GET")

	// Reports
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.HandleFunc("/inspections.csv", reportHandler.InspectionHistoryCSV).Methods("GET")
	reportsAPI.HandleFunc("/fleet-status.pdf", reportHandler.FleetStatusPDF).Methods("GET")

	return r
}
