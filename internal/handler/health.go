package handler

import (
	"net/http"

	"brocki-scanner-go/internal/model"
)

// ServiceName GET / 返回的服务名
const ServiceName = "Brocki Scanner API"

// Root GET /
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "OK", Service: ServiceName})
}

// Health GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "OK"})
}
