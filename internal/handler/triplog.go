package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rawfaux/Haustechnik/internal/models"
)

type startTripRequest struct {
	VehicleID     uint   `json:"vehicle_id"`
	DriverID      uint   `json:"driver_id"`
	Purpose       string `json:"purpose"`
	StartLocation string `json:"start_location"`
}

type endTripRequest struct {
	EndKm       float64 `json:"end_km"`
	EndLocation string  `json:"end_location"`
}

func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.tripLog.Vehicles()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load vehicles")
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	vehicle.IsActive = true
	if err := h.tripLog.CreateVehicle(&vehicle); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *Handler) ListVehicleTrips(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vehicle id")
		return
	}
	trips, err := h.tripLog.ListTrips(id, 100)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load trips")
		return
	}
	respondJSON(w, http.StatusOK, trips)
}

func (h *Handler) StartTrip(w http.ResponseWriter, r *http.Request) {
	var req startTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	trip, err := h.tripLog.StartTrip(req.VehicleID, req.DriverID, req.Purpose, req.StartLocation)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

func (h *Handler) EndTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid trip id")
		return
	}
	var req endTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	trip, err := h.tripLog.EndTrip(id, req.EndKm, req.EndLocation)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, trip)
}
