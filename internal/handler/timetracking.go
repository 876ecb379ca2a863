package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

type clockInRequest struct {
	EmployeeID uint `json:"employee_id"`
}

type clockOutRequest struct {
	EmployeeID   uint   `json:"employee_id"`
	BreakMinutes int    `json:"break_minutes"`
	Notes        string `json:"notes"`
}

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req clockInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.timeTracking.ClockIn(req.EmployeeID, time.Now())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req clockOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	entry, err := h.timeTracking.ClockOut(req.EmployeeID, time.Now(), req.BreakMinutes, req.Notes)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// GetMonthOverview returns one employee's entries, summary and calendar grid
// for a month given as year and month query parameters.
func (h *Handler) GetMonthOverview(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryUint(r, "employee_id")
	if err != nil || employeeID == 0 {
		respondError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		respondError(w, http.StatusBadRequest, "invalid month")
		return
	}

	overview, err := h.timeTracking.Month(employeeID, year, time.Month(month))
	if err != nil {
		h.logger.WithError(err).Error("Failed to build month overview")
		respondError(w, http.StatusInternalServerError, "failed to build month overview")
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

func (h *Handler) ListTodayEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.timeTracking.Today(time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load entries")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
