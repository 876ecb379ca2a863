package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rawfaux/Haustechnik/internal/models"
)

type submitAbsenceRequest struct {
	EmployeeID uint   `json:"employee_id"`
	Type       string `json:"absence_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

type decideAbsenceRequest struct {
	Approve bool `json:"approve"`
}

func (h *Handler) SubmitAbsence(w http.ResponseWriter, r *http.Request) {
	var req submitAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid start_date")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	absence := models.Absence{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
	}
	if err := h.absences.Submit(&absence); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, absence)
}

func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	employeeID, err := queryUint(r, "employee_id")
	if err != nil || employeeID == 0 {
		respondError(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	absences, err := h.absences.ListByEmployee(employeeID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load absences")
		return
	}
	respondJSON(w, http.StatusOK, absences)
}

func (h *Handler) ListPendingAbsences(w http.ResponseWriter, r *http.Request) {
	absences, err := h.absences.ListPending()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load pending absences")
		return
	}
	respondJSON(w, http.StatusOK, absences)
}

func (h *Handler) DecideAbsence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid absence id")
		return
	}
	var req decideAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	absence, err := h.absences.Approve(id, req.Approve)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, absence)
}

func (h *Handler) DeleteAbsence(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid absence id")
		return
	}
	if err := h.absences.Delete(id); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
