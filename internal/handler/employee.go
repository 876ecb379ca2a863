package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rawfaux/Haustechnik/internal/models"
)

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var (
		employees []models.Employee
		err       error
	)
	if r.URL.Query().Get("all") == "1" {
		employees, err = h.employees.ListAll()
	} else {
		employees, err = h.employees.ListActive()
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to list employees")
		respondError(w, http.StatusInternalServerError, "failed to load employees")
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.employees.Create(&employee); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, employee)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	employee, err := h.employees.GetByID(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	if employee == nil {
		respondError(w, http.StatusNotFound, "employee not found")
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	employee.ID = id
	if err := h.employees.Update(&employee); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *Handler) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	if err := h.employees.Deactivate(id); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
