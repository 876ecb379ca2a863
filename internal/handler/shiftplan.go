package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Rawfaux/Haustechnik/internal/models"
	"github.com/Rawfaux/Haustechnik/internal/service"
)

type createShiftsRequest struct {
	TemplateID uint   `json:"template_id"`
	EmployeeID uint   `json:"employee_id"`
	ObjectID   uint   `json:"object_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Force      bool   `json:"force"`
}

type deleteShiftsRequest struct {
	ShiftIDs []uint `json:"shift_ids"`
}

type createHandoverRequest struct {
	ShiftType             string `json:"shift_type"`
	ObjectID              *uint  `json:"object_id"`
	OriginalEmployeeID    uint   `json:"original_employee_id"`
	ReplacementEmployeeID uint   `json:"replacement_employee_id"`
	StartDate             string `json:"handover_date"`
	EndDate               string `json:"end_date"`
	Reason                string `json:"reason"`
	ReasonDetails         string `json:"reason_details"`
}

// GetWeekPlan returns the assembled week view around the date query
// parameter (default: today), optionally filtered by object.
func (h *Handler) GetWeekPlan(w http.ResponseWriter, r *http.Request) {
	ref, err := queryDate(r, "date")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}
	objectID, err := queryUint(r, "object_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid object_id")
		return
	}

	plan, err := h.shiftPlan.WeekPlan(ref, objectID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build week plan")
		respondError(w, http.StatusInternalServerError, "failed to build week plan")
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// CreateShifts creates one shift row per day of the requested range. A 409
// with the conflicting absence is returned when the employee is absent and
// force is unset.
func (h *Handler) CreateShifts(w http.ResponseWriter, r *http.Request) {
	var req createShiftsRequest
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

	result, err := h.shiftPlan.CreateShifts(service.CreateShiftsRequest{
		TemplateID: req.TemplateID,
		EmployeeID: req.EmployeeID,
		ObjectID:   req.ObjectID,
		StartDate:  start,
		EndDate:    end,
		Force:      req.Force,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if result.Conflict != nil {
		respondJSON(w, http.StatusConflict, result)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (h *Handler) DeleteShifts(w http.ResponseWriter, r *http.Request) {
	var req deleteShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.shiftPlan.DeleteRange(req.ShiftIDs); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) CreateHandover(w http.ResponseWriter, r *http.Request) {
	var req createHandoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid handover_date")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid end_date")
		return
	}

	handover := models.ShiftHandover{
		ShiftType:             req.ShiftType,
		ObjectID:              req.ObjectID,
		OriginalEmployeeID:    req.OriginalEmployeeID,
		ReplacementEmployeeID: req.ReplacementEmployeeID,
		StartDate:             start,
		EndDate:               end,
		Reason:                req.Reason,
		ReasonDetails:         req.ReasonDetails,
	}
	if err := h.shiftPlan.CreateHandover(&handover); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, handover)
}

func (h *Handler) DeleteHandover(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid handover id")
		return
	}
	if err := h.shiftPlan.DeleteHandover(id); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ExportWeekPlan streams the week plan as an .xlsx download.
func (h *Handler) ExportWeekPlan(w http.ResponseWriter, r *http.Request) {
	ref, err := queryDate(r, "date")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}
	objectID, err := queryUint(r, "object_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid object_id")
		return
	}

	plan, err := h.shiftPlan.WeekPlan(ref, objectID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to build week plan")
		return
	}
	workbook, err := h.export.WeekPlanWorkbook(plan)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render workbook")
		respondError(w, http.StatusInternalServerError, "failed to render workbook")
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("schichtplan_kw%02d.xlsx", plan.Window.Week)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := workbook.Write(w); err != nil {
		h.logger.WithError(err).Error("Failed to write workbook")
	}
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateRepo.GetActive()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load templates")
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var template models.ShiftTemplate
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	template.IsActive = true
	if !template.IsValid() {
		respondError(w, http.StatusBadRequest, "name, start_time and end_time are required")
		return
	}
	if err := h.templateRepo.Create(&template); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create template")
		return
	}
	respondJSON(w, http.StatusCreated, template)
}

func (h *Handler) ListObjects(w http.ResponseWriter, r *http.Request) {
	objects, err := h.objectRepo.GetActive()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load objects")
		return
	}
	respondJSON(w, http.StatusOK, objects)
}

func (h *Handler) CreateObject(w http.ResponseWriter, r *http.Request) {
	var object models.FacilityObject
	if err := json.NewDecoder(r.Body).Decode(&object); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	object.IsActive = true
	if !object.IsValid() {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.objectRepo.Create(&object); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create object")
		return
	}
	respondJSON(w, http.StatusCreated, object)
}
