package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/repository"
	"github.com/Rawfaux/Haustechnik/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handler bundles the HTTP endpoints over the domain services.
type Handler struct {
	employees    *service.EmployeeService
	shiftPlan    *service.ShiftPlanService
	absences     *service.AbsenceService
	timeTracking *service.TimeTrackingService
	tripLog      *service.TripLogService
	export       *service.ExportService
	objectRepo   repository.FacilityObjectRepository
	templateRepo repository.ShiftTemplateRepository
	logger       *logrus.Logger
}

func NewHandler(
	employees *service.EmployeeService,
	shiftPlan *service.ShiftPlanService,
	absences *service.AbsenceService,
	timeTracking *service.TimeTrackingService,
	tripLog *service.TripLogService,
	export *service.ExportService,
	objectRepo repository.FacilityObjectRepository,
	templateRepo repository.ShiftTemplateRepository,
) *Handler {
	return &Handler{
		employees:    employees,
		shiftPlan:    shiftPlan,
		absences:     absences,
		timeTracking: timeTracking,
		tripLog:      tripLog,
		export:       export,
		objectRepo:   objectRepo,
		templateRepo: templateRepo,
		logger:       logrus.New(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// parseDate reads a "YYYY-MM-DD" value.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// pathID reads the {id} route variable.
func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// queryUint reads an optional numeric query parameter, zero when absent.
func queryUint(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	return uint(v), err
}

// queryDate reads an optional date query parameter, falling back to today.
func queryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Now(), nil
	}
	return parseDate(raw)
}
