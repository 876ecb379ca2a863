package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router wires every endpoint under /api.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/employees", h.ListEmployees).Methods(http.MethodGet)
	api.HandleFunc("/employees", h.CreateEmployee).Methods(http.MethodPost)
	api.HandleFunc("/employees/{id:[0-9]+}", h.GetEmployee).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id:[0-9]+}", h.UpdateEmployee).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id:[0-9]+}", h.DeactivateEmployee).Methods(http.MethodDelete)

	api.HandleFunc("/objects", h.ListObjects).Methods(http.MethodGet)
	api.HandleFunc("/objects", h.CreateObject).Methods(http.MethodPost)
	api.HandleFunc("/templates", h.ListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/templates", h.CreateTemplate).Methods(http.MethodPost)

	api.HandleFunc("/shiftplan/week", h.GetWeekPlan).Methods(http.MethodGet)
	api.HandleFunc("/shiftplan/week/export", h.ExportWeekPlan).Methods(http.MethodGet)
	api.HandleFunc("/shifts", h.CreateShifts).Methods(http.MethodPost)
	api.HandleFunc("/shifts", h.DeleteShifts).Methods(http.MethodDelete)
	api.HandleFunc("/handovers", h.CreateHandover).Methods(http.MethodPost)
	api.HandleFunc("/handovers/{id:[0-9]+}", h.DeleteHandover).Methods(http.MethodDelete)

	api.HandleFunc("/absences", h.SubmitAbsence).Methods(http.MethodPost)
	api.HandleFunc("/absences", h.ListAbsences).Methods(http.MethodGet)
	api.HandleFunc("/absences/pending", h.ListPendingAbsences).Methods(http.MethodGet)
	api.HandleFunc("/absences/{id:[0-9]+}/decision", h.DecideAbsence).Methods(http.MethodPost)
	api.HandleFunc("/absences/{id:[0-9]+}", h.DeleteAbsence).Methods(http.MethodDelete)

	api.HandleFunc("/timetracking/clock-in", h.ClockIn).Methods(http.MethodPost)
	api.HandleFunc("/timetracking/clock-out", h.ClockOut).Methods(http.MethodPost)
	api.HandleFunc("/timetracking/month", h.GetMonthOverview).Methods(http.MethodGet)
	api.HandleFunc("/timetracking/today", h.ListTodayEntries).Methods(http.MethodGet)

	api.HandleFunc("/vehicles", h.ListVehicles).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", h.CreateVehicle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{id:[0-9]+}/trips", h.ListVehicleTrips).Methods(http.MethodGet)
	api.HandleFunc("/trips/start", h.StartTrip).Methods(http.MethodPost)
	api.HandleFunc("/trips/{id:[0-9]+}/end", h.EndTrip).Methods(http.MethodPost)

	return r
}
