package service

import (
	"testing"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"
	"github.com/Rawfaux/Haustechnik/pkg/planner"
)

// In-memory repositories for service tests.

type fakeShiftRepo struct {
	shifts []models.Shift
	nextID uint
}

func (r *fakeShiftRepo) CreateBatch(shifts []models.Shift) error {
	for i := range shifts {
		r.nextID++
		shifts[i].ID = r.nextID
		r.shifts = append(r.shifts, shifts[i])
	}
	return nil
}

func (r *fakeShiftRepo) GetByID(id uint) (*models.Shift, error) {
	for i := range r.shifts {
		if r.shifts[i].ID == id {
			return &r.shifts[i], nil
		}
	}
	return nil, nil
}

func (r *fakeShiftRepo) GetWindow(start, end time.Time, objectID uint) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.shifts {
		if s.Status == models.ShiftStatusCancelled {
			continue
		}
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		if objectID != 0 && s.ObjectID != objectID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeShiftRepo) GetByEmployeeAndWindow(employeeID uint, start, end time.Time) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) DeleteByIDs(ids []uint) error {
	keep := r.shifts[:0]
	for _, s := range r.shifts {
		deleted := false
		for _, id := range ids {
			if s.ID == id {
				deleted = true
				break
			}
		}
		if !deleted {
			keep = append(keep, s)
		}
	}
	r.shifts = keep
	return nil
}

func (r *fakeShiftRepo) CancelByIDs(ids []uint) error {
	for i := range r.shifts {
		for _, id := range ids {
			if r.shifts[i].ID == id {
				r.shifts[i].Status = models.ShiftStatusCancelled
			}
		}
	}
	return nil
}

type fakeTemplateRepo struct {
	templates []models.ShiftTemplate
}

func (r *fakeTemplateRepo) Create(t *models.ShiftTemplate) error { r.templates = append(r.templates, *t); return nil }
func (r *fakeTemplateRepo) Update(t *models.ShiftTemplate) error { return nil }
func (r *fakeTemplateRepo) GetByID(id uint) (*models.ShiftTemplate, error) {
	for i := range r.templates {
		if r.templates[i].ID == id {
			return &r.templates[i], nil
		}
	}
	return nil, nil
}
func (r *fakeTemplateRepo) GetActive() ([]models.ShiftTemplate, error) { return r.templates, nil }
func (r *fakeTemplateRepo) Delete(id uint) error                       { return nil }

type fakeAbsenceRepo struct {
	absences []models.Absence
	nextID   uint
}

func (r *fakeAbsenceRepo) Create(a *models.Absence) error {
	r.nextID++
	a.ID = r.nextID
	r.absences = append(r.absences, *a)
	return nil
}

func (r *fakeAbsenceRepo) Update(a *models.Absence) error {
	for i := range r.absences {
		if r.absences[i].ID == a.ID {
			r.absences[i] = *a
		}
	}
	return nil
}

func (r *fakeAbsenceRepo) GetByID(id uint) (*models.Absence, error) {
	for i := range r.absences {
		if r.absences[i].ID == id {
			a := r.absences[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAbsenceRepo) GetByEmployeeID(employeeID uint) ([]models.Absence, error) {
	var out []models.Absence
	for _, a := range r.absences {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAbsenceRepo) GetPending() ([]models.Absence, error) {
	var out []models.Absence
	for _, a := range r.absences {
		if a.Status == models.AbsenceStatusPending {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAbsenceRepo) GetEffectiveWindow(start, end time.Time) ([]models.Absence, error) {
	var out []models.Absence
	for _, a := range r.absences {
		if !a.IsEffective() {
			continue
		}
		if a.StartDate.After(end) || a.EndDate.Before(start) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAbsenceRepo) Delete(id uint) error {
	keep := r.absences[:0]
	for _, a := range r.absences {
		if a.ID != id {
			keep = append(keep, a)
		}
	}
	r.absences = keep
	return nil
}

type fakeHandoverRepo struct {
	handovers []models.ShiftHandover
	nextID    uint
}

func (r *fakeHandoverRepo) Create(h *models.ShiftHandover) error {
	r.nextID++
	h.ID = r.nextID
	r.handovers = append(r.handovers, *h)
	return nil
}

func (r *fakeHandoverRepo) GetByID(id uint) (*models.ShiftHandover, error) {
	for i := range r.handovers {
		if r.handovers[i].ID == id {
			return &r.handovers[i], nil
		}
	}
	return nil, nil
}

func (r *fakeHandoverRepo) GetApprovedWindow(start, end time.Time) ([]models.ShiftHandover, error) {
	var out []models.ShiftHandover
	for _, h := range r.handovers {
		if h.Status != models.HandoverStatusApproved {
			continue
		}
		if h.StartDate.Before(start) || h.StartDate.After(end) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHandoverRepo) Delete(id uint) error { return nil }

type fakeEmployeeRepo struct {
	employees []models.Employee
	nextID    uint
}

func (r *fakeEmployeeRepo) Create(e *models.Employee) error {
	r.nextID++
	e.ID = r.nextID
	r.employees = append(r.employees, *e)
	return nil
}

func (r *fakeEmployeeRepo) Update(e *models.Employee) error {
	for i := range r.employees {
		if r.employees[i].ID == e.ID {
			r.employees[i] = *e
		}
	}
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id uint) (*models.Employee, error) {
	for i := range r.employees {
		if r.employees[i].ID == id {
			e := r.employees[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByPersonalNr(nr string) (*models.Employee, error) {
	for i := range r.employees {
		if r.employees[i].PersonalNr == nr {
			return &r.employees[i], nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetActive() ([]models.Employee, error) { return r.employees, nil }
func (r *fakeEmployeeRepo) GetAll() ([]models.Employee, error)    { return r.employees, nil }
func (r *fakeEmployeeRepo) Delete(id uint) error                  { return nil }

func date(y int, m time.Month, d int) time.Time {
	return planner.Date(y, m, d)
}

func newPlanService() (*ShiftPlanService, *fakeShiftRepo, *fakeAbsenceRepo, *fakeHandoverRepo) {
	shiftRepo := &fakeShiftRepo{}
	templateRepo := &fakeTemplateRepo{templates: []models.ShiftTemplate{
		{ID: 1, Name: "Tagschicht", StartTime: "08:00", EndTime: "16:00", IsActive: true},
		{ID: 2, Name: "Nachtschicht", StartTime: "22:00", EndTime: "06:00", IsActive: true},
	}}
	absenceRepo := &fakeAbsenceRepo{}
	handoverRepo := &fakeHandoverRepo{}
	return NewShiftPlanService(shiftRepo, templateRepo, absenceRepo, handoverRepo),
		shiftRepo, absenceRepo, handoverRepo
}

func TestCreateShiftsExpandsRange(t *testing.T) {
	svc, shiftRepo, _, _ := newPlanService()

	result, err := svc.CreateShifts(CreateShiftsRequest{
		TemplateID: 1,
		EmployeeID: 7,
		StartDate:  date(2024, time.March, 4),
		EndDate:    date(2024, time.March, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 3 {
		t.Errorf("created = %d, want 3", result.Created)
	}
	if len(shiftRepo.shifts) != 3 {
		t.Fatalf("stored %d shifts, want 3", len(shiftRepo.shifts))
	}
	for _, s := range shiftRepo.shifts {
		if s.StartTime != "08:00" || s.ShiftType != "Tagschicht" {
			t.Errorf("shift carries wrong template data: %+v", s)
		}
	}
}

func TestCreateShiftsBlockedByAbsence(t *testing.T) {
	svc, shiftRepo, absenceRepo, _ := newPlanService()
	absenceRepo.Create(&models.Absence{
		EmployeeID: 7,
		Type:       models.AbsenceTypeVacation,
		StartDate:  date(2024, time.March, 6),
		EndDate:    date(2024, time.March, 8),
		Status:     models.AbsenceStatusApproved,
	})

	result, err := svc.CreateShifts(CreateShiftsRequest{
		TemplateID: 1,
		EmployeeID: 7,
		StartDate:  date(2024, time.March, 4),
		EndDate:    date(2024, time.March, 6),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Conflict == nil {
		t.Fatal("expected a conflict")
	}
	if result.Created != 0 || len(shiftRepo.shifts) != 0 {
		t.Error("no shifts should have been created")
	}

	// Force overrides the warning.
	result, err = svc.CreateShifts(CreateShiftsRequest{
		TemplateID: 1,
		EmployeeID: 7,
		StartDate:  date(2024, time.March, 4),
		EndDate:    date(2024, time.March, 6),
		Force:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Created != 3 {
		t.Errorf("created = %d, want 3", result.Created)
	}
}

func TestWeekPlanAssembly(t *testing.T) {
	svc, shiftRepo, absenceRepo, handoverRepo := newPlanService()

	// Employee 1: Mon-Wed day shifts, gap, Friday. Employee 2: Monday night.
	for _, d := range []int{4, 5, 6, 8} {
		shiftRepo.CreateBatch([]models.Shift{{
			EmployeeID: 1,
			Date:       date(2024, time.March, d),
			StartTime:  "08:00",
			EndTime:    "16:00",
			Status:     models.ShiftStatusScheduled,
		}})
	}
	shiftRepo.CreateBatch([]models.Shift{{
		EmployeeID: 2,
		Date:       date(2024, time.March, 4),
		StartTime:  "22:00",
		EndTime:    "06:00",
		Status:     models.ShiftStatusScheduled,
	}})

	// Sick leave touching the first range's last day.
	absenceRepo.Create(&models.Absence{
		EmployeeID: 1,
		Type:       models.AbsenceTypeSick,
		StartDate:  date(2024, time.March, 6),
		EndDate:    date(2024, time.March, 7),
		Status:     models.AbsenceStatusConfirmed,
	})

	// A handover labelled with the ASCII spelling must land on Nachtschicht.
	handoverRepo.Create(&models.ShiftHandover{
		ShiftType:             "nachtschicht tausch",
		OriginalEmployeeID:    2,
		ReplacementEmployeeID: 3,
		StartDate:             date(2024, time.March, 5),
		EndDate:               date(2024, time.March, 6),
		Reason:                models.HandoverReasonSwap,
		Status:                models.HandoverStatusApproved,
	})

	plan, err := svc.WeekPlan(date(2024, time.March, 6), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Window.Week != 10 {
		t.Errorf("week = %d, want 10", plan.Window.Week)
	}
	if len(plan.Groups) != 2 {
		t.Fatalf("expected 2 template groups, got %d", len(plan.Groups))
	}

	var day, night *TemplateWeek
	for i := range plan.Groups {
		switch plan.Groups[i].Template.Name {
		case "Tagschicht":
			day = &plan.Groups[i]
		case "Nachtschicht":
			night = &plan.Groups[i]
		}
	}
	if day == nil || night == nil {
		t.Fatal("missing template group")
	}

	if len(day.Ranges) != 2 {
		t.Fatalf("day shift: expected 2 ranges, got %d", len(day.Ranges))
	}
	first, second := day.Ranges[0], day.Ranges[1]
	if !first.StartDate.Equal(date(2024, time.March, 4)) || !first.EndDate.Equal(date(2024, time.March, 6)) {
		t.Errorf("first range %v-%v", first.StartDate, first.EndDate)
	}
	if first.Conflict == nil || first.Conflict.Type != models.AbsenceTypeSick {
		t.Errorf("first range should be flagged with the sick leave, got %v", first.Conflict)
	}
	if second.Conflict != nil {
		t.Errorf("second range should not be flagged, got %v", second.Conflict)
	}
	if len(first.ShiftIDs) != 3 || len(second.ShiftIDs) != 1 {
		t.Errorf("member ids wrong: %d, %d", len(first.ShiftIDs), len(second.ShiftIDs))
	}

	if len(night.Handovers) != 1 {
		t.Errorf("night shift: expected 1 handover, got %d", len(night.Handovers))
	}
	if len(day.Handovers) != 0 {
		t.Errorf("day shift: expected no handovers, got %d", len(day.Handovers))
	}

	if got := len(plan.AbsencesByType[models.AbsenceTypeSick]); got != 1 {
		t.Errorf("expected 1 sick absence in week view, got %d", got)
	}
}

func TestDeleteRangeRemovesAllMembers(t *testing.T) {
	svc, shiftRepo, _, _ := newPlanService()
	svc.CreateShifts(CreateShiftsRequest{
		TemplateID: 1,
		EmployeeID: 1,
		StartDate:  date(2024, time.March, 4),
		EndDate:    date(2024, time.March, 6),
	})

	plan, err := svc.WeekPlan(date(2024, time.March, 4), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []uint
	for _, g := range plan.Groups {
		for _, rng := range g.Ranges {
			ids = append(ids, rng.ShiftIDs...)
		}
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 member ids, got %d", len(ids))
	}
	if err := svc.DeleteRange(ids); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shiftRepo.shifts) != 0 {
		t.Errorf("expected all member rows deleted, %d left", len(shiftRepo.shifts))
	}
}
