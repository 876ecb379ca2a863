package service

import (
	"fmt"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"
	"github.com/Rawfaux/Haustechnik/internal/repository"
	"github.com/Rawfaux/Haustechnik/pkg/planner"

	"github.com/sirupsen/logrus"
)

// WeekPlan is the assembled week view: per template the compacted employee
// ranges plus handover overlays, and the week's absences grouped by type.
type WeekPlan struct {
	Window         planner.WeekWindow          `json:"window"`
	Groups         []TemplateWeek              `json:"groups"`
	AbsencesByType map[string][]models.Absence `json:"absences_by_type"`
}

type TemplateWeek struct {
	Template  models.ShiftTemplate   `json:"template"`
	Ranges    []PlannedRange         `json:"ranges"`
	Handovers []models.ShiftHandover `json:"handovers"`
}

// PlannedRange is one employee's contiguous run of shifts, flagged with an
// overlapping absence when one exists so the view can strike it through.
type PlannedRange struct {
	Employee  models.Employee `json:"employee"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	ShiftIDs  []uint          `json:"shift_ids"`
	Conflict  *models.Absence `json:"conflict,omitempty"`
}

type CreateShiftsRequest struct {
	TemplateID uint      `json:"template_id"`
	EmployeeID uint      `json:"employee_id"`
	ObjectID   uint      `json:"object_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	// Force creates the shifts even when the employee is absent in the
	// target range. Without it a conflict aborts the creation so the caller
	// can ask for confirmation.
	Force bool `json:"force"`
}

type CreateShiftsResult struct {
	Created  int             `json:"created"`
	Conflict *models.Absence `json:"conflict,omitempty"`
}

type ShiftPlanService struct {
	shiftRepo    repository.ShiftRepository
	templateRepo repository.ShiftTemplateRepository
	absenceRepo  repository.AbsenceRepository
	handoverRepo repository.ShiftHandoverRepository
	logger       *logrus.Logger
}

func NewShiftPlanService(
	shiftRepo repository.ShiftRepository,
	templateRepo repository.ShiftTemplateRepository,
	absenceRepo repository.AbsenceRepository,
	handoverRepo repository.ShiftHandoverRepository,
) *ShiftPlanService {
	return &ShiftPlanService{
		shiftRepo:    shiftRepo,
		templateRepo: templateRepo,
		absenceRepo:  absenceRepo,
		handoverRepo: handoverRepo,
		logger:       logrus.New(),
	}
}

// WeekPlan recomputes the full week view for the week containing ref.
// Everything is derived fresh from the stored daily rows, nothing is cached.
func (s *ShiftPlanService) WeekPlan(ref time.Time, objectID uint) (*WeekPlan, error) {
	window := planner.WeekOf(ref)

	templates, err := s.templateRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	shifts, err := s.shiftRepo.GetWindow(window.Monday, window.Sunday, objectID)
	if err != nil {
		return nil, fmt.Errorf("loading shifts: %w", err)
	}
	handovers, err := s.handoverRepo.GetApprovedWindow(window.Monday, window.Sunday)
	if err != nil {
		return nil, fmt.Errorf("loading handovers: %w", err)
	}
	absences, err := s.absenceRepo.GetEffectiveWindow(window.Monday, window.Sunday)
	if err != nil {
		return nil, fmt.Errorf("loading absences: %w", err)
	}

	records := make([]planner.Record, 0, len(shifts))
	shiftsByID := make(map[uint]models.Shift, len(shifts))
	for _, shift := range shifts {
		records = append(records, shift.PlannerRecord())
		shiftsByID[shift.ID] = shift
	}

	groups, err := planner.GroupByTemplate(records, models.PlannerTemplates(templates))
	if err != nil {
		return nil, fmt.Errorf("grouping shifts: %w", err)
	}

	templatesByID := make(map[uint]models.ShiftTemplate, len(templates))
	for _, t := range templates {
		templatesByID[t.ID] = t
	}
	absencesByID := make(map[uint]models.Absence, len(absences))
	for _, a := range absences {
		absencesByID[a.ID] = a
	}
	spans := models.AbsenceSpans(absences)

	plan := &WeekPlan{
		Window:         window,
		AbsencesByType: groupAbsencesByType(absences),
	}
	for _, group := range groups {
		week := TemplateWeek{
			Template:  templatesByID[group.Template.ID],
			Ranges:    make([]PlannedRange, 0, len(group.Ranges)),
			Handovers: handoversForTemplate(group.Template, handovers),
		}
		for _, rng := range group.Ranges {
			planned, err := buildPlannedRange(rng, shiftsByID, spans, absencesByID)
			if err != nil {
				return nil, err
			}
			week.Ranges = append(week.Ranges, planned)
		}
		plan.Groups = append(plan.Groups, week)
	}
	return plan, nil
}

func buildPlannedRange(
	rng planner.Range,
	shiftsByID map[uint]models.Shift,
	spans []planner.AbsenceSpan,
	absencesByID map[uint]models.Absence,
) (PlannedRange, error) {
	planned := PlannedRange{
		StartDate: rng.Start,
		EndDate:   rng.End,
		ShiftIDs:  make([]uint, 0, len(rng.Records)),
	}
	for _, rec := range rng.Records {
		planned.ShiftIDs = append(planned.ShiftIDs, rec.RefID)
	}
	if first, ok := shiftsByID[rng.Records[0].RefID]; ok {
		planned.Employee = first.Employee
	}

	hit, err := planner.FindOverlap(rng.OwnerID, rng.Start, rng.End, spans)
	if err != nil {
		return PlannedRange{}, fmt.Errorf("overlap check: %w", err)
	}
	if hit != nil {
		if absence, ok := absencesByID[hit.RefID]; ok {
			planned.Conflict = &absence
		}
	}
	return planned, nil
}

// handoversForTemplate picks the handovers whose free-text shift label
// matches the template, using the classifier's synonym rules.
func handoversForTemplate(template planner.Template, handovers []models.ShiftHandover) []models.ShiftHandover {
	matched := make([]models.ShiftHandover, 0)
	single := []planner.Template{template}
	for _, h := range handovers {
		if planner.MatchLabel(h.ShiftType, single) != nil {
			matched = append(matched, h)
		}
	}
	return matched
}

func groupAbsencesByType(absences []models.Absence) map[string][]models.Absence {
	grouped := make(map[string][]models.Absence)
	for _, a := range absences {
		grouped[a.Type] = append(grouped[a.Type], a)
	}
	return grouped
}

// CreateShifts expands a date range into one shift row per day for the given
// template. When the employee has an effective absence in the range and Force
// is unset, no rows are written and the conflict is returned instead.
func (s *ShiftPlanService) CreateShifts(req CreateShiftsRequest) (*CreateShiftsResult, error) {
	if req.EmployeeID == 0 {
		return nil, fmt.Errorf("employee is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("end date before start date")
	}

	template, err := s.templateRepo.GetByID(req.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("shift template %d not found", req.TemplateID)
	}

	absences, err := s.absenceRepo.GetEffectiveWindow(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	conflict, err := planner.FindOverlap(req.EmployeeID, req.StartDate, req.EndDate, models.AbsenceSpans(absences))
	if err != nil {
		return nil, err
	}
	if conflict != nil && !req.Force {
		s.logger.WithFields(logrus.Fields{
			"employee_id":  req.EmployeeID,
			"absence_type": conflict.Type,
		}).Info("Shift creation blocked by absence conflict")
		hit := models.Absence{
			ID:         conflict.RefID,
			EmployeeID: conflict.OwnerID,
			Type:       conflict.Type,
			StartDate:  conflict.Start,
			EndDate:    conflict.End,
			Status:     conflict.Status,
		}
		for _, a := range absences {
			if a.ID == conflict.RefID {
				hit = a
				break
			}
		}
		return &CreateShiftsResult{Conflict: &hit}, nil
	}

	var shifts []models.Shift
	start := planner.DateOnly(req.StartDate)
	end := planner.DateOnly(req.EndDate)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		shifts = append(shifts, models.Shift{
			EmployeeID: req.EmployeeID,
			ObjectID:   req.ObjectID,
			Date:       d,
			StartTime:  template.StartTime,
			EndTime:    template.EndTime,
			ShiftType:  template.Name,
			Status:     models.ShiftStatusScheduled,
			Notes:      template.Name,
		})
	}
	if err := s.shiftRepo.CreateBatch(shifts); err != nil {
		s.logger.WithError(err).Error("Failed to create shifts")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": req.EmployeeID,
		"template":    template.Name,
		"count":       len(shifts),
	}).Info("Shifts created")
	return &CreateShiftsResult{Created: len(shifts)}, nil
}

// DeleteRange removes every daily row of a compacted range.
func (s *ShiftPlanService) DeleteRange(shiftIDs []uint) error {
	if len(shiftIDs) == 0 {
		return fmt.Errorf("no shifts given")
	}
	if err := s.shiftRepo.DeleteByIDs(shiftIDs); err != nil {
		s.logger.WithError(err).Error("Failed to delete shift range")
		return err
	}
	s.logger.WithField("count", len(shiftIDs)).Info("Shift range deleted")
	return nil
}

// CreateHandover records an approved substitution for a template's shifts.
func (s *ShiftPlanService) CreateHandover(handover *models.ShiftHandover) error {
	if handover.Status == "" {
		handover.Status = models.HandoverStatusApproved
	}
	if !handover.IsValid() {
		return fmt.Errorf("invalid handover data")
	}
	if err := s.handoverRepo.Create(handover); err != nil {
		s.logger.WithError(err).Error("Failed to create handover")
		return err
	}
	s.logger.WithFields(logrus.Fields{
		"original":    handover.OriginalEmployeeID,
		"replacement": handover.ReplacementEmployeeID,
		"shift_type":  handover.ShiftType,
	}).Info("Handover created")
	return nil
}

func (s *ShiftPlanService) DeleteHandover(id uint) error {
	return s.handoverRepo.Delete(id)
}
