package service

import (
	"fmt"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/models"
	"github.com/Rawfaux/Haustechnik/internal/repository"
	"github.com/Rawfaux/Haustechnik/pkg/planner"

	"github.com/sirupsen/logrus"
)

// VehicleOverview combines a vehicle with its logbook statistics.
type VehicleOverview struct {
	Vehicle models.Vehicle       `json:"vehicle"`
	Stats   repository.TripStats `json:"stats"`
}

type TripLogService struct {
	tripRepo    repository.TripRepository
	vehicleRepo repository.VehicleRepository
	logger      *logrus.Logger
}

func NewTripLogService(
	tripRepo repository.TripRepository,
	vehicleRepo repository.VehicleRepository,
) *TripLogService {
	return &TripLogService{
		tripRepo:    tripRepo,
		vehicleRepo: vehicleRepo,
		logger:      logrus.New(),
	}
}

// StartTrip opens a trip at the vehicle's current odometer reading. Only one
// trip per vehicle may be active.
func (s *TripLogService) StartTrip(vehicleID, driverID uint, purpose, startPlace string) (*models.Trip, error) {
	vehicle, err := s.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %d not found", vehicleID)
	}
	active, err := s.tripRepo.GetActiveByVehicleID(vehicleID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("vehicle %s has an active trip", vehicle.LicensePlate)
	}

	trip := &models.Trip{
		VehicleID:  vehicleID,
		DriverID:   driverID,
		Date:       planner.DateOnly(time.Now()),
		StartKm:    vehicle.OdometerKm,
		Purpose:    purpose,
		StartPlace: startPlace,
		Status:     models.TripStatusActive,
	}
	if !trip.IsValid() {
		return nil, fmt.Errorf("invalid trip data")
	}
	if err := s.tripRepo.Create(trip); err != nil {
		s.logger.WithError(err).Error("Failed to start trip")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"vehicle": vehicle.LicensePlate,
		"driver":  driverID,
		"km":      trip.StartKm,
	}).Info("Trip started")
	return trip, nil
}

// EndTrip completes a trip with the end odometer reading and advances the
// vehicle's odometer. The end reading must exceed the start reading.
func (s *TripLogService) EndTrip(tripID uint, endKm float64, endPlace string) (*models.Trip, error) {
	trip, err := s.tripRepo.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %d not found", tripID)
	}
	if !trip.IsActive() {
		return nil, fmt.Errorf("trip %d is not active", tripID)
	}
	if endKm <= trip.StartKm {
		return nil, fmt.Errorf("end km %.1f must be greater than start km %.1f", endKm, trip.StartKm)
	}

	trip.EndKm = &endKm
	trip.EndPlace = endPlace
	trip.Status = models.TripStatusCompleted
	if err := s.tripRepo.Update(trip); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(trip.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle != nil {
		vehicle.OdometerKm = endKm
		if err := s.vehicleRepo.Update(vehicle); err != nil {
			return nil, err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"trip_id":  trip.ID,
		"distance": trip.DistanceKm(),
	}).Info("Trip completed")
	return trip, nil
}

func (s *TripLogService) ListTrips(vehicleID uint, limit int) ([]models.Trip, error) {
	return s.tripRepo.GetByVehicleID(vehicleID, limit)
}

// Vehicles lists active vehicles with their logbook statistics.
func (s *TripLogService) Vehicles() ([]VehicleOverview, error) {
	vehicles, err := s.vehicleRepo.GetActive()
	if err != nil {
		return nil, err
	}
	overviews := make([]VehicleOverview, 0, len(vehicles))
	for _, v := range vehicles {
		stats, err := s.tripRepo.GetStatsByVehicleID(v.ID)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, VehicleOverview{Vehicle: v, Stats: *stats})
	}
	return overviews, nil
}

func (s *TripLogService) CreateVehicle(vehicle *models.Vehicle) error {
	if !vehicle.IsValid() {
		return fmt.Errorf("invalid vehicle data")
	}
	return s.vehicleRepo.Create(vehicle)
}
