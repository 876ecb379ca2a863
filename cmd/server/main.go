package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rawfaux/Haustechnik/internal/config"
	"github.com/Rawfaux/Haustechnik/internal/handler"
	"github.com/Rawfaux/Haustechnik/internal/repository"
	"github.com/Rawfaux/Haustechnik/internal/service"
	"github.com/Rawfaux/Haustechnik/pkg/notify"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetAppConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}
	objectRepo, err := repository.NewGormFacilityObjectRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create object repository")
	}
	templateRepo, err := repository.NewGormShiftTemplateRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create shift template repository")
	}
	shiftRepo, err := repository.NewGormShiftRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create shift repository")
	}
	absenceRepo, err := repository.NewGormAbsenceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create absence repository")
	}
	handoverRepo, err := repository.NewGormShiftHandoverRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create handover repository")
	}
	timeEntryRepo, err := repository.NewGormTimeEntryRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create time entry repository")
	}
	vehicleRepo, err := repository.NewGormVehicleRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create vehicle repository")
	}
	tripRepo, err := repository.NewGormTripRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create trip repository")
	}

	// Telegram notifications are optional.
	var notifier service.Notifier
	if cfg.TelegramToken != "" && cfg.AdminChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.AdminChatID)
		if err != nil {
			logrus.WithError(err).Warn("Failed to create Telegram notifier, notifications disabled")
		} else {
			notifier = tg
			logrus.Info("Telegram notifications enabled")
		}
	}

	employeeService := service.NewEmployeeService(employeeRepo)
	shiftPlanService := service.NewShiftPlanService(shiftRepo, templateRepo, absenceRepo, handoverRepo)
	absenceService := service.NewAbsenceService(absenceRepo, employeeRepo, notifier)
	timeTrackingService := service.NewTimeTrackingService(timeEntryRepo)
	tripLogService := service.NewTripLogService(tripRepo, vehicleRepo)
	exportService := service.NewExportService()

	h := handler.NewHandler(
		employeeService,
		shiftPlanService,
		absenceService,
		timeTrackingService,
		tripLogService,
		exportService,
		objectRepo,
		templateRepo,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("Server listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Server failed:", err)
		}
	}()

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.Infof("Error during shutdown: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
