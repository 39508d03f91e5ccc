// Package service contains the service layer for the Employee Directory API
package service

import (
	"context"
	"time"

	"github.com/dealsdray/empdirapi/internal/config"
	"github.com/dealsdray/empdirapi/internal/repository"
	"github.com/dealsdray/empdirapi/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService is the service for the cron jobs
type CronService struct {
	cfg             *config.Config
	c               *cron.Cron
	accountRepo     *repository.AccountRepository
	employeeService *EmployeeService
}

// NewCronService creates a new CronService
func NewCronService(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *CronService {
	return &CronService{
		cfg:             cfg,
		c:               cron.New(),
		accountRepo:     repository.NewAccountRepository(db),
		employeeService: NewEmployeeService(db, redisClient),
	}
}

// Start starts the cron service
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	// ------------------------------------------------------------
	// Add your SCHEDULED jobs here
	// ------------------------------------------------------------
	cs.addScheduledJob("Directory STATS Job", cs.directoryStatsJob, "0 * * * *") // Hourly

	// ------------------------------------------------------------
	// Add your STARTUP jobs here
	// ------------------------------------------------------------
	cs.addStartupJob("Employee CACHE WARM Job", cs.cacheWarmJob, 2*time.Second)
	cs.addStartupJob("Directory STATS Job", cs.directoryStatsJob, 5*time.Second)
	// ------------------------------------------------------------

	cs.c.Start()
}

// addStartupJob adds a startup job to the cron service
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("STARTED STARTUP job", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED STARTUP job", zaplogger.Fields{
			"job": name,
		})
	}()
	zaplogger.Info("QUEUED STARTUP job", zaplogger.Fields{
		"job": name,
	})
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("STARTED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
	})
	if err != nil {
		zaplogger.Error("FAILED TO QUEUE SCHEDULED JOB", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("QUEUED SCHEDULED job", zaplogger.Fields{
		"job": name,
	})
}

// directoryStatsJob logs account and employee counts
func (cs *CronService) directoryStatsJob() {
	accounts, err := cs.accountRepo.CountAccounts()
	if err != nil {
		zaplogger.Error("failed to count accounts", zaplogger.Fields{"error": err.Error()})
		return
	}

	employees, err := cs.employeeService.CountEmployees()
	if err != nil {
		zaplogger.Error("failed to count employees", zaplogger.Fields{"error": err.Error()})
		return
	}

	zaplogger.Info("directory stats", zaplogger.Fields{
		"accounts":  accounts,
		"employees": employees,
	})
}

// cacheWarmJob primes the employee list cache
func (cs *CronService) cacheWarmJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := cs.employeeService.GetAllEmployees(ctx); err != nil {
		zaplogger.Error("failed to warm employee list cache", zaplogger.Fields{"error": err.Error()})
	}
}
