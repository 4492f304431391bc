package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stafftrack/hrops-backend-go/internal/config"
	appHTTP "github.com/stafftrack/hrops-backend-go/internal/handler/http"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/cron"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/database"
	"github.com/stafftrack/hrops-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/hrops-backend-go/internal/repository/postgresql"
	payrollService "github.com/stafftrack/hrops-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	weekOffRepo := postgresql.NewWeekOffRuleRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	errorLogRepo := postgresql.NewErrorLogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	payrollSvc := payrollService.NewPayrollService(
		db,
		userRepo,
		punchRepo,
		leaveRepo,
		holidayRepo,
		weekOffRepo,
		salaryRepo,
		payrollRepo,
		errorLogRepo,
	)

	if cfg.Cron.Enabled {
		checkInterval, err := time.ParseDuration(cfg.Cron.CheckInterval)
		if err != nil {
			log.Fatal("Invalid CRON_CHECK_INTERVAL: ", err)
		}

		scheduler := cron.NewScheduler()
		payrollJobs := cron.NewPayrollJobs(payrollSvc)
		payrollJobs.RegisterJobs(scheduler, checkInterval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	router := appHTTP.NewRouter(JWTService, payrollHandler, cfg.App.AllowedOrigins, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	if err := server.Close(); err != nil {
		fmt.Println("Server close error:", err)
	}
}
