package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/config"
	appHTTP "github.com/workpulse/workpulse-backend-go/internal/handler/http"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/workpulse-backend-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := postgresql.Migrate(context.Background(), db); err != nil {
		fmt.Println("Error applying migrations:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)

	svc := attendanceService.NewAttendanceService(db, employeeRepo, attendanceRepo, summaryRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(svc, cfg.Upload.MaxBytes)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Env:        cfg.App.Env,
		CORSOrigin: cfg.App.CORSOrigin,
		LogLevel:   cfg.SlogLevel(),
	}, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
