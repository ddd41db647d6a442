package main

import (
	"fmt"
	"net/http"

	"github.com/sejin-enc/laborcost-backend-go/internal/config"
	appHTTP "github.com/sejin-enc/laborcost-backend-go/internal/handler/http"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/database"
	"github.com/sejin-enc/laborcost-backend-go/internal/pkg/jwt"
	"github.com/sejin-enc/laborcost-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sejin-enc/laborcost-backend-go/internal/service/attendance"
	invoiceService "github.com/sejin-enc/laborcost-backend-go/internal/service/invoice"
	payrollService "github.com/sejin-enc/laborcost-backend-go/internal/service/payroll"
	registryService "github.com/sejin-enc/laborcost-backend-go/internal/service/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	entryRepo := postgresql.NewAttendanceRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	taxPolicyRepo := postgresql.NewTaxPolicyRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	attendanceSvc := attendanceService.NewAttendanceService(entryRepo, siteRepo)
	registrySvc := registryService.NewRegistryService(workerRepo, siteRepo)
	payrollSvc := payrollService.NewPayrollService(entryRepo, taxPolicyRepo, deductionRepo, workerRepo)
	invoiceSvc := invoiceService.NewInvoiceService(payrollSvc, workerRepo, siteRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)
	registryHandler := appHTTP.NewRegistryHandler(registrySvc)

	router := appHTTP.NewRouter(cfg, jwtService, attendanceHandler, payrollHandler, invoiceHandler, registryHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
