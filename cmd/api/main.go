package main

import (
	"fmt"
	"net/http"

	"github.com/opl-logistica/backoffice-go/internal/config"
	appHTTP "github.com/opl-logistica/backoffice-go/internal/handler/http"
	"github.com/opl-logistica/backoffice-go/internal/pkg/database"
	"github.com/opl-logistica/backoffice-go/internal/pkg/jwt"
	"github.com/opl-logistica/backoffice-go/internal/repository/postgresql"
	authService "github.com/opl-logistica/backoffice-go/internal/service/auth"
	contractorService "github.com/opl-logistica/backoffice-go/internal/service/contractor"
	exportService "github.com/opl-logistica/backoffice-go/internal/service/export"
	parameterService "github.com/opl-logistica/backoffice-go/internal/service/parameter"
	payrollService "github.com/opl-logistica/backoffice-go/internal/service/payroll"
	settlementService "github.com/opl-logistica/backoffice-go/internal/service/settlement"
	userService "github.com/opl-logistica/backoffice-go/internal/service/user"
	workerService "github.com/opl-logistica/backoffice-go/internal/service/worker"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	parameterRepo := postgresql.NewParameterRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	contractorRepo := postgresql.NewContractorRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	userSvc := userService.NewUserService(userRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	parameterSvc := parameterService.NewParameterService(parameterRepo)
	settlementSvc := settlementService.NewSettlementService(settlementRepo, workerRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, workerRepo, parameterSvc, settlementSvc)
	contractorSvc := contractorService.NewContractorService(db, contractorRepo, workerRepo, settlementSvc)
	exportSvc := exportService.NewExportService(payrollRepo, contractorRepo, cfg.App.CompanyName)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	parameterHandler := appHTTP.NewParameterHandler(parameterSvc)
	settlementHandler := appHTTP.NewSettlementHandler(settlementSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, exportSvc)
	contractorHandler := appHTTP.NewContractorHandler(contractorSvc, exportSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		workerHandler,
		parameterHandler,
		settlementHandler,
		payrollHandler,
		contractorHandler,
		userHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
