package main

import (
	"fmt"
	"net/http"

	"github.com/brightserv/ops-backend-go/internal/config"
	appHTTP "github.com/brightserv/ops-backend-go/internal/handler/http"
	"github.com/brightserv/ops-backend-go/internal/pkg/database"
	"github.com/brightserv/ops-backend-go/internal/pkg/jwt"
	"github.com/brightserv/ops-backend-go/internal/repository/postgresql"
	authService "github.com/brightserv/ops-backend-go/internal/service/auth"
	cashflowService "github.com/brightserv/ops-backend-go/internal/service/cashflow"
	chatService "github.com/brightserv/ops-backend-go/internal/service/chat"
	cleaningService "github.com/brightserv/ops-backend-go/internal/service/cleaning"
	clientService "github.com/brightserv/ops-backend-go/internal/service/client"
	employeeService "github.com/brightserv/ops-backend-go/internal/service/employee"
	reportService "github.com/brightserv/ops-backend-go/internal/service/report"
	siteService "github.com/brightserv/ops-backend-go/internal/service/site"
	taskService "github.com/brightserv/ops-backend-go/internal/service/task"
	workLocationService "github.com/brightserv/ops-backend-go/internal/service/worklocation"
	workRecordService "github.com/brightserv/ops-backend-go/internal/service/workrecord"
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

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	siteRepo := postgresql.NewSiteRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workLocationRepo := postgresql.NewWorkLocationRepository(db)
	workRecordRepo := postgresql.NewWorkRecordRepository(db)
	cashflowRepo := postgresql.NewCashflowRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	chatGroupRepo := postgresql.NewChatGroupRepository(db)
	chatMessageRepo := postgresql.NewChatMessageRepository(db)
	cleaningRepo := postgresql.NewCleaningEntryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService, refreshTokenRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	siteSvc := siteService.NewSiteService(siteRepo, clientRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	workLocationSvc := workLocationService.NewWorkLocationService(workLocationRepo, employeeRepo, siteRepo)
	workRecordSvc := workRecordService.NewWorkRecordService(workRecordRepo, workLocationRepo)
	cashflowSvc := cashflowService.NewRecordService(cashflowRepo, employeeRepo, clientRepo)
	taskSvc := taskService.NewTaskService(taskRepo)
	chatSvc := chatService.NewChatService(chatGroupRepo, chatMessageRepo)
	cleaningSvc := cleaningService.NewEntryService(cleaningRepo, siteRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, workRecordRepo, cashflowRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc),
		Client:       appHTTP.NewClientHandler(clientSvc),
		Site:         appHTTP.NewSiteHandler(siteSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		WorkLocation: appHTTP.NewWorkLocationHandler(workLocationSvc),
		WorkRecord:   appHTTP.NewWorkRecordHandler(workRecordSvc),
		Cashflow:     appHTTP.NewCashflowHandler(cashflowSvc),
		Task:         appHTTP.NewTaskHandler(taskSvc),
		Chat:         appHTTP.NewChatHandler(chatSvc),
		Cleaning:     appHTTP.NewCleaningHandler(cleaningSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
