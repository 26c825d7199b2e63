package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "villagefi-lending-pool/internal/adapter/http"
	"villagefi-lending-pool/internal/adapter/middleware"
	"villagefi-lending-pool/internal/adapter/repository/mysql"
	"villagefi-lending-pool/internal/config"
	poolDomain "villagefi-lending-pool/internal/domain/pool"
	"villagefi-lending-pool/internal/infrastructure/cache"
	"villagefi-lending-pool/internal/infrastructure/db"
	adminuc "villagefi-lending-pool/internal/usecase/admin"
	loanuc "villagefi-lending-pool/internal/usecase/loan"
	pooluc "villagefi-lending-pool/internal/usecase/pool"
	repuc "villagefi-lending-pool/internal/usecase/reputation"
	"villagefi-lending-pool/pkg/chainclock"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql open", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// seed the pool + config singletons on first boot
	poolRepo := mysql.NewPoolRepository(gdb)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = poolRepo.EnsureDefaults(ctx, poolDomain.Config{
		MinReputation:      cfg.MinReputation,
		MaxLoanAmount:      cfg.MaxLoanAmount,
		LoanDurationBlocks: cfg.LoanDurationBlocks,
	})
	cancel()
	if err != nil {
		logger.Fatal("seed defaults", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis open", zap.Error(err))
	}

	clock := chainclock.NewInterval(cfg.Genesis(), cfg.BlockInterval())
	u := mysql.NewGormUoW(gdb)

	poolUC := pooluc.NewUsecase(u, clock, logger)
	repUC := repuc.NewUsecase(u, clock, logger)
	loanUC := loanuc.NewUsecase(u, clock, logger)
	adminUC := adminuc.NewUsecase(u, poolUC, cfg.OwnerPrincipal, logger)

	h := httpadp.NewHandler(clock)
	poolH := httpadp.NewPoolHandler(poolUC)
	repH := httpadp.NewReputationHandler(repUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	adminH := httpadp.NewAdminHandler(adminUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	principal := middleware.Principal()
	idemp := middleware.Idempotency(rdb, cfg.IdempTTL())

	// routes
	e.GET("/health", h.Health)

	e.GET("/pool/balance", poolH.Balance)
	e.GET("/pool/contributors/:principal", poolH.ContributorInfo)
	e.POST("/pool/contributions", poolH.Contribute, principal, idemp)

	e.GET("/reputation/interest-rate", repH.InterestRate)
	e.GET("/reputation/:principal", repH.Get)
	e.POST("/reputation/votes", repH.Vote, principal, idemp)

	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.GET("/loans/:loan_id/overdue", loanH.IsOverdue)
	e.POST("/loans", loanH.RequestLoan, principal, idemp)
	e.POST("/loans/:loan_id/repayment", loanH.RepayLoan, principal, idemp)
	e.POST("/loans/:loan_id/default", loanH.MarkDefault, principal, idemp)

	e.PUT("/admin/min-reputation", adminH.SetMinReputation, principal, idemp)
	e.PUT("/admin/max-loan-amount", adminH.SetMaxLoanAmount, principal, idemp)
	e.POST("/admin/withdrawals", adminH.EmergencyWithdraw, principal, idemp)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
