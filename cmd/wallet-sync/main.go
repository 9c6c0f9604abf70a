package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/database/postgres"
	financeRepository "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/repository"
	financeService "github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance/service"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/log"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/utils"
	"github.com/joho/godotenv"
)

// wallet-sync recomputes every wallet balance from its transactions and
// exits. A non-zero status means at least one wallet could not be checked.
func main() {
	envErr := godotenv.Load()
	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded, using process environment: %v", envErr)
	}

	db, err := postgres.New()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	svc := financeService.NewFinanceService(logger, financeRepository.New(db, logger), utils.New())

	started := time.Now()
	report, err := svc.SyncBalances(ctx)
	fields := log.Fields{
		"checked":   report.Checked,
		"corrected": report.Corrected,
		"failed":    report.Failed,
		"duration":  time.Since(started).String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		logger.WithFields(fields).Error("Wallet sync aborted")
		db.Close()
		os.Exit(1)
	}

	logger.WithFields(fields).Info("Wallet sync finished")
	if report.Failed > 0 {
		db.Close()
		os.Exit(1)
	}
}
