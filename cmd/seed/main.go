package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/config"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/domain/enums"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/infra/logger"
	"github.com/Derrick-MUGISHA/Admin-Dashboard/internal/store"
)

var matterTypes = []string{"Community", "Legal", "Billing", "Technical"}

var names = []string{
	"Amina Uwase", "Eric Mugisha", "Claudine Ingabire", "Jean Bosco",
	"Divine Keza", "Patrick Ndayisaba", "Sandrine Umutoni", "Yves Habimana",
}

// seed populates the reports and users collections with demo data so the
// console has something to mirror in dev and staging.
func main() {
	var (
		userCount   = flag.Int("users", 10, "number of users to create")
		reportCount = flag.Int("reports", 25, "number of reports to create")
		seedVal     = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	cfgPath := os.Getenv("APP_CONFIG")
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := store.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	defer func() {
		_ = client.Close()
	}()

	rng := rand.New(rand.NewSource(*seedVal))

	userIDs := make([]string, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		id, err := client.Push(ctx, "users", map[string]string{
			"blocked": strconv.FormatBool(rng.Intn(10) == 0),
		})
		if err != nil {
			log.Fatal("seed user", zap.Error(err))
		}
		userIDs = append(userIDs, id)
	}

	for i := 0; i < *reportCount; i++ {
		name := names[rng.Intn(len(names))]
		fields := map[string]string{
			"createdAt":   strconv.FormatInt(time.Now().Add(-time.Duration(rng.Intn(72))*time.Hour).UnixMilli(), 10),
			"description": fmt.Sprintf("Demo report %d", i+1),
			"email":       fmt.Sprintf("user%d@example.com", i+1),
			"phone":       fmt.Sprintf("+2507%08d", rng.Intn(100000000)),
			"name":        name,
			"matterType":  matterTypes[rng.Intn(len(matterTypes))],
			"userId":      userIDs[rng.Intn(len(userIDs))],
			"status":      string(enums.ReportStatusPending),
		}
		if rng.Intn(3) == 0 {
			fields["status"] = string(enums.ReportStatusResolved)
			fields["resolvedAt"] = strconv.FormatInt(time.Now().UnixMilli(), 10)
			fields["response"] = "Handled during demo seeding."
		}
		if _, err := client.Push(ctx, "reports", fields); err != nil {
			log.Fatal("seed report", zap.Error(err))
		}
	}

	log.Info("seeding complete",
		zap.Int("users", *userCount),
		zap.Int("reports", *reportCount),
	)
}
