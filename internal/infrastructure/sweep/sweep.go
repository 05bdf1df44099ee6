package sweep

import (
	"context"
	"log"
	"os"

	"github.com/robfig/cron/v3"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/usecase"
)

const defaultSpec = "@hourly"

// Start schedules the periodic sweep that expires overdue open sales.
// The schedule comes from EXPIRY_SWEEP_SPEC (cron syntax, default hourly).
// Sweep failures are logged and retried on the next tick, never surfaced
// to clients.
func Start(sellings usecase.ISellingUseCase) *cron.Cron {
	spec := os.Getenv("EXPIRY_SWEEP_SPEC")
	if spec == "" {
		spec = defaultSpec
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		expired, err := sellings.ExpireOverdue(context.Background())
		if err != nil {
			log.Printf("[sweep][selling] expiry sweep failed: %v", err)
			return
		}
		if expired > 0 {
			log.Printf("[sweep][selling] expired %d overdue sellings", expired)
		}
	}); err != nil {
		log.Fatalf("invalid EXPIRY_SWEEP_SPEC %q: %v", spec, err)
	}

	c.Start()
	return c
}
