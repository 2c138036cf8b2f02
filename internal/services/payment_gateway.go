package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"villagestay/internal/domain/models"
	"villagestay/internal/utils"
)

// MockGateway simulates a payment processor. Every charge succeeds
// after the configured delay; FailNext forces the next charge to be
// declined so retry paths can be exercised.
type MockGateway struct {
	Delay     time.Duration
	FailNext  bool
	RequestID string
}

func (g *MockGateway) Charge(ctx context.Context, amount int64, method string, metadata map[string]string) (models.Payment, error) {
	if amount <= 0 {
		return models.Payment{}, fmt.Errorf("charge amount must be positive")
	}

	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return models.Payment{}, ctx.Err()
		}
	}

	if g.FailNext {
		g.FailNext = false
		utils.LogEvent(g.RequestID, "payment", "charge", "simulated decline amount="+strconv.FormatInt(amount, 10))
		return models.Payment{}, fmt.Errorf("payment declined by gateway")
	}

	p := models.Payment{
		PaymentID: fmt.Sprintf("pay_%d", time.Now().UnixMilli()),
		Status:    "success",
		Method:    method,
		Amount:    amount,
		Timestamp: utils.FormatDateTime(utils.NowUTC()),
	}
	utils.LogEvent(g.RequestID, "payment", "charge",
		"method="+method+" amount="+strconv.FormatInt(amount, 10)+" payment_id="+p.PaymentID)
	return p, nil
}
