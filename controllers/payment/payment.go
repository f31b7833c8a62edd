// Package paymentControllers simulates the card/UPI gateway the storefront
// talks to. It is a stand-in with a fixed delay and success probability, not
// a security mechanism; cash on delivery never touches it.
package paymentControllers

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/aayish123/Final-aayishFoods/models"
)

var ErrPaymentFailed = errors.New("payment failed")

type Processor struct {
	Delay       time.Duration
	SuccessRate float64

	mu  sync.Mutex // guards rng; checkouts share one Processor
	rng *rand.Rand
}

// NewProcessor returns the default gateway stand-in: 2s processing delay and
// a 90% success rate, matching the storefront's mock.
func NewProcessor() *Processor {
	return &Processor{
		Delay:       2 * time.Second,
		SuccessRate: 0.9,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewProcessorWithSeed pins the outcome sequence for deterministic runs.
func NewProcessorWithSeed(delay time.Duration, successRate float64, seed int64) *Processor {
	return &Processor{
		Delay:       delay,
		SuccessRate: successRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Charge simulates processing for the given method. COD succeeds immediately
// and leaves payment pending; card/UPI wait out the delay and may fail.
func (p *Processor) Charge(method string, amount float64) (models.PaymentStatus, error) {
	if method == models.PaymentMethodCOD {
		return models.PaymentStatusPending, nil
	}

	time.Sleep(p.Delay)

	p.mu.Lock()
	roll := p.rng.Float64()
	p.mu.Unlock()

	if roll >= p.SuccessRate {
		return "", ErrPaymentFailed
	}
	return models.PaymentStatusCompleted, nil
}
