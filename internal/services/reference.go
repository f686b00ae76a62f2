package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"hotelbooking/internal/domain"
)

const (
	bookingNumberPrefix = "BK"
	// DefaultBookingNumberAttempts is used when ReferenceGenerator.MaxAttempts is unset.
	DefaultBookingNumberAttempts = 10
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// RandomSource yields a value in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

var defaultRand = NewRandomSource()

// NewRandomSource returns a goroutine-safe source seeded from the clock.
func NewRandomSource() RandomSource {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// ReferenceGenerator produces booking numbers of the form BK + yyyyMMdd + 4 digits.
type ReferenceGenerator struct {
	Store       BookingNumberChecker
	Clock       Clock
	Rand        RandomSource
	MaxAttempts int
}

// Generate returns a booking number the store does not know yet. It gives up
// with ErrGenerationExhausted after MaxAttempts collisions.
func (g ReferenceGenerator) Generate(ctx context.Context) (string, error) {
	attempts := g.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultBookingNumberAttempts
	}

	for i := 0; i < attempts; i++ {
		candidate := g.candidate()
		exists, err := g.Store.BookingNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", domain.InternalError{
		Msg: fmt.Sprintf("unable to generate unique booking number after %d attempts", attempts),
		Err: domain.ErrGenerationExhausted,
	}
}

func (g ReferenceGenerator) candidate() string {
	clock := g.Clock
	if clock == nil {
		clock = RealClock{}
	}
	src := g.Rand
	if src == nil {
		src = defaultRand
	}
	suffix := 1000 + src.Intn(9000)
	return fmt.Sprintf("%s%s%04d", bookingNumberPrefix, clock.Now().Format("20060102"), suffix)
}
