package inventory

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventAdmin/internal/lib/clock"
	"eventAdmin/internal/models"
)

type Op string

const (
	OpReserve Op = "reserve"
	OpConfirm Op = "confirm"
	OpRelease Op = "release"
	OpAdjust  Op = "adjust"
)

type entry struct {
	op       Op
	ticketID string
	amount   int
	result   models.Ticket
	at       time.Time
}

// Accountant applies inventory operations and remembers successful ones by
// idempotency key, so a retried request replays the first result instead of
// counting twice. Rejected operations are not recorded.
type Accountant struct {
	log   *slog.Logger
	clock clock.Clock

	mu     sync.Mutex
	ledger map[string]entry
}

func NewAccountant(log *slog.Logger, clk clock.Clock) *Accountant {
	return &Accountant{
		log:    log,
		clock:  clk,
		ledger: make(map[string]entry),
	}
}

// Apply runs op on t. replayed is true when key was already used for the same
// operation; the returned ticket is then the recorded result and the caller
// must not store it again.
func (a *Accountant) Apply(key string, op Op, t models.Ticket, amount int) (result models.Ticket, replayed bool, err error) {
	const fn = "inventory.Accountant.Apply"

	a.mu.Lock()
	defer a.mu.Unlock()

	if key != "" {
		if e, ok := a.ledger[key]; ok {
			if e.op != op || e.ticketID != t.ID || e.amount != amount {
				return t, false, fmt.Errorf("%s: key %q: %w", fn, key, models.ErrIdempotencyConflict)
			}
			return e.result.Clone(), true, nil
		}
	}

	switch op {
	case OpReserve:
		result, err = Reserve(t, amount)
	case OpConfirm:
		result, err = ConfirmSale(t, amount)
	case OpRelease:
		var clamped bool
		result, clamped, err = ReleaseReservation(t, amount)
		if clamped {
			a.log.Warn("release exceeds outstanding reservations",
				slog.String("op", fn),
				slog.String("ticket_id", t.ID),
				slog.Int("requested", amount),
				slog.Int("reserved", t.Reserved),
			)
		}
	case OpAdjust:
		result, err = AdjustQuantity(t, amount)
	default:
		return t, false, fmt.Errorf("%s: unknown operation %q: %w", fn, op, models.ErrInvalidState)
	}
	if err != nil {
		return t, false, fmt.Errorf("%s: %w", fn, err)
	}

	now := a.clock.Now()
	result.UpdatedAt = now

	if key != "" {
		a.ledger[key] = entry{op: op, ticketID: t.ID, amount: amount, result: result.Clone(), at: now}
	}

	return result, false, nil
}

// Prune forgets keys recorded before cutoff and returns how many were dropped.
func (a *Accountant) Prune(cutoff time.Time) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for key, e := range a.ledger {
		if e.at.Before(cutoff) {
			delete(a.ledger, key)
			n++
		}
	}

	return n
}
