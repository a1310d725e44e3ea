package matcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/spigell/automatcher/internal/tinder"
)

// ErrBudgetExhausted is returned by Spend when no likes are left.
var ErrBudgetExhausted = errors.New("like budget exhausted")

// Budget tracks the likes Tinder still allows. The value is never computed
// locally: every like response overwrites it.
type Budget struct {
	remaining int
}

// NewBudget returns a budget holding the given number of likes.
func NewBudget(remaining int) *Budget {
	b := &Budget{}
	b.Set(remaining)
	return b
}

// Remaining returns the likes left.
func (b *Budget) Remaining() int { return b.remaining }

// Exhausted reports whether no likes are left.
func (b *Budget) Exhausted() bool { return b.remaining <= 0 }

// Set adopts the given value, clamping negatives to zero.
func (b *Budget) Set(remaining int) {
	if remaining < 0 {
		remaining = 0
	}
	b.remaining = remaining
}

// Spend likes the candidate and adopts the remaining count reported back.
func (b *Budget) Spend(ctx context.Context, liker Liker, candidateID string) (*tinder.LikeResult, error) {
	if b.Exhausted() {
		return nil, ErrBudgetExhausted
	}

	result, err := liker.Like(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("spend like: %w", err)
	}

	if result == nil {
		return nil, fmt.Errorf("like %s: empty response", candidateID)
	}

	b.Set(result.LikesRemaining)

	return result, nil
}
