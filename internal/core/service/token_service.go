package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/campuseats/canteen/internal/port"
)

const (
	tokenStateKey   = "daily_tokens"
	tokenDateLayout = "2006-01-02"
)

type tokenState struct {
	Date    string `json:"date"`
	Counter int    `json:"counter"`
}

// TokenAllocator issues sequential per-day pickup tokens. The counter
// lives in the injected store and resets whenever the stored date
// differs from the current one.
type TokenAllocator struct {
	store port.KVRepository
	now   func() time.Time
}

func NewTokenAllocator(store port.KVRepository) *TokenAllocator {
	return &TokenAllocator{store: store, now: time.Now}
}

// NextToken increments today's counter and returns it as a zero-padded
// ticket, e.g. "#007". Padding is a minimum width: counter 1000 yields
// "#1000".
func (a *TokenAllocator) NextToken(ctx context.Context) (string, error) {
	today := a.now().Format(tokenDateLayout)

	st := tokenState{Date: today}
	raw, ok, err := a.store.Get(ctx, tokenStateKey)
	if err != nil {
		return "", fmt.Errorf("read token state: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			return "", fmt.Errorf("decode token state: %w", err)
		}
		if st.Date != today {
			st = tokenState{Date: today}
		}
	}

	st.Counter++

	b, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("encode token state: %w", err)
	}
	if err := a.store.Set(ctx, tokenStateKey, string(b)); err != nil {
		return "", fmt.Errorf("write token state: %w", err)
	}

	return fmt.Sprintf("#%03d", st.Counter), nil
}
