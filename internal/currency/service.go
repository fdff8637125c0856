package currency

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrSameCurrency occurs when source and target currency match.
	ErrSameCurrency = errors.New("source and target currency are the same")
	// ErrUnknownPair occurs when no rate is listed for the pair.
	ErrUnknownPair = errors.New("no rate for currency pair")
	// ErrInvalidAmount occurs for non-positive amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// feeRate is the flat transaction fee taken on the source amount.
const feeRate = 0.015

// recentLimit bounds the per-user conversion history, newest first.
const recentLimit = 5

// Quote is a priced conversion before execution.
type Quote struct {
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted"`
	Fee       float64 `json:"fee"`
	Rate      float64 `json:"rate"`
}

// Price computes the converted amount and the 1.5% fee for a pair without
// executing anything.
func Price(amount float64, from, to string) (Quote, error) {
	if amount <= 0 {
		return Quote{}, ErrInvalidAmount
	}
	if from == to {
		return Quote{}, ErrSameCurrency
	}
	rate, ok := lookupRate(from, to)
	if !ok {
		return Quote{}, ErrUnknownPair
	}
	return Quote{
		Amount:    amount,
		Converted: amount * rate,
		Fee:       amount * feeRate,
		Rate:      rate,
	}, nil
}

// Service executes demo conversions and keeps a bounded per-user history.
type Service struct {
	mu     sync.RWMutex
	recent map[string][]Transaction
	now    func() time.Time
}

// NewService builds a currency service.
func NewService() *Service {
	return &Service{recent: make(map[string][]Transaction), now: time.Now}
}

// Convert prices and records a conversion for the given user. The ledger
// entry is simulated: it completes immediately and carries a decorative
// transaction hash.
func (s *Service) Convert(_ context.Context, userID string, amount float64, from, to string) (Transaction, error) {
	quote, err := Price(amount, from, to)
	if err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		ID:           uuid.NewString(),
		UserID:       userID,
		Type:         "conversion",
		Amount:       amount,
		FromCurrency: from,
		ToCurrency:   to,
		Converted:    quote.Converted,
		Fee:          quote.Fee,
		Status:       "completed",
		CreatedAt:    s.now().UTC(),
		Hash:         fakeTxHash(),
	}

	s.mu.Lock()
	history := append([]Transaction{tx}, s.recent[userID]...)
	if len(history) > recentLimit {
		history = history[:recentLimit]
	}
	s.recent[userID] = history
	s.mu.Unlock()

	return tx, nil
}

// Recent returns the user's latest conversions, newest first.
func (s *Service) Recent(userID string) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.recent[userID]
	out := make([]Transaction, len(history))
	copy(out, history)
	return out
}

func fakeTxHash() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "0x" + hex[:8] + "..." + hex[8:14]
}
