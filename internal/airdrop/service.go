package airdrop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hopechain/hopechain/internal/currency"
	"github.com/hopechain/hopechain/internal/identity"
	"github.com/hopechain/hopechain/internal/notification"
)

// ErrNothingToClaim occurs when claiming with a zero reward balance.
var ErrNothingToClaim = errors.New("no rewards to claim")

// Program describes the referral tier shown to donors and organizations.
// Individuals do not run a referral program.
type Program struct {
	RewardPerReferral int64  `json:"reward_per_referral"`
	ReferredCount     int    `json:"referred_count"`
	TotalEarned       int64  `json:"total_earned"`
	Tier              string `json:"tier"`
}

// Reward is one historical referral payout.
type Reward struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	ReferredUserID string    `json:"referred_user_id"`
	Amount         int64     `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Summary is everything the rewards panel renders for one identity.
type Summary struct {
	Balance      int64    `json:"balance"`
	USDEstimate  float64  `json:"usd_estimate"`
	ReferralCode string   `json:"referral_code"`
	Program      *Program `json:"program,omitempty"`
	History      []Reward `json:"history"`
}

// demoRewards is the fixed payout history shown on the panel; payouts accrue
// to the demo organization for its referrals.
var demoRewards = []Reward{
	{
		ID:             "1",
		OrganizationID: "3",
		ReferredUserID: "2",
		Amount:         100,
		Currency:       "SUI",
		Status:         "claimed",
		CreatedAt:      time.Date(2024, time.December, 12, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:             "2",
		OrganizationID: "3",
		ReferredUserID: "4",
		Amount:         100,
		Currency:       "SUI",
		Status:         "claimed",
		CreatedAt:      time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
	},
}

// Service assembles the rewards panel and handles claims.
type Service struct {
	notifier notification.Notifier
}

// NewService builds an airdrop service.
func NewService(notifier notification.Notifier) *Service {
	return &Service{notifier: notifier}
}

// Summarize builds the rewards panel for an identity: balance with its USD
// estimate, the referral program for roles that run one, and payout history.
func (s *Service) Summarize(id identity.Identity) Summary {
	sum := Summary{
		Balance:      id.RewardBalance,
		USDEstimate:  float64(id.RewardBalance) * currency.SUIUSDRate,
		ReferralCode: id.ReferralCode,
	}

	switch id.Role {
	case identity.RoleOrganization:
		sum.Program = &Program{RewardPerReferral: 100, ReferredCount: 12, TotalEarned: 1200, Tier: "Gold"}
	case identity.RoleDonor:
		sum.Program = &Program{RewardPerReferral: 50, ReferredCount: 5, TotalEarned: 250, Tier: "Silver"}
	}

	for _, r := range demoRewards {
		if r.OrganizationID == id.ID {
			sum.History = append(sum.History, r)
		}
	}
	return sum
}

// Claim reports the claimable balance. The payout itself is decorative: no
// chain is involved and the balance is not debited.
func (s *Service) Claim(ctx context.Context, id identity.Identity) (int64, error) {
	if id.RewardBalance == 0 {
		return 0, ErrNothingToClaim
	}

	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        notification.KindAirdropClaimed,
		Destination: id.ID,
		Body:        fmt.Sprintf("%s claimed %d SUI", id.DisplayName(), id.RewardBalance),
	})

	return id.RewardBalance, nil
}
