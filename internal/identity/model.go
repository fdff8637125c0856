package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role determines which views and navigation targets an identity may reach.
type Role string

const (
	RoleDonor        Role = "donor"
	RoleIndividual   Role = "individual"
	RoleOrganization Role = "organization"
)

// Valid reports whether the role is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleIndividual, RoleOrganization:
		return true
	}
	return false
}

// CanApply reports whether the role is allowed to apply for grants.
func (r Role) CanApply() bool {
	return r == RoleIndividual || r == RoleOrganization
}

// Identity represents an authenticated principal. Role is immutable after
// creation.
type Identity struct {
	ID               string    `json:"id"`
	Role             Role      `json:"role"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name,omitempty"`
	OrganizationName string    `json:"organization_name,omitempty"`
	Phone            string    `json:"phone"`
	Verified         bool      `json:"is_verified"`
	Rating           float64   `json:"rating,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	WalletAddress    string    `json:"wallet_address,omitempty"`
	ReferralCode     string    `json:"referral_code,omitempty"`
	ReferredBy       string    `json:"referred_by,omitempty"`
	RewardBalance    int64     `json:"reward_balance"`
}

// DisplayName resolves the authoritative name for the identity: the
// organization name when the role is organization, the full name otherwise.
func (i Identity) DisplayName() string {
	return DisplayName(i.Role, i.FullName, i.OrganizationName)
}

// DisplayName is the pure form of the name resolution contract, usable
// without a full Identity value.
func DisplayName(role Role, fullName, organizationName string) string {
	if role == RoleOrganization {
		return organizationName
	}
	return fullName
}

// RegistrationDraft carries the role-appropriate fields submitted by the
// registration form.
type RegistrationDraft struct {
	Role             Role   `json:"role"`
	FullName         string `json:"full_name"`
	OrganizationName string `json:"organization_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	WalletAddress    string `json:"wallet_address"`
	ReferredBy       string `json:"referred_by"`
}

// organizationSeedReward is the reward balance granted to a freshly
// registered organization. Other roles start at zero.
const organizationSeedReward = 100

// NewRegistered synthesizes an Identity from a registration draft: fresh id,
// unverified, created now, generated referral code, role-seeded reward
// balance. Registration never fails in the current design; drafts are taken
// as submitted.
func NewRegistered(draft RegistrationDraft, now time.Time) Identity {
	id := Identity{
		ID:               uuid.NewString(),
		Role:             draft.Role,
		Email:            draft.Email,
		FullName:         draft.FullName,
		OrganizationName: draft.OrganizationName,
		Phone:            draft.Phone,
		Verified:         false,
		CreatedAt:        now.UTC(),
		WalletAddress:    draft.WalletAddress,
		ReferralCode:     NewReferralCode(draft.Role),
		ReferredBy:       draft.ReferredBy,
	}
	if draft.Role == RoleOrganization {
		id.RewardBalance = organizationSeedReward
	}
	return id
}

// NewReferralCode derives a referral code from the role plus a random
// six character suffix, e.g. "ORGANIZATION3F9A1C".
func NewReferralCode(role Role) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return strings.ToUpper(string(role)) + suffix
}
