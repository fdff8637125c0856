package identity

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// The demo directory is the fixed set of identities Login accepts. All three
// share a single demo secret; nothing here is user-editable.
const demoSecret = "demo123"

var demoSecretHash []byte

func init() {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoSecret), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	demoSecretHash = hash
}

var demoIdentities = []Identity{
	{
		ID:            "1",
		Role:          RoleDonor,
		Email:         "donor@demo.com",
		FullName:      "Badafee Semicolon",
		Phone:         "+1234567890",
		Verified:      true,
		Rating:        4.8,
		CreatedAt:     time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC),
		WalletAddress: "0x1234...5678",
		ReferralCode:  "DONOR001",
	},
	{
		ID:            "2",
		Role:          RoleIndividual,
		Email:         "individual@demo.com",
		FullName:      "Afeez Flower",
		Phone:         "+1234567891",
		Verified:      true,
		CreatedAt:     time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC),
		WalletAddress: "0x5678...9012",
		ReferralCode:  "IND001",
		ReferredBy:    "ORG001",
		RewardBalance: 150,
	},
	{
		ID:               "3",
		Role:             RoleOrganization,
		Email:            "org@demo.com",
		OrganizationName: "Hope Medical Center",
		Phone:            "+1234567892",
		Verified:         true,
		CreatedAt:        time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC),
		WalletAddress:    "0x9012...3456",
		ReferralCode:     "ORG001",
		RewardBalance:    500,
	},
}

// DemoDirectory is the fixed credential set consumed by Login.
type DemoDirectory struct {
	identities []Identity
}

// NewDemoDirectory returns the directory of demo identities.
func NewDemoDirectory() *DemoDirectory {
	return &DemoDirectory{identities: demoIdentities}
}

// Authenticate looks up an identity by exact email match and verifies the
// supplied password against the demo secret. The only failure mode is "no
// matching credentials".
func (d *DemoDirectory) Authenticate(email, password string) (Identity, bool) {
	for _, id := range d.identities {
		if id.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(demoSecretHash, []byte(password)) != nil {
			return Identity{}, false
		}
		return id, true
	}
	return Identity{}, false
}

// All returns the demo identities, primarily for seeding fixtures.
func (d *DemoDirectory) All() []Identity {
	out := make([]Identity, len(d.identities))
	copy(out, d.identities)
	return out
}
