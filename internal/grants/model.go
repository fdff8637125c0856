package grants

import "time"

// Category buckets a grant by cause.
type Category string

const (
	CategoryHealthcare Category = "healthcare"
	CategoryEducation  Category = "education"
	CategoryEmergency  Category = "emergency"
	CategoryResearch   Category = "research"
	CategoryCommunity  Category = "community"
)

// Grant statuses.
const (
	StatusActive    = "active"
	StatusClosed    = "closed"
	StatusCompleted = "completed"
)

// Application statuses.
const (
	ApplicationPending   = "pending"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
	ApplicationCompleted = "completed"
)

// Grant is a funding offer published by a donor.
type Grant struct {
	ID                  string    `json:"id"`
	DonorID             string    `json:"donor_id"`
	DonorName           string    `json:"donor_name"`
	DonorRating         float64   `json:"donor_rating"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Amount              int64     `json:"amount"`
	Currency            string    `json:"currency"`
	Category            Category  `json:"category"`
	Eligibility         []string  `json:"eligibility"`
	Requirements        []string  `json:"requirements"`
	Deadline            time.Time `json:"deadline"`
	MaxApplications     int       `json:"max_applications"`
	CurrentApplications int       `json:"current_applications"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	SuccessfulGrants    int       `json:"successful_grants"`
}

// Application is a request for a grant submitted by an individual or an
// organization.
type Application struct {
	ID            string    `json:"id"`
	GrantID       string    `json:"grant_id"`
	ApplicantID   string    `json:"applicant_id"`
	ApplicantName string    `json:"applicant_name"`
	ApplicantType string    `json:"applicant_type"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Documents     []string  `json:"documents"`
	Message       string    `json:"message"`
}

// DonorStats aggregates a donor's activity for the dashboard.
type DonorStats struct {
	TotalDonated        int64   `json:"total_donated"`
	ActiveGrants        int     `json:"active_grants"`
	CompletedGrants     int     `json:"completed_grants"`
	PendingApplications int     `json:"pending_applications"`
	SuccessfulGrants    int     `json:"successful_grants"`
	Rating              float64 `json:"rating"`
}

// Sort orders accepted by Search.
const (
	SortNewest     = "newest"
	SortAmountHigh = "amount-high"
	SortAmountLow  = "amount-low"
	SortDeadline   = "deadline"
	SortRating     = "rating"
)

// SearchQuery narrows and orders the marketplace listing.
type SearchQuery struct {
	Term     string
	Category Category
	Sort     string
}

// Summary aggregates a marketplace listing.
type Summary struct {
	Count             int     `json:"count"`
	TotalAmount       int64   `json:"total_amount"`
	TotalApplications int     `json:"total_applications"`
	AverageRating     float64 `json:"average_rating"`
}
