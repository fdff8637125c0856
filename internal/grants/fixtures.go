package grants

import "time"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// demoGrants is the static marketplace catalogue used when no database is
// configured.
var demoGrants = []Grant{
	{
		ID:                  "1",
		DonorID:             "1",
		DonorName:           "Dr. Sarah Johnson",
		DonorRating:         4.8,
		Title:               "Emergency Medical Equipment Fund",
		Description:         "Supporting healthcare facilities in need of critical medical equipment to serve underserved communities.",
		Amount:              50000,
		Currency:            "USD",
		Category:            CategoryHealthcare,
		Eligibility:         []string{"Registered healthcare organization", "Serves underserved communities", "Valid medical license"},
		Requirements:        []string{"Detailed equipment list", "Impact assessment report", "Financial statements"},
		Deadline:            date(2024, time.March, 15),
		MaxApplications:     10,
		CurrentApplications: 7,
		Status:              StatusActive,
		CreatedAt:           date(2024, time.January, 15),
		SuccessfulGrants:    12,
	},
	{
		ID:                  "2",
		DonorID:             "1",
		DonorName:           "Dr. Sarah Johnson",
		DonorRating:         4.8,
		Title:               "Individual Healthcare Support",
		Description:         "Direct financial assistance for individuals facing medical emergencies or chronic conditions.",
		Amount:              5000,
		Currency:            "USD",
		Category:            CategoryHealthcare,
		Eligibility:         []string{"Individual applicant", "Medical documentation required", "Financial need demonstrated"},
		Requirements:        []string{"Medical reports", "Income verification", "Personal statement"},
		Deadline:            date(2024, time.February, 28),
		MaxApplications:     50,
		CurrentApplications: 23,
		Status:              StatusActive,
		CreatedAt:           date(2024, time.January, 20),
		SuccessfulGrants:    8,
	},
	{
		ID:                  "3",
		DonorID:             "1",
		DonorName:           "Dr. Sarah Johnson",
		DonorRating:         4.8,
		Title:               "Community Health Research Grant",
		Description:         "Funding innovative research projects that address pressing health challenges in developing communities.",
		Amount:              25000,
		Currency:            "USD",
		Category:            CategoryResearch,
		Eligibility:         []string{"Research institution", "Community focus", "Peer review approval"},
		Requirements:        []string{"Research proposal", "Timeline and budget", "IRB approval"},
		Deadline:            date(2024, time.April, 30),
		MaxApplications:     5,
		CurrentApplications: 2,
		Status:              StatusActive,
		CreatedAt:           date(2024, time.February, 1),
		SuccessfulGrants:    15,
	},
	{
		ID:                  "4",
		DonorID:             "1",
		DonorName:           "Dr. Sarah Johnson",
		DonorRating:         4.8,
		Title:               "Educational Healthcare Initiative",
		Description:         "Supporting educational programs that train healthcare workers in underserved regions.",
		Amount:              15000,
		Currency:            "USD",
		Category:            CategoryEducation,
		Eligibility:         []string{"Educational institution", "Healthcare focus", "Community impact"},
		Requirements:        []string{"Program curriculum", "Student outcomes plan", "Budget breakdown"},
		Deadline:            date(2024, time.March, 30),
		MaxApplications:     8,
		CurrentApplications: 4,
		Status:              StatusActive,
		CreatedAt:           date(2024, time.January, 25),
		SuccessfulGrants:    6,
	},
}

var demoApplications = []Application{
	{
		ID:            "1",
		GrantID:       "1",
		ApplicantID:   "3",
		ApplicantName: "Hope Medical Center",
		ApplicantType: "organization",
		Status:        ApplicationPending,
		SubmittedAt:   date(2024, time.February, 10),
		Documents:     []string{"equipment-list.pdf", "impact-report.pdf", "financial-statements.pdf"},
		Message:       "We urgently need ventilators and monitoring equipment to expand our ICU capacity for our rural community.",
	},
	{
		ID:            "2",
		GrantID:       "2",
		ApplicantID:   "2",
		ApplicantName: "Michael Chen",
		ApplicantType: "individual",
		Status:        ApplicationApproved,
		SubmittedAt:   date(2024, time.February, 5),
		Documents:     []string{"medical-reports.pdf", "income-verification.pdf", "personal-statement.pdf"},
		Message:       "Seeking assistance for ongoing cancer treatment. Lost job due to illness and struggling with medical bills.",
	},
}

// demoDonorStats is the fixed dashboard aggregate for the demo donor.
var demoDonorStats = DonorStats{
	TotalDonated:        145000,
	ActiveGrants:        4,
	CompletedGrants:     12,
	PendingApplications: 15,
	SuccessfulGrants:    41,
	Rating:              4.8,
}
