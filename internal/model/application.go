package model

import "time"

// ApplicationStatus is the review state of a tenant application.
type ApplicationStatus string

const (
	ApplicationPending          ApplicationStatus = "PENDING"
	ApplicationReviewing        ApplicationStatus = "REVIEWING"
	ApplicationApproved         ApplicationStatus = "APPROVED"
	ApplicationRejected         ApplicationStatus = "REJECTED"
	ApplicationMoreInfoRequired ApplicationStatus = "MORE_INFO_REQUIRED"
)

// Terminal reports whether the status admits no further decisions.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// PendingPropertyID is the placeholder property reference an application
// carries until the applicant is assigned a unit.
const PendingPropertyID = "PENDING"

// ApplicantDetails is the fixed personal/employment/residential block
// captured at submission.
type ApplicantDetails struct {
	FullName         string  `json:"full_name"`
	DateOfBirth      string  `json:"date_of_birth"`
	NationalID       string  `json:"national_id"`
	Occupation       string  `json:"occupation"`
	Employer         string  `json:"employer,omitempty"`
	MonthlyIncome    float64 `json:"monthly_income"`
	CurrentAddress   string  `json:"current_address"`
	ReasonForMoving  string  `json:"reason_for_moving,omitempty"`
	GuarantorName    string  `json:"guarantor_name,omitempty"`
	GuarantorPhone   string  `json:"guarantor_phone,omitempty"`
	IDDocumentURL    string  `json:"id_document_url,omitempty"`
	ProofOfIncomeURL string  `json:"proof_of_income_url,omitempty"`
}

// TenantApplication is an applicant's dossier routed to an agent for review.
// RiskScore and AIRecommendation are assigned once at submission and are
// narrative metadata; workflow transitions never recompute them.
type TenantApplication struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	PropertyID       string            `json:"property_id"`
	AgentID          string            `json:"agent_id"`
	Status           ApplicationStatus `json:"status"`
	SubmissionDate   time.Time         `json:"submission_date"`
	Details          ApplicantDetails  `json:"details"`
	RiskScore        int               `json:"risk_score"`
	AIRecommendation string            `json:"ai_recommendation,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
