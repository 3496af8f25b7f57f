package projects

import "time"

// Project statuses
const (
	StatusQuote           = "quote"
	StatusActive          = "active"
	StatusCompleted       = "completed"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusQuote, StatusActive, StatusCompleted, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Project struct {
	ID     string `gorm:"type:uuid;primaryKey"`
	UserID uint   `gorm:"not null;index:idx_projects_user_id"`

	ClientName    string `gorm:"not null"`
	ClientCPF     string `gorm:"column:client_cpf"`
	ClientAddress string
	ClientCity    string

	ProjectType string `gorm:"not null"`
	Status      string `gorm:"not null;default:'quote'"`

	StartDate *time.Time
	Deadline  *time.Time

	MaterialsCost  float64
	FinalPrice     *float64
	EstimatedHours float64
	EstimatedDays  int
	FreightCost    float64
	MarginPercent  float64
	TaxPercent     float64

	PaymentTerms string
	Notes        string

	// Public estimate sharing (client approval flow)
	PublicToken     *string `gorm:"column:public_token;uniqueIndex:idx_projects_public_token"`
	ApprovedAt      *time.Time
	RejectionReason string
	ClientViewCount int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
