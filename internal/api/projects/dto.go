package projects

import "time"

// ---------- requests

type CreateProjectRequest struct {
	ClientName    string `json:"client_name" binding:"required"`
	ClientCPF     string `json:"client_cpf"`
	ClientAddress string `json:"client_address"`
	ClientCity    string `json:"client_city"`

	ProjectType string `json:"project_type" binding:"required"`
	Status      string `json:"status"`

	StartDate *time.Time `json:"start_date"`
	Deadline  *time.Time `json:"deadline"`

	MaterialsCost  float64  `json:"materials_cost"`
	FinalPrice     *float64 `json:"final_price"`
	EstimatedHours float64  `json:"estimated_hours"`
	EstimatedDays  int      `json:"estimated_days"`
	FreightCost    float64  `json:"freight_cost"`
	MarginPercent  float64  `json:"margin_percent"`
	TaxPercent     float64  `json:"tax_percent"`

	PaymentTerms string `json:"payment_terms"`
	Notes        string `json:"notes"`
}

type UpdateProjectRequest struct {
	ClientName    *string `json:"client_name"`
	ClientCPF     *string `json:"client_cpf"`
	ClientAddress *string `json:"client_address"`
	ClientCity    *string `json:"client_city"`

	ProjectType *string `json:"project_type"`
	Status      *string `json:"status"`

	StartDate *time.Time `json:"start_date"`
	Deadline  *time.Time `json:"deadline"`

	MaterialsCost  *float64 `json:"materials_cost"`
	FinalPrice     *float64 `json:"final_price"`
	EstimatedHours *float64 `json:"estimated_hours"`
	EstimatedDays  *int     `json:"estimated_days"`
	FreightCost    *float64 `json:"freight_cost"`
	MarginPercent  *float64 `json:"margin_percent"`
	TaxPercent     *float64 `json:"tax_percent"`

	PaymentTerms *string `json:"payment_terms"`
	Notes        *string `json:"notes"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"` // "approve" | "reject"
	Reason   string `json:"reason"`
}
