package clients

import "time"

type Client struct {
	ID     string `gorm:"type:uuid;primaryKey"`
	UserID uint   `gorm:"not null;index:idx_clients_user_id"`

	Name    string `gorm:"not null"`
	Phone   string `gorm:"not null"`
	Email   string
	Address string
	CPF     string `gorm:"column:cpf"`
	Notes   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
