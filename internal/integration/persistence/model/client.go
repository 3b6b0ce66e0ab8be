// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wealth-advisor/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:text;not null"`
	Email          string          `gorm:"type:text;not null"`
	Avatar         *string         `gorm:"type:text"`
	Age            int             `gorm:"not null"`
	Occupation     *string         `gorm:"type:text"`
	NetWorth       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PortfolioValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	HealthScore    int             `gorm:"not null;default:85"`
	RiskProfile    string          `gorm:"type:varchar(20);not null;default:'moderate'"`
	LastContact    time.Time       `gorm:"not null;index"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Avatar:         m.Avatar,
		Age:            m.Age,
		Occupation:     m.Occupation,
		NetWorth:       m.NetWorth,
		PortfolioValue: m.PortfolioValue,
		HealthScore:    m.HealthScore,
		RiskProfile:    entity.RiskProfile(m.RiskProfile),
		LastContact:    m.LastContact,
		CreatedAt:      m.CreatedAt,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(c *entity.Client) *ClientModel {
	return &ClientModel{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Avatar:         c.Avatar,
		Age:            c.Age,
		Occupation:     c.Occupation,
		NetWorth:       c.NetWorth,
		PortfolioValue: c.PortfolioValue,
		HealthScore:    c.HealthScore,
		RiskProfile:    string(c.RiskProfile),
		LastContact:    c.LastContact,
		CreatedAt:      c.CreatedAt,
	}
}
