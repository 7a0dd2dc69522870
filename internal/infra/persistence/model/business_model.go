// Package model holds the GORM persistence models mirroring the database
// tables. They are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"descya/internal/domain/entity"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Description    string    `gorm:"type:text"`
	Logo           string    `gorm:"type:varchar(512)"`
	Category       string    `gorm:"type:varchar(50)"`
	Address        string    `gorm:"type:varchar(255)"`
	Latitude       float64
	Longitude      float64
	Phone          string `gorm:"type:varchar(30)"`
	ContactName    string `gorm:"type:varchar(100)"`
	ContactEmail   string `gorm:"type:varchar(255)"`
	Plan           string `gorm:"type:varchar(20);not null;default:'basico'"`
	Active         bool   `gorm:"not null;default:true"`
	ApprovalStatus string `gorm:"type:varchar(10);not null;default:'pending';index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// ToDomain maps the persistence model to a pure domain entity.
func (m *BusinessModel) ToDomain() *entity.Business {
	return &entity.Business{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Logo:           m.Logo,
		Category:       m.Category,
		Address:        m.Address,
		Latitude:       m.Latitude,
		Longitude:      m.Longitude,
		Phone:          m.Phone,
		ContactName:    m.ContactName,
		ContactEmail:   m.ContactEmail,
		Plan:           entity.PlanTier(m.Plan),
		Active:         m.Active,
		ApprovalStatus: entity.ApprovalStatus(m.ApprovalStatus),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BusinessFromDomain maps a domain entity to the persistence model.
func BusinessFromDomain(b *entity.Business) *BusinessModel {
	return &BusinessModel{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Logo:           b.Logo,
		Category:       b.Category,
		Address:        b.Address,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		Phone:          b.Phone,
		ContactName:    b.ContactName,
		ContactEmail:   b.ContactEmail,
		Plan:           string(b.Plan),
		Active:         b.Active,
		ApprovalStatus: string(b.ApprovalStatus),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
