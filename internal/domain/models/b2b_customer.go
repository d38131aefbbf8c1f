package models

import (
	"time"

	"gorm.io/gorm"
)

// B2BCustomerRole is the only role a B2B customer account carries
const B2BCustomerRole = "b2b_admin"

// B2BCustomer represents a B2B partner account. Records are soft deleted via
// DeletedAt; gorm.DeletedAt scopes every query to live rows, so a deleted
// customer's email and phone become reusable without extra filters.
type B2BCustomer struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);index;not null" json:"email"`
	Phone    string `gorm:"type:varchar(20);index;not null" json:"phone"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Role     string `gorm:"type:varchar(20);not null;default:'b2b_admin'" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`

	// Personal information
	City    string `gorm:"type:varchar(100)" json:"city"`
	Thana   string `gorm:"type:varchar(100)" json:"thana"`
	Address string `gorm:"type:varchar(500)" json:"address"`

	// Company information
	CName         string `gorm:"column:c_name;type:varchar(200)" json:"c_name"`
	BusinessEmail string `gorm:"type:varchar(255)" json:"business_email"`
	CPhoneNumber  string `gorm:"column:c_phone_number;type:varchar(20)" json:"c_phone_number"`
	CEmail        string `gorm:"column:c_email;type:varchar(255)" json:"c_email"`

	// Document references (optional file URLs)
	TradeLicense             *string `gorm:"type:varchar(500)" json:"trade_license,omitempty"`
	CivilAviationCertificate *string `gorm:"type:varchar(500)" json:"civil_aviation_certificate,omitempty"`
	NationalIDFront          *string `gorm:"column:national_id_front;type:varchar(500)" json:"national_id_front,omitempty"`
	NationalIDBack           *string `gorm:"column:national_id_back;type:varchar(500)" json:"national_id_back,omitempty"`
	AddressProof             *string `gorm:"type:varchar(500)" json:"address_proof,omitempty"`

	// Additional information
	HeardAbout *string `gorm:"type:varchar(200)" json:"heard_about,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PublicView returns the projection embedded in auth responses
func (c *B2BCustomer) PublicView() map[string]interface{} {
	return map[string]interface{}{
		"id":       c.ID,
		"name":     c.Name,
		"email":    c.Email,
		"phone":    c.Phone,
		"role":     c.Role,
		"isActive": c.IsActive,
	}
}

// B2BCustomerSummary is the slim projection used by list and detail reads
type B2BCustomerSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary projects a customer into its list representation
func (c *B2BCustomer) Summary() B2BCustomerSummary {
	return B2BCustomerSummary{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Role:      c.Role,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
