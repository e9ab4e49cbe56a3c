package gorm

import (
	"time"

	"github.com/billcraft/invoicing-system/internal/core/domain"
)

// Persistence records are kept separate from the domain structs so gorm tags
// and schema concerns never leak into the core packages.

type userRecord struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:100;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

type profileRecord struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint       `gorm:"uniqueIndex;not null"`
	User         userRecord `gorm:"foreignKey:UserID"`
	FirstName    string     `gorm:"size:100;not null"`
	LastName     string     `gorm:"size:100;not null"`
	BusinessName string     `gorm:"size:255"`
	Address      string     `gorm:"type:text"`
	Picture      string     `gorm:"size:255"`
}

func (profileRecord) TableName() string { return "profiles" }

type accountRecord struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"index;not null"`
	User          userRecord `gorm:"foreignKey:UserID"`
	AccountName   string     `gorm:"size:255;not null"`
	AccountNumber string     `gorm:"size:100;not null"`
	BankName      string     `gorm:"size:255;not null"`
	ProviderID    string     `gorm:"size:255"`
}

func (accountRecord) TableName() string { return "accounts" }

type invoiceRecord struct {
	ID               uint                `gorm:"primaryKey"`
	UserID           uint                `gorm:"index;not null"`
	User             userRecord          `gorm:"foreignKey:UserID"`
	ClientName       string              `gorm:"size:255;not null"`
	ClientEmail      string              `gorm:"size:255;not null"`
	DueDate          time.Time
	Status           string              `gorm:"size:50;default:'unpaid'"`
	Total            float64             `gorm:"not null;default:0"`
	BillingAddress   string              `gorm:"type:text"`
	ExtraInformation string              `gorm:"type:text"`
	CreatedAt        time.Time
	Items            []invoiceItemRecord `gorm:"foreignKey:InvoiceID"`
}

func (invoiceRecord) TableName() string { return "invoices" }

type invoiceItemRecord struct {
	ID        uint    `gorm:"primaryKey"`
	InvoiceID uint    `gorm:"index;not null"`
	Title     string  `gorm:"size:255;not null"`
	Quantity  int     `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
	Subtotal  float64 `gorm:"not null"`
}

func (invoiceItemRecord) TableName() string { return "invoice_items" }

// --- Record ↔ domain mapping ---

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *profileRecord) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:           r.ID,
		OwnerID:      r.UserID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		BusinessName: r.BusinessName,
		Address:      r.Address,
		Picture:      r.Picture,
	}
}

func (r *accountRecord) toDomain() *domain.Account {
	return &domain.Account{
		ID:            r.ID,
		OwnerID:       r.UserID,
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		BankName:      r.BankName,
		ProviderID:    r.ProviderID,
	}
}

func (r *invoiceRecord) toDomain() *domain.Invoice {
	items := make([]domain.InvoiceItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.InvoiceItem{
			ID:        it.ID,
			InvoiceID: it.InvoiceID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		}
	}
	return &domain.Invoice{
		ID:               r.ID,
		OwnerID:          r.UserID,
		ClientName:       r.ClientName,
		ClientEmail:      r.ClientEmail,
		DueDate:          r.DueDate,
		Status:           r.Status,
		Total:            r.Total,
		BillingAddress:   r.BillingAddress,
		ExtraInformation: r.ExtraInformation,
		CreatedAt:        r.CreatedAt,
		Items:            items,
	}
}
