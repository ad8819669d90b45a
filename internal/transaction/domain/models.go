// Package domain contains persistence models for transactions.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Kind separates sales from Setor Emas (gold deposit) purchases.
type Kind string

const (
	KindSale    Kind = "sale"
	KindDeposit Kind = "deposit"
)

// Condition grades the physical state of a deposited item.
type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionLikeNew   Condition = "like_new"
	ConditionScratched Condition = "scratched"
	ConditionDented    Condition = "dented"
	ConditionDamaged   Condition = "damaged"
)

// ItemType tells whether an item's purity comes from the category price list
// or from free-form operator entry.
type ItemType string

const (
	ItemTypeStandard ItemType = "standard"
	ItemTypeCustom   ItemType = "custom"
)

var (
	ErrTransactionNotFound = errors.New("transaction: not found")
	ErrCategoryNotFound    = errors.New("transaction: category not found")
	ErrItemNotFound        = errors.New("transaction: item not found")
	ErrEmptyTransaction    = errors.New("transaction: no items submitted")
	ErrInvalidGrossWeight  = errors.New("transaction: gross weight must be positive")
	ErrDuplicateCode       = errors.New("transaction: code already exists")
)

// Member is a registered customer whose name and address appear on the nota.
type Member struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	Name      string       `gorm:"type:text;not null"`
	Address   string       `gorm:"type:text"`
	Phone     string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Member) TableName() string { return "members" }

// Category is one karat grade on the price list. Its buy price is copied onto
// items at entry time, never referenced afterwards.
type Category struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	Name             string       `gorm:"type:text;not null"`
	Code             string       `gorm:"type:text;not null;uniqueIndex"`
	Purity           float64      `gorm:"not null;default:0"`
	BuyPricePerGram  float64      `gorm:"not null;default:0"`
	SellPricePerGram float64      `gorm:"not null;default:0"`
	CreatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }

// Transaction is a committed sale or deposit. Printing is a side effect that
// happens after commit and never mutates it.
type Transaction struct {
	ID            snowflake.ID      `gorm:"primaryKey"`
	Code          string            `gorm:"type:text;not null;uniqueIndex"`
	Kind          Kind              `gorm:"type:text;not null"`
	MemberID      *snowflake.ID     `gorm:"index"`
	Member        *Member           `gorm:"foreignKey:MemberID"`
	LocationCode  string            `gorm:"type:text"`
	Subtotal      float64           `gorm:"not null;default:0"`
	Discount      float64           `gorm:"not null;default:0"`
	GrandTotal    float64           `gorm:"not null;default:0"`
	PaidAmount    float64           `gorm:"not null;default:0"`
	ChangeAmount  float64           `gorm:"not null;default:0"`
	PaymentMethod string            `gorm:"type:text"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	Items         []TransactionItem `gorm:"foreignKey:TransactionID"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Transaction) TableName() string { return "transactions" }

// TransactionItem is one priced line of a transaction. NetWeight and
// LinePrice are always derived from GrossWeight through the pricing engine;
// GrossWeight stays the source of truth across edits.
type TransactionItem struct {
	ID            snowflake.ID `gorm:"primaryKey"`
	TransactionID snowflake.ID `gorm:"not null;index"`
	Position      int          `gorm:"not null"`
	Quantity      int          `gorm:"not null;default:1"`
	Name          string       `gorm:"type:text;not null"`
	CategoryCode  string       `gorm:"type:text"`
	CategoryName  string       `gorm:"type:text"`
	Purity        float64      `gorm:"not null;default:0"`
	GrossWeight   float64      `gorm:"not null;default:0"`
	ShrinkagePct  float64      `gorm:"not null;default:0"`
	NetWeight     float64      `gorm:"not null;default:0"`
	PricePerGram  float64      `gorm:"not null;default:0"`
	LinePrice     float64      `gorm:"not null;default:0"`
	Condition     Condition    `gorm:"type:text;not null;default:'new'"`
	ItemType      ItemType     `gorm:"type:text;not null;default:'standard'"`
	Notes         string       `gorm:"type:text"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (TransactionItem) TableName() string { return "transaction_items" }
