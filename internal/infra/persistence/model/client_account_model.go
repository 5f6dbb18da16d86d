package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique constraint names, matched against driver errors on insert.
const (
	ConstraintAccountEmail    = "uk_client_accounts_email"
	ConstraintAccountUsername = "uk_client_accounts_username"
)

// ClientAccountModel mirrors the 'client_accounts' table. Email and username are
// unique at the storage level.
type ClientAccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_client_accounts_client"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:uk_client_accounts_email"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_client_accounts_username"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Client *ClientModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ClientAccountModel) TableName() string {
	return "client_accounts"
}

// ClientModel mirrors the 'clients' table.
type ClientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Contact   string    `gorm:"type:varchar(20);not null"`
	Birthdate time.Time `gorm:"type:date;not null"`
	Cpf       string    `gorm:"type:varchar(14);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Addresses []*ClientAddressModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// ClientAddressModel mirrors the 'client_addresses' table. Position keeps the
// order in which the client supplied the addresses.
type ClientAddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Location  string    `gorm:"type:varchar(255);not null"`
	Latitude  float64   `gorm:"type:double precision;not null"`
	Longitude float64   `gorm:"type:double precision;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientAddressModel) TableName() string {
	return "client_addresses"
}

// All lists every model in dependency order, for migrations.
func All() []any {
	return []any{&ClientModel{}, &ClientAddressModel{}, &ClientAccountModel{}}
}
