// Package recipientrepo persists the recipient directory.
package recipientrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// RecipientDTO represents the database structure for persisting recipients
// with their embedded postal address.
type RecipientDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// AddressDTO represents the embedded postal address columns.
type AddressDTO struct {
	Street     string `gorm:"not null"`
	Number     string `gorm:"not null"`
	Complement string
	City       string `gorm:"not null"`
	State      string `gorm:"not null"`
	Zip        string `gorm:"not null"`
}

// TableName specifies the database table name for recipient entities.
func (RecipientDTO) TableName() string {
	return "recipients"
}

func fromDomain(r *recipient.Recipient) RecipientDTO {
	addr := r.Address()
	return RecipientDTO{
		ID:   r.ID().Bytes(),
		Name: r.Name(),
		Address: AddressDTO{
			Street:     addr.Street,
			Number:     addr.Number,
			Complement: addr.Complement,
			City:       addr.City,
			State:      addr.State,
			Zip:        addr.Zip,
		},
	}
}

func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipient.NewRecipient(id, dto.Name, recipient.Address{
		Street:     dto.Address.Street,
		Number:     dto.Address.Number,
		Complement: dto.Address.Complement,
		City:       dto.Address.City,
		State:      dto.Address.State,
		Zip:        dto.Address.Zip,
	})
}
