// Package filerepo stores metadata of uploaded proof-of-delivery artifacts.
// The files themselves live on disk or in object storage; the core only
// ever needs to resolve a reference to confirm the artifact exists.
package filerepo

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProofFileDTO represents the database structure for stored artifact
// metadata.
type ProofFileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Path      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for proof file entities.
func (ProofFileDTO) TableName() string {
	return "proof_files"
}

// GormProofStore implements ProofStore using GORM.
type GormProofStore struct {
	db *gorm.DB
}

// NewGormProofStore creates a new GORM proof store.
func NewGormProofStore(db *gorm.DB) *GormProofStore {
	return &GormProofStore{db: db}
}

// Add records the metadata of a stored artifact.
func (s *GormProofStore) Add(ctx context.Context, id kernel.UUID, name, path string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if path == "" {
		return errs.NewValueIsRequiredError("path")
	}

	dto := ProofFileDTO{
		ID:        id.Bytes(),
		Name:      name,
		Path:      path,
		CreatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}

// Exists reports whether an artifact is stored under the given reference.
func (s *GormProofStore) Exists(ctx context.Context, ref kernel.UUID) (bool, error) {
	if err := ref.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&ProofFileDTO{}).
		Where("id = ?", ref.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
