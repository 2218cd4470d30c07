package problem_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/problem"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblem_Success(t *testing.T) {
	id := kernel.NewUUID()
	deliveryID := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)

	p, err := problem.NewProblem(id, deliveryID, "package damaged in transit", createdAt)

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, id, p.ID())
	assert.Equal(t, deliveryID, p.DeliveryID())
	assert.Equal(t, "package damaged in transit", p.Description())
	assert.Equal(t, createdAt, p.CreatedAt())
}

func TestNewProblem_InvalidArguments(t *testing.T) {
	valid := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		id          kernel.UUID
		deliveryID  kernel.UUID
		description string
		createdAt   time.Time
	}{
		{"empty id", kernel.UUID{}, valid, "damaged", createdAt},
		{"empty delivery id", valid, kernel.UUID{}, "damaged", createdAt},
		{"empty description", valid, valid, "", createdAt},
		{"zero created at", valid, valid, "damaged", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := problem.NewProblem(tt.id, tt.deliveryID, tt.description, tt.createdAt)
			require.Error(t, err)
		})
	}
}
