package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pos-backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from models.ShiftStatus
		to   models.ShiftStatus
		want bool
	}{
		{"active to closed", models.ShiftActive, models.ShiftClosed, true},
		{"active to cancelled", models.ShiftActive, models.ShiftCancelled, true},
		{"active to active", models.ShiftActive, models.ShiftActive, false},
		{"closed is terminal", models.ShiftClosed, models.ShiftCancelled, false},
		{"cancelled is terminal", models.ShiftCancelled, models.ShiftClosed, false},
		{"closed cannot reopen", models.ShiftClosed, models.ShiftActive, false},
		{"unknown target", models.ShiftActive, models.ShiftStatus("paused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}
