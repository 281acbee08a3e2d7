package shift

import "pos-backend/internal/models"

// CanTransition encodes the shift state machine: a shift leaves active for
// closed or cancelled exactly once; closed and cancelled are terminal.
func CanTransition(from, to models.ShiftStatus) bool {
	if from != models.ShiftActive {
		return false
	}
	return to == models.ShiftClosed || to == models.ShiftCancelled
}
