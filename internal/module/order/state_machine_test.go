package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStateMachine_AllowsAnyKnownTransition(t *testing.T) {
	sm := NewStateMachine(zap.NewNop())

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			assert.NoError(t, sm.Transition("TSH-29082026-001", from, to),
				"%s -> %s should be allowed", from, to)
		}
	}
}

func TestStateMachine_ReopensTerminalStatuses(t *testing.T) {
	sm := NewStateMachine(zap.NewNop())

	// Issue resolution pushes completed orders back into the pipeline.
	assert.NoError(t, sm.Transition("CAS-01012026-001", StatusCompleted, StatusRedoInProgress))
	assert.NoError(t, sm.Transition("CAS-01012026-001", StatusCompleted, StatusProcessing))
	assert.NoError(t, sm.Transition("CAS-01012026-001", StatusRefunded, StatusShipped))
}

func TestStateMachine_RejectsUnknownStatus(t *testing.T) {
	sm := NewStateMachine(zap.NewNop())

	err := sm.Transition("CAP-01012026-002", StatusProcessing, Status("Lost"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, Status("Pending").Valid())
	assert.False(t, Status("").Valid())
}
