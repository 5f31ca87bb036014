package order_test

import (
	"testing"

	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalState_Validate(t *testing.T) {
	t.Run("valid states pass", func(t *testing.T) {
		for _, s := range []order.ApprovalState{order.PendingApproval, order.Approved, order.Rejected} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.ApprovalUnknown.Validate())
		require.Error(t, order.ApprovalState(42).Validate())
	})
}

func TestApprovalState_String(t *testing.T) {
	assert.Equal(t, "PendingApproval", order.PendingApproval.String())
	assert.Equal(t, "Approved", order.Approved.String())
	assert.Equal(t, "Rejected", order.Rejected.String())
	assert.Equal(t, "Unknown", order.ApprovalUnknown.String())
}

func TestApprovalState_Approve(t *testing.T) {
	t.Run("pending can be approved", func(t *testing.T) {
		newState, err := order.PendingApproval.Approve()

		require.NoError(t, err)
		assert.Equal(t, order.Approved, newState)
	})

	t.Run("approved and rejected are final", func(t *testing.T) {
		_, err := order.Approved.Approve()
		require.Error(t, err)

		_, err = order.Rejected.Approve()
		require.Error(t, err)
	})
}

func TestApprovalState_Reject(t *testing.T) {
	t.Run("pending can be rejected", func(t *testing.T) {
		newState, err := order.PendingApproval.Reject()

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, newState)
	})

	t.Run("approved and rejected are final", func(t *testing.T) {
		_, err := order.Approved.Reject()
		require.Error(t, err)

		_, err = order.Rejected.Reject()
		require.Error(t, err)
	})
}
