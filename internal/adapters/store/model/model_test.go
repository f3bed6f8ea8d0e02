package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_CanTransition(t *testing.T) {
	all := []TaskStatus{TaskStateOpen, TaskStateInProgress, TaskStateCompleted}
	allowed := map[[2]TaskStatus]bool{
		{TaskStateOpen, TaskStateInProgress}:      true,
		{TaskStateInProgress, TaskStateCompleted}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]TaskStatus{from, to}], from.CanTransition(to), "%s -> %s", from, to)
		}
	}
	assert.False(t, TaskStatus("cancelled").CanTransition(TaskStateOpen))
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	assert.False(t, TaskStateOpen.IsTerminal())
	assert.False(t, TaskStateInProgress.IsTerminal())
	assert.True(t, TaskStateCompleted.IsTerminal())
}

func TestClass_PurchasedBy(t *testing.T) {
	c := Class{Purchases: []ClassPurchase{{UserID: 3}, {UserID: 7}}}

	assert.Equal(t, []uint{3, 7}, c.PurchasedBy())
	assert.True(t, c.IsPurchasedBy(7))
	assert.False(t, c.IsPurchasedBy(1))
}
