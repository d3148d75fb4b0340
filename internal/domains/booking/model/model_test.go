package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"garage/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	statuses := []string{
		model.StatusScheduled, model.StatusInProgress, model.StatusCompleted, model.StatusCancelled,
	}

	allowed := map[[2]string]bool{
		{model.StatusScheduled, model.StatusInProgress}:  true,
		{model.StatusScheduled, model.StatusCancelled}:   true,
		{model.StatusInProgress, model.StatusCompleted}:  true,
		{model.StatusInProgress, model.StatusCancelled}:  true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.Equal(t, allowed[[2]string{from, to}], model.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, model.CanTransition("PENDING", model.StatusScheduled))
	assert.False(t, model.CanTransition(model.StatusScheduled, "PENDING"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, model.IsTerminal(model.StatusScheduled))
	assert.False(t, model.IsTerminal(model.StatusInProgress))
	assert.True(t, model.IsTerminal(model.StatusCompleted))
	assert.True(t, model.IsTerminal(model.StatusCancelled))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		model.StatusScheduled, model.StatusInProgress, model.StatusCompleted, model.StatusCancelled,
	} {
		assert.True(t, model.IsValidStatus(status))
	}

	assert.False(t, model.IsValidStatus("PENDING"))
	assert.False(t, model.IsValidStatus(""))
}
