package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeFailure(t *testing.T) {
	result := ProbeFailure(errors.New("connection refused"))
	assert.False(t, result.OK())
	assert.Equal(t, "connection refused", result.Message())

	result = ProbeFailure("connection refused")
	assert.False(t, result.OK())
	assert.Equal(t, UnknownErrorMessage, result.Message())

	result = ProbeFailure(nil)
	assert.Equal(t, UnknownErrorMessage, result.Message())
}

func TestDBHealthResponseJSON(t *testing.T) {
	body, err := json.Marshal(NewDBHealthResponse(ProbeSucceeded()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	body, err = json.Marshal(NewDBHealthResponse(ProbeFailed("timeout")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"error":"timeout"}`, string(body))

	body, err = json.Marshal(NewDBHealthResponse(ProbeFailed("")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"error":""}`, string(body))
}

func TestOverallStatus(t *testing.T) {
	up := NewComponentHealthStatus(StatusUp, "UP")
	down := NewComponentHealthStatus(StatusDown, "refused")
	unknown := NewComponentHealthStatus(StatusUnknown, "not configured")

	assert.Equal(t, StatusUp, OverallStatus(up, unknown))
	assert.Equal(t, StatusDown, OverallStatus(up, down))
	assert.Equal(t, StatusDown, OverallStatus(down, unknown))
	assert.Equal(t, StatusUp, OverallStatus())
}

func TestNewHeartbeat(t *testing.T) {
	checkedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	heartbeat := NewHeartbeat(ProbeFailed("down"), "req-1", checkedAt, time.Millisecond)

	assert.False(t, heartbeat.OK)
	assert.Equal(t, "down", heartbeat.Error)
	assert.Equal(t, "req-1", heartbeat.RequestID)
	assert.Equal(t, time.UTC, heartbeat.CheckedAt.Location())
	assert.True(t, checkedAt.Equal(heartbeat.CheckedAt))
}
