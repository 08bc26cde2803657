package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFlagsAreExclusive(t *testing.T) {
	for _, status := range []Status{StatusIdle, StatusSubmitting, StatusSuccess, StatusError} {
		state := SubmissionState{Status: status}

		set := 0
		for _, flag := range []bool{state.Submitting(), state.Succeeded(), state.Failed()} {
			if flag {
				set++
			}
		}
		if status == StatusIdle {
			assert.Equal(t, 0, set, "idle has no flags set")
			assert.True(t, state.IsIdle())
		} else {
			assert.Equal(t, 1, set, "%s has exactly one flag set", status)
		}
	}
}

func TestStateTerminal(t *testing.T) {
	assert.False(t, IdleState.Terminal())
	assert.False(t, SubmissionState{Status: StatusSubmitting}.Terminal())
	assert.True(t, SubmissionState{Status: StatusSuccess}.Terminal())
	assert.True(t, SubmissionState{Status: StatusError}.Terminal())
}

func TestStateMarshalJSON(t *testing.T) {
	body, err := json.Marshal(SubmissionState{Status: StatusError})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, false, decoded["submitting"])
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, true, decoded["error"])
	assert.Equal(t, ErrorMessage, decoded["message"])

	body, err = json.Marshal(IdleState)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"idle","submitting":false,"success":false,"error":false}`, string(body))
}

func TestUnknownStatusString(t *testing.T) {
	assert.Equal(t, "unknown", Status(42).String())
	assert.Empty(t, SubmissionState{Status: Status(42)}.Message())
}
