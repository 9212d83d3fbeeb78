package model

import "testing"

func TestRunStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusPending, false},
		{RunStatusStarting, true},
		{RunStatusProcessing, true},
		{RunStatusCompleted, false},
		{RunStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusPending, false},
		{RunStatusStarting, false},
		{RunStatusProcessing, false},
		{RunStatusCompleted, true},
		{RunStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_String(t *testing.T) {
	status := RunStatusProcessing
	expected := "Processing"
	result := status.String()

	if result != expected {
		t.Errorf("RunStatus.String() = %s, expected %s", result, expected)
	}
}
