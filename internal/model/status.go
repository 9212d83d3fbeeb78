package model

// RunStatus represents the status of a batch keywording run
type RunStatus string

const (
	// RunStatusPending means the run is created but not started
	RunStatusPending RunStatus = "Pending"

	// RunStatusStarting means the run is enumerating the folder
	RunStatusStarting RunStatus = "Starting"

	// RunStatusProcessing means images are being uploaded and described
	RunStatusProcessing RunStatus = "Processing"

	// RunStatusCompleted means the run finished and the CSV is flushed
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusError means the run aborted on a hard failure
	RunStatusError RunStatus = "Error"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true if the run is in an active state
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusStarting || rs == RunStatusProcessing
}

// IsFinished returns true if the run is in a finished state (completed or error)
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusCompleted || rs == RunStatusError
}
