package appointment

import "github.com/VetCareServices/vetclinic-api/internal/httperr"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func InitialStatus() Status {
	return StatusScheduled
}

// ParseStatus rejects anything outside the enum.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusInProgress, StatusCompleted:
		return Status(s), nil
	default:
		return "", httperr.IllegalStateError{Value: s}
	}
}
