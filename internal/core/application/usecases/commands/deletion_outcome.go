package commands

import "fmt"

const (
	DefaultSucceededMessage    = "Delete succeeded !"
	DefaultFailedMessagePrefix = "Delete failed !"
)

// Messages holds the fixed texts reported to the administrator after a deletion.
type Messages struct {
	Succeeded    string
	FailedPrefix string
}

// DefaultMessages returns the stock success and failure texts.
func DefaultMessages() Messages {
	return Messages{
		Succeeded:    DefaultSucceededMessage,
		FailedPrefix: DefaultFailedMessagePrefix,
	}
}

// DeletionOutcome is the structured result handed back to the administrator.
// Status is true only when the order and all its details were removed.
type DeletionOutcome struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// NewDeletionOutcome converts the result of a deletion into an outcome.
// A nil err yields the success message; otherwise the failure prefix is followed
// by the error text so the administrator can see what went wrong.
func NewDeletionOutcome(err error, messages Messages) DeletionOutcome {
	if err == nil {
		return DeletionOutcome{
			Status:  true,
			Message: messages.Succeeded,
		}
	}

	return DeletionOutcome{
		Status:  false,
		Message: fmt.Sprintf("%s %s", messages.FailedPrefix, err.Error()),
	}
}
