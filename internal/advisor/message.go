package advisor

import (
	"fmt"

	"github.com/alexanderramin/fitcoach/internal/domain"
)

// Severity tells the presentation layer how to style a Message.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

type Message struct {
	Severity Severity
	Text     string
}

// DeriveMessage builds the user-facing status line for a detected activity.
func DeriveMessage(status domain.ActivityStatus, label domain.ActivityLabel) Message {
	if status == domain.StatusSedentary {
		return Message{
			Severity: SeverityWarning,
			Text:     fmt.Sprintf("Motion Alert: You have been '%s' for too long. Time to move!", label),
		}
	}
	return Message{
		Severity: SeveritySuccess,
		Text:     fmt.Sprintf("Intensity Match: Your current activity (%s) aligns with your fitness goals.", label),
	}
}
