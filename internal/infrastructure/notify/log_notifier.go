package notify

import (
	"context"
	"log"

	"hvac_crm/internal/usecase/interfaces"
)

// LogNotifier writes user-facing outcomes to the service log.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Success(_ context.Context, message, detail string) {
	log.Printf("[notify][success] %s detail=%s", message, detail)
}

func (LogNotifier) Error(_ context.Context, message, detail string) {
	log.Printf("[notify][error] %s detail=%s", message, detail)
}

func (LogNotifier) Warning(_ context.Context, message, detail string) {
	log.Printf("[notify][warning] %s detail=%s", message, detail)
}

func (LogNotifier) Loading(_ context.Context, message, detail string) {
	log.Printf("[notify][loading] %s detail=%s", message, detail)
}
