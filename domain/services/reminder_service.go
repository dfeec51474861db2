package services

import "context"

type ReminderService interface {
	// CheckReminders runs one pass: tasks due and events starting inside the
	// upcoming window are logged and handed to the configured notifiers.
	CheckReminders(ctx context.Context) error
}
