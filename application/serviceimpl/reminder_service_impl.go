package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"deskhub/domain/ports"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
	"deskhub/pkg/logger"
)

type reminderServiceImpl struct {
	taskRepo  repositories.TaskRepository
	eventRepo repositories.EventRepository
	notifiers []ports.Notifier
	window    time.Duration
}

func NewReminderService(
	taskRepo repositories.TaskRepository,
	eventRepo repositories.EventRepository,
	notifiers []ports.Notifier,
	window time.Duration,
) services.ReminderService {
	return &reminderServiceImpl{
		taskRepo:  taskRepo,
		eventRepo: eventRepo,
		notifiers: notifiers,
		window:    window,
	}
}

// CheckReminders scans the upcoming window once. Done tasks never remind;
// undated items have nothing to match the window and are skipped by the
// queries themselves.
func (s *reminderServiceImpl) CheckReminders(ctx context.Context) error {
	now := time.Now()
	until := now.Add(s.window)

	tasks, err := s.taskRepo.FindDueBetween(ctx, now, until)
	if err != nil {
		logger.ErrorContext(ctx, "Reminder task query failed", "error", err)
		return err
	}
	for _, task := range tasks {
		logger.InfoContext(ctx, "Task due soon", "id", task.ID, "title", task.Title, "dueAt", task.DueAt)
		s.notify(ctx, ports.Notification{
			Kind:    "task",
			ID:      task.ID.String(),
			Title:   task.Title,
			When:    *task.DueAt,
			Message: fmt.Sprintf("Task %q is due soon", task.Title),
		})
	}

	events, err := s.eventRepo.FindStartingBetween(ctx, now, until)
	if err != nil {
		logger.ErrorContext(ctx, "Reminder event query failed", "error", err)
		return err
	}
	for _, event := range events {
		logger.InfoContext(ctx, "Event starting soon", "id", event.ID, "title", event.Title, "startAt", event.StartAt)
		s.notify(ctx, ports.Notification{
			Kind:    "event",
			ID:      event.ID.String(),
			Title:   event.Title,
			When:    *event.StartAt,
			Message: fmt.Sprintf("Event %q is starting soon", event.Title),
		})
	}

	return nil
}

func (s *reminderServiceImpl) notify(ctx context.Context, n ports.Notification) {
	for _, notifier := range s.notifiers {
		if err := notifier.Notify(ctx, n); err != nil {
			logger.WarnContext(ctx, "Reminder notification failed", "kind", n.Kind, "id", n.ID, "error", err)
		}
	}
}
