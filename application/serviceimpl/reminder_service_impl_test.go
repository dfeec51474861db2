package serviceimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"deskhub/domain/models"
	"deskhub/domain/ports"
	"deskhub/infrastructure/postgres"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return n.err
}

func TestCheckRemindersWindow(t *testing.T) {
	db := newTestDB(t)
	taskRepo := postgres.NewTaskRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	notifier := &recordingNotifier{}
	svc := NewReminderService(taskRepo, eventRepo, []ports.Notifier{notifier}, 5*time.Minute)
	ctx := context.Background()
	now := time.Now()

	mkTask := func(title, status string, dueAt *time.Time) {
		t.Helper()
		if err := taskRepo.Create(ctx, &models.Task{
			ID:     uuid.New(),
			Title:  title,
			Status: status,
			DueAt:  dueAt,
		}); err != nil {
			t.Fatalf("create task %s: %v", title, err)
		}
	}
	in2m := now.Add(2 * time.Minute)
	in10m := now.Add(10 * time.Minute)
	ago := now.Add(-time.Minute)

	mkTask("due soon", models.TaskStatusTodo, &in2m)
	mkTask("already done", models.TaskStatusDone, &in2m)
	mkTask("due later", models.TaskStatusTodo, &in10m)
	mkTask("overdue", models.TaskStatusTodo, &ago)
	mkTask("undated", models.TaskStatusTodo, nil)

	in3m := now.Add(3 * time.Minute)
	if err := eventRepo.Create(ctx, &models.Event{ID: uuid.New(), Title: "starting soon", StartAt: &in3m}); err != nil {
		t.Fatalf("create event: %v", err)
	}
	if err := eventRepo.Create(ctx, &models.Event{ID: uuid.New(), Title: "started already", StartAt: &ago}); err != nil {
		t.Fatalf("create event: %v", err)
	}

	if err := svc.CheckReminders(ctx); err != nil {
		t.Fatalf("CheckReminders: %v", err)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("notifications = %d (%+v), want 2", len(notifier.sent), notifier.sent)
	}
	byTitle := map[string]ports.Notification{}
	for _, n := range notifier.sent {
		byTitle[n.Title] = n
	}
	if n, ok := byTitle["due soon"]; !ok || n.Kind != "task" {
		t.Errorf("task notification = %+v", byTitle["due soon"])
	}
	if n, ok := byTitle["starting soon"]; !ok || n.Kind != "event" {
		t.Errorf("event notification = %+v", byTitle["starting soon"])
	}
}

func TestCheckRemindersNotifierFailureIsNonFatal(t *testing.T) {
	db := newTestDB(t)
	taskRepo := postgres.NewTaskRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	broken := &recordingNotifier{err: errors.New("chat unreachable")}
	healthy := &recordingNotifier{}
	svc := NewReminderService(taskRepo, eventRepo, []ports.Notifier{broken, healthy}, 5*time.Minute)
	ctx := context.Background()

	due := time.Now().Add(time.Minute)
	if err := taskRepo.Create(ctx, &models.Task{
		ID:     uuid.New(),
		Title:  "pay invoice",
		Status: models.TaskStatusTodo,
		DueAt:  &due,
	}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := svc.CheckReminders(ctx); err != nil {
		t.Fatalf("CheckReminders: %v", err)
	}
	if len(healthy.sent) != 1 {
		t.Errorf("healthy notifier got %d notifications, want 1", len(healthy.sent))
	}
}
