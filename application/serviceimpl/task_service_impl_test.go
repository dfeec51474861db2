package serviceimpl

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/infrastructure/postgres"
	"deskhub/pkg/apperrors"
)

func TestParseTagNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "work,home", []string{"work", "home"}},
		{"trims and lowercases", " Work , HOME ", []string{"work", "home"}},
		{"dedupes preserving order", "a,B,a,b,c", []string{"a", "b", "c"}},
		{"drops empties", "a,,  ,b", []string{"a", "b"}},
		{"empty input", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTagNames(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTagNames(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLinkURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		kind string
		want string
	}{
		{"web untouched", "https://example.com/a?b=c", models.LinkKindWeb, "https://example.com/a?b=c"},
		{"app untouched", `C:\tools\app.exe`, models.LinkKindApp, `C:\tools\app.exe`},
		{"file backslashes", `C:\docs\report.xlsx`, models.LinkKindFile, "file:///C:/docs/report.xlsx"},
		{"file already prefixed", "file:///C:/docs/a.txt", models.LinkKindFile, "file:///C:/docs/a.txt"},
		{"file unix path", "/srv/share/doc.pdf", models.LinkKindFile, "/srv/share/doc.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeLinkURL(tt.url, tt.kind)
			if got != tt.want {
				t.Errorf("normalizeLinkURL(%q, %q) = %q, want %q", tt.url, tt.kind, got, tt.want)
			}
		})
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	before := time.Now()
	task, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "write report"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.Status != models.TaskStatusTodo {
		t.Errorf("status = %q, want todo", task.Status)
	}
	if task.Category != models.TaskCategoryOther {
		t.Errorf("category = %q, want other", task.Category)
	}
	if task.StartAt == nil {
		t.Fatal("startAt should default to now")
	}
	start, _ := time.Parse(time.RFC3339, *task.StartAt)
	if start.Before(before.Add(-time.Minute)) || start.After(time.Now().Add(time.Minute)) {
		t.Errorf("default startAt = %v, not near now", start)
	}
	if task.DueAt != nil {
		t.Errorf("dueAt = %v, want nil", *task.DueAt)
	}
}

func TestCreateTaskLenientDates(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{
		Title:   "bad dates",
		StartAt: "not-a-date",
		DueAt:   "also garbage",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.StartAt != nil {
		t.Errorf("unparsable startAt should be unset, got %v", *task.StartAt)
	}
	if task.DueAt != nil {
		t.Errorf("unparsable dueAt should be unset, got %v", *task.DueAt)
	}

	task, err = svc.CreateTask(ctx, &dto.CreateTaskRequest{
		Title: "good dates",
		DueAt: "2026-09-01T09:00",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.DueAt == nil {
		t.Fatal("parsable dueAt should be set")
	}
}

func TestTaskTagReplacement(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "t", Tags: "Work, urgent"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if len(task.Tags) != 2 {
		t.Fatalf("tags = %d, want 2", len(task.Tags))
	}
	if task.Tags[0].Name != "work" || task.Tags[1].Name != "urgent" {
		t.Errorf("tags = %v, want normalized [work urgent]", task.Tags)
	}

	id := uuid.MustParse(task.ID)

	// Replacement swaps the whole set.
	newTags := "urgent,home"
	updated, err := svc.UpdateTask(ctx, id, &dto.UpdateTaskRequest{Tags: &newTags})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	got := make([]string, 0, len(updated.Tags))
	for _, tag := range updated.Tags {
		got = append(got, tag.Name)
	}
	if !reflect.DeepEqual(got, []string{"urgent", "home"}) {
		t.Errorf("tags after replace = %v, want [urgent home]", got)
	}

	// Reusing an existing name must not create a second row.
	var tagCount int64
	db.Model(&models.Tag{}).Where("name = ?", "urgent").Count(&tagCount)
	if tagCount != 1 {
		t.Errorf("urgent tag rows = %d, want 1", tagCount)
	}

	// Empty string clears everything; the tag rows stay.
	empty := ""
	updated, err = svc.UpdateTask(ctx, id, &dto.UpdateTaskRequest{Tags: &empty})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if len(updated.Tags) != 0 {
		t.Errorf("tags after clear = %d, want 0", len(updated.Tags))
	}
	db.Model(&models.Tag{}).Count(&tagCount)
	if tagCount != 3 {
		t.Errorf("tag rows after clear = %d, want 3 (work, urgent, home)", tagCount)
	}
}

func TestDeleteTaskCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "parent", Tags: "keepme"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	id := uuid.MustParse(task.ID)

	if _, err := svc.AddNote(ctx, id, &dto.CreateTaskNoteRequest{Body: "progress"}); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if _, err := svc.AddLink(ctx, id, &dto.CreateTaskLinkRequest{Title: "doc", URL: "https://example.com"}); err != nil {
		t.Fatalf("AddLink: %v", err)
	}
	if _, err := svc.AddSubtask(ctx, id, &dto.CreateSubtaskRequest{Title: "step 1"}); err != nil {
		t.Fatalf("AddSubtask: %v", err)
	}

	if err := svc.DeleteTask(ctx, id); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	var count int64
	db.Model(&models.TaskNote{}).Count(&count)
	if count != 0 {
		t.Errorf("task notes left = %d, want 0", count)
	}
	db.Model(&models.TaskLink{}).Count(&count)
	if count != 0 {
		t.Errorf("task links left = %d, want 0", count)
	}
	db.Model(&models.Subtask{}).Count(&count)
	if count != 0 {
		t.Errorf("subtasks left = %d, want 0", count)
	}

	// Shared tags are never cleaned up with the task.
	db.Model(&models.Tag{}).Where("name = ?", "keepme").Count(&count)
	if count != 1 {
		t.Errorf("tag rows = %d, want 1", count)
	}

	if _, err := svc.GetTask(ctx, id); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetTask after delete = %v, want ErrNotFound", err)
	}
}

func TestListTasksFiltersCombineWithAND(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	mk := func(title, status, category, tags string) {
		t.Helper()
		task, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: title, Category: category, Tags: tags})
		if err != nil {
			t.Fatalf("CreateTask(%s): %v", title, err)
		}
		if status != models.TaskStatusTodo {
			id := uuid.MustParse(task.ID)
			if _, err := svc.UpdateTask(ctx, id, &dto.UpdateTaskRequest{Status: &status}); err != nil {
				t.Fatalf("UpdateTask(%s): %v", title, err)
			}
		}
	}

	mk("ship release", models.TaskStatusDoing, models.TaskCategoryWork, "release")
	mk("ship groceries", models.TaskStatusTodo, models.TaskCategoryPersonal, "errand")
	mk("draft release notes", models.TaskStatusDoing, models.TaskCategoryWork, "release,writing")
	mk("done release", models.TaskStatusDone, models.TaskCategoryWork, "release")

	tasks, err := svc.ListTasks(ctx, dto.TaskFilter{
		Query:    "ship",
		Status:   models.TaskStatusDoing,
		Category: models.TaskCategoryWork,
		Tag:      "RELEASE",
	})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "ship release" {
		t.Errorf("filtered tasks = %+v, want only 'ship release'", tasks)
	}

	all, err := svc.ListTasks(ctx, dto.TaskFilter{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("unfiltered tasks = %d, want 4", len(all))
	}
}

func TestSubtaskToggleRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "t"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	taskID := uuid.MustParse(task.ID)

	subtask, err := svc.AddSubtask(ctx, taskID, &dto.CreateSubtaskRequest{Title: "s"})
	if err != nil {
		t.Fatalf("AddSubtask: %v", err)
	}
	if subtask.Status != models.TaskStatusTodo {
		t.Fatalf("new subtask status = %q, want todo", subtask.Status)
	}
	subtaskID := uuid.MustParse(subtask.ID)

	toggled, err := svc.ToggleSubtask(ctx, taskID, subtaskID)
	if err != nil {
		t.Fatalf("ToggleSubtask: %v", err)
	}
	if toggled.Status != models.TaskStatusDone {
		t.Errorf("after first toggle = %q, want done", toggled.Status)
	}

	toggled, err = svc.ToggleSubtask(ctx, taskID, subtaskID)
	if err != nil {
		t.Fatalf("ToggleSubtask: %v", err)
	}
	if toggled.Status != models.TaskStatusTodo {
		t.Errorf("after second toggle = %q, want todo", toggled.Status)
	}

	// A subtask under a different task must not be reachable.
	other, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "other"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := svc.ToggleSubtask(ctx, uuid.MustParse(other.ID), subtaskID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("cross-task toggle = %v, want ErrNotFound", err)
	}
}

func TestTaskOrderingDueAscNullsLast(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	mk := func(title, due string, priority int) {
		t.Helper()
		if _, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: title, DueAt: due, Priority: priority}); err != nil {
			t.Fatalf("CreateTask(%s): %v", title, err)
		}
	}

	mk("undated low", "", 0)
	mk("undated high", "", 5)
	mk("later", "2026-12-01T09:00", 0)
	mk("sooner", "2026-09-01T09:00", 0)

	tasks, err := svc.ListTasks(ctx, dto.TaskFilter{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}

	got := make([]string, 0, len(tasks))
	for _, task := range tasks {
		got = append(got, task.Title)
	}
	want := []string{"sooner", "later", "undated high", "undated low"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestUpdateTaskLink(t *testing.T) {
	db := newTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "prep slides"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	taskID := mustUUID(t, task.ID)

	link, err := svc.AddLink(ctx, taskID, &dto.CreateTaskLinkRequest{
		Title: "deck",
		URL:   "https://docs.example.com/deck",
	})
	if err != nil {
		t.Fatalf("AddLink: %v", err)
	}
	linkID := mustUUID(t, link.ID)

	// Switching kind to file re-normalizes the URL.
	kind := models.LinkKindFile
	rawPath := `D:\slides\deck.pptx`
	updated, err := svc.UpdateLink(ctx, taskID, linkID, &dto.UpdateTaskLinkRequest{Kind: &kind, URL: &rawPath})
	if err != nil {
		t.Fatalf("UpdateLink: %v", err)
	}
	if updated.URL != "file:///D:/slides/deck.pptx" {
		t.Errorf("url = %q, want file:///D:/slides/deck.pptx", updated.URL)
	}
	if updated.Title != "deck" {
		t.Errorf("title = %q, want unchanged", updated.Title)
	}

	other, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{Title: "other"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	title := "stolen"
	if _, err := svc.UpdateLink(ctx, mustUUID(t, other.ID), linkID, &dto.UpdateTaskLinkRequest{Title: &title}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("cross-task link update = %v, want ErrNotFound", err)
	}
}

func TestListTasksQueryIgnoresCase(t *testing.T) {
	db := newTestDB(t)
	if err := db.Exec("PRAGMA case_sensitive_like = ON").Error; err != nil {
		t.Fatalf("set pragma: %v", err)
	}
	svc := NewTaskService(postgres.NewTaskRepository(db), postgres.NewTagRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{
		Title:       "Ship Release",
		Description: "Final QA Pass",
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	for _, query := range []string{"ship", "RELEASE", "qa pass"} {
		got, err := svc.ListTasks(ctx, dto.TaskFilter{Query: query})
		if err != nil {
			t.Fatalf("ListTasks(%q): %v", query, err)
		}
		if len(got) != 1 {
			t.Errorf("ListTasks(%q) = %d results, want 1", query, len(got))
		}
	}
}
