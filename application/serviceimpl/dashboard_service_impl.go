package serviceimpl

import (
	"context"
	"time"

	"deskhub/domain/dto"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
)

const dashboardLimit = 5

type dashboardServiceImpl struct {
	taskRepo  repositories.TaskRepository
	noteRepo  repositories.NoteRepository
	eventRepo repositories.EventRepository
}

func NewDashboardService(
	taskRepo repositories.TaskRepository,
	noteRepo repositories.NoteRepository,
	eventRepo repositories.EventRepository,
) services.DashboardService {
	return &dashboardServiceImpl{
		taskRepo:  taskRepo,
		noteRepo:  noteRepo,
		eventRepo: eventRepo,
	}
}

func (s *dashboardServiceImpl) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	tasks, err := s.taskRepo.FindOpenByDue(ctx, dashboardLimit)
	if err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.FindRecent(ctx, dashboardLimit)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.FindUpcoming(ctx, time.Now(), dashboardLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		OpenTasks:      dto.ToTaskResponses(tasks),
		RecentNotes:    dto.ToNoteResponses(notes),
		UpcomingEvents: dto.ToEventResponses(events),
	}, nil
}
