package services

import (
	"context"

	"deskhub/domain/dto"
)

type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
}
