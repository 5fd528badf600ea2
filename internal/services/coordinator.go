package services

import (
	"context"
	"fmt"
	"time"

	"eventlisting/internal/domain"
)

type coordinatorService struct {
	coordinatorRepo domain.EventCoordinatorRepository
	userRepo        domain.UserRepository
	contextTimeout  time.Duration
}

func NewCoordinatorService(coordinatorRepo domain.EventCoordinatorRepository, userRepo domain.UserRepository, timeout time.Duration) domain.CoordinatorService {
	return &coordinatorService{
		coordinatorRepo: coordinatorRepo,
		userRepo:        userRepo,
		contextTimeout:  timeout,
	}
}

// CreateCoordinator links the optional user before validating, so a user email satisfies the email rule.
func (s *coordinatorService) CreateCoordinator(ctx context.Context, c *domain.EventCoordinator) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if c.UserID != nil {
		user, err := s.userRepo.GetByID(ctx, *c.UserID)
		if err != nil {
			return fmt.Errorf("load coordinator user: %w", err)
		}
		c.User = user
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return s.coordinatorRepo.Create(ctx, c)
}

func (s *coordinatorService) GetCoordinator(ctx context.Context, id string) (*domain.EventCoordinator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.coordinatorRepo.GetByID(ctx, id)
}

func (s *coordinatorService) DeleteCoordinator(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.coordinatorRepo.Delete(ctx, id)
}
