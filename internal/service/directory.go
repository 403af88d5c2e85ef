package service

import (
	"context"
	"errors"
	"fmt"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"shiplyne/internal/repo"
	"shiplyne/internal/repo/repo_errors"
)

type DirectoryService struct {
	locationRepo repo.Location
	userRepo     repo.User
	vehicleRepo  repo.Vehicle
}

func NewDirectoryService(repos *repo.Repositories) *DirectoryService {
	return &DirectoryService{
		locationRepo: repos.Location,
		userRepo:     repos.User,
		vehicleRepo:  repos.Vehicle,
	}
}

func (s *DirectoryService) GetLocations(ctx context.Context) ([]entity.Location, error) {
	locations, err := s.locationRepo.GetLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GetLocations: %w", err)
	}

	return locations, nil
}

func (s *DirectoryService) GetUsers(ctx context.Context, userType string) ([]entity.User, error) {
	if userType != "" {
		if _, err := common.ParseRole(userType); err != nil {
			return nil, ErrInvalidRole
		}
	}

	users, err := s.userRepo.GetUsers(ctx, userType)
	if err != nil {
		return nil, fmt.Errorf("service.GetUsers: %w", err)
	}

	return users, nil
}

func (s *DirectoryService) GetUser(ctx context.Context, userId string) (*entity.User, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, fmt.Errorf("service.GetUser: %w", err)
	}

	return user, nil
}

func (s *DirectoryService) GetVehiclesByOwner(ctx context.Context, ownerId string) ([]entity.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetVehiclesByOwner(ctx, ownerId)
	if err != nil {
		return nil, fmt.Errorf("service.GetVehiclesByOwner: %w", err)
	}

	return vehicles, nil
}
