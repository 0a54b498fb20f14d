package service

import (
	"context"
	"errors"

	catalogerrors "atlascars/internal/catalog/errors"
	"atlascars/internal/catalog/repository"
	"atlascars/pkg/config"
	apperrors "atlascars/pkg/errors"
	"atlascars/pkg/model"
)

type CarService interface {
	GetAll(ctx context.Context) ([]model.Car, error)
	GetByID(ctx context.Context, id string) (*model.Car, error)
}

type carService struct {
	repo repository.CarRepository
	cfg  *config.Config
}

func NewCarService(repo repository.CarRepository, cfg *config.Config) CarService {
	return &carService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *carService) GetAll(ctx context.Context) ([]model.Car, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list cars", "error", err)
		return nil, apperrors.Internal("Failed to retrieve cars", err)
	}

	return cars, nil
}

func (s *carService) GetByID(ctx context.Context, id string) (*model.Car, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Car ID cannot be empty")
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrNotFound) {
			return nil, apperrors.NotFound("Car")
		}
		if errors.Is(err, catalogerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid car ID format")
		}
		s.cfg.Log.Error("Failed to retrieve car", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve car", err)
	}

	return car, nil
}
