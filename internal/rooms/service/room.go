package service

import (
	"context"

	"roombook/internal/rooms/repository"
	"roombook/pkg/logger"
	"roombook/pkg/model"
)

type RoomService interface {
	List(ctx context.Context) ([]*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
}

type roomService struct {
	repo repository.RoomRepository
	log  *logger.Logger
}

func NewRoomService(repo repository.RoomRepository, log *logger.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log,
	}
}

func (s *roomService) List(_ context.Context) ([]*model.Room, error) {
	return s.repo.FindAll(), nil
}

func (s *roomService) GetByID(_ context.Context, id string) (*model.Room, error) {
	room, err := s.repo.FindByID(id)
	if err != nil {
		s.log.Debug("Room lookup failed", "id", id, "error", err)
		return nil, err
	}
	return room, nil
}
