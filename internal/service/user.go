package service

import (
	"construction_web/internal/models"
	"construction_web/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(user *models.User) error {
	return s.userRepo.Create(user)
}

func (s *UserService) GetUserByPhone(phone string) (*models.User, error) {
	return s.userRepo.FindByPhone(phone)
}
