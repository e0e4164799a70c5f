package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"partyrental/internal/repository"
)

type AdminAuthService interface {
	Login(email, password string) (string, error)
	CreateAdmin(email, password string) error
}

type adminAuthService struct {
	repo repository.AdminAuthRepository
}

func NewAdminAuthService(repo repository.AdminAuthRepository) AdminAuthService {
	return &adminAuthService{repo: repo}
}

func (s *adminAuthService) Login(email, password string) (string, error) {
	admin, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      time.Now().Add(time.Hour * 8).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *adminAuthService) CreateAdmin(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password cannot be empty")
	}
	return s.repo.CreateAdmin(email, password)
}
