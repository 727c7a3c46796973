package service

import (
	"doctorportal/internal/db"
	"doctorportal/internal/repository"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserService struct {
	Repo   repository.UserRepository
	Secret []byte
}

func NewUserService(repo repository.UserRepository, secret []byte) *UserService {
	return &UserService{Repo: repo, Secret: secret}
}

// Upsert stores or refreshes the profile and mints an access token for the
// email. Upserting again with the same email is idempotent.
func (s *UserService) Upsert(email string, user *db.User) (string, error) {
	if len(s.Secret) == 0 {
		return "", errors.New("ACCESS_TOKEN_SECRET not set")
	}
	user.Email = email
	if err := s.Repo.Upsert(user); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *UserService) List() ([]db.User, error) {
	return s.Repo.List()
}

// IsAdmin reports whether the email has a stored profile with the admin
// role. Unknown emails are simply not admins.
func (s *UserService) IsAdmin(email string) (bool, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == "admin", nil
}

func (s *UserService) Promote(email string) error {
	_, err := s.Repo.PromoteToAdmin(email)
	return err
}

func (s *UserService) Delete(email string) (int64, error) {
	return s.Repo.Delete(email)
}
