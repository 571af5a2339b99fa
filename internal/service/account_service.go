package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

const minPasswordLength = 8

type AccountService struct {
	repo   UserRepository
	tokens *TokenManager
}

func NewAccountService(repo UserRepository, tokens *TokenManager) *AccountService {
	return &AccountService{repo: repo, tokens: tokens}
}

func (s *AccountService) Register(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("all fields are required: %w", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w",
			minPasswordLength, domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	return s.repo.CreateUser(user)
}

func (s *AccountService) Login(email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("email and password are required: %w", domain.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByEmail(email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrUnauthorized
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AccountService) Profile(userID int) (*domain.User, error) {
	return s.repo.GetUser(userID)
}

func (s *AccountService) UpdateProfile(userID int, username, email, newPassword string) error {
	if username == "" || email == "" {
		return fmt.Errorf("username and email are required: %w", domain.ErrInvalidInput)
	}

	var hash string
	if newPassword != "" {
		if len(newPassword) < minPasswordLength {
			return fmt.Errorf("password must be at least %d characters: %w",
				minPasswordLength, domain.ErrInvalidInput)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hash = string(hashed)
	}

	return s.repo.UpdateProfile(userID, username, email, hash)
}

func (s *AccountService) VerifyPassword(userID int, password string) error {
	if password == "" {
		return fmt.Errorf("password is required: %w", domain.ErrInvalidInput)
	}
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *AccountService) List() ([]domain.User, error) {
	return s.repo.ListUsers()
}

func (s *AccountService) Get(id int) (*domain.User, error) {
	return s.repo.GetUser(id)
}

func (s *AccountService) Create(username, email, password, role string) error {
	if username == "" || email == "" || password == "" {
		return fmt.Errorf("username, email, and password are required: %w", domain.ErrInvalidInput)
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return fmt.Errorf("role %q: %w", role, domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	return s.repo.CreateUser(user)
}

func (s *AccountService) Update(id int, username, email, role string) error {
	if username == "" || email == "" {
		return fmt.Errorf("username and email are required: %w", domain.ErrInvalidInput)
	}
	if role == "" {
		role = domain.RoleUser
	}
	return s.repo.UpdateUser(id, username, email, role)
}

func (s *AccountService) Delete(id int) error {
	return s.repo.DeleteUser(id)
}

var _ AccountServiceInterface = (*AccountService)(nil)
