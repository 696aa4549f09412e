package application

import (
	"errors"

	"github.com/nsu-ctrg/grant-review/internal/domain/user"
	"github.com/nsu-ctrg/grant-review/internal/repository"
	"github.com/nsu-ctrg/grant-review/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.RegisterDTO) (*user.User, error) {
	if _, err := s.Repos.User.GetUserByUsername(input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	u := user.User{
		Username: input.Username,
		Password: hashed,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     string(user.RolePI),
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if err := s.Repos.User.CreateUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate checks credentials and returns the account on success.
func (s *UserService) Authenticate(username, password string) (*user.User, error) {
	u, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

func (s *UserService) Get(uid uint) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *UserService) List() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) ListByRole(role string) ([]user.User, error) {
	return s.Repos.User.ListUsersByRole(role)
}

func (s *UserService) Update(uid uint, input user.UpdateUserDTO) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.FullName != nil {
		u.FullName = input.FullName
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hashed
	}
	if err := s.Repos.User.UpdateUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
