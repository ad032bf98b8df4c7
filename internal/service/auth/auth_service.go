package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	tokens "github.com/harishrd0x/flight-reservation-system/internal/auth"
	"github.com/harishrd0x/flight-reservation-system/internal/domain"
	"github.com/harishrd0x/flight-reservation-system/internal/repository"
)

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens *tokens.TokenManager
}

type RegisterInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Password     string `json:"password"`
	DOB          string `json:"dob"`
	Address      string `json:"address"`
	ZipCode      string `json:"zip_code"`
	Gender       string `json:"gender"`
}

type UpdateProfileInput struct {
	Name         *string `json:"name"`
	MobileNumber *string `json:"mobile_number"`
	DOB          *string `json:"dob"`
	Address      *string `json:"address"`
	ZipCode      *string `json:"zip_code"`
	Gender       *string `json:"gender"`
}

func NewAuthService(users repository.UserRepository, tm *tokens.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tm}
}

// Register always creates a CUSTOMER. The repository inserts the user
// and their zero-balance wallet in one transaction.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.MobileNumber == "" {
		return nil, domain.Validation("name, email and mobile number are required")
	}
	if len(input.Password) < 8 {
		return nil, domain.Validation("password must be at least 8 characters")
	}

	taken, err := s.users.EmailOrMobileExists(ctx, input.Email, input.MobileNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	dob, err := parseDOB(input.DOB)
	if err != nil {
		return nil, err
	}
	var gender domain.Gender
	if input.Gender != "" {
		gender, err = domain.ParseGender(input.Gender)
		if err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		MobileNumber: input.MobileNumber,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		DOB:          dob,
		Address:      input.Address,
		ZipCode:      input.ZipCode,
		Gender:       gender,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.MobileNumber != nil {
		user.MobileNumber = *input.MobileNumber
	}
	if input.DOB != nil {
		dob, err := parseDOB(*input.DOB)
		if err != nil {
			return nil, err
		}
		user.DOB = dob
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.ZipCode != nil {
		user.ZipCode = *input.ZipCode
	}
	if input.Gender != nil {
		gender, err := domain.ParseGender(*input.Gender)
		if err != nil {
			return nil, err
		}
		user.Gender = gender
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func parseDOB(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.Validation("dob must be in ISO format (YYYY-MM-DD)")
	}
	return &dob, nil
}

var _ AuthUseCase = (*AuthService)(nil)
