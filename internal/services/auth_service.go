package services

import (
	"errors"
	"fmt"
	"strings"

	apierrors "github.com/markjessn/mini-pms/internal/errors"
	"github.com/markjessn/mini-pms/internal/models"
	"github.com/markjessn/mini-pms/internal/repository"
	"github.com/markjessn/mini-pms/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// User-facing messages surfaced through the mutation envelope.
const (
	MsgEmailTaken         = "Email already exists."
	MsgInvalidCredentials = "Invalid email or password."
	MsgAccountDisabled    = "Account is disabled."
	MsgCannotDeleteAdmin  = "Cannot delete org admin."
)

// AuthService handles registration, login, and member administration.
type AuthService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

// Register atomically creates an organization and its admin user. Partial
// failure leaves neither created.
func (s *AuthService) Register(input validation.RegisterInput) (*models.User, error) {
	return runMutation(
		func() *validation.Errors { return validation.ValidateRegisterInput(input) },
		func() error {
			if err := s.ensureEmailAvailable(normalizeEmail(input.Email)); err != nil {
				return err
			}
			return s.ensureRegisterSlugAvailable(normalizeSlug(input.OrganizationSlug))
		},
		func() (*models.User, error) {
			hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, ErrFailedToHashPassword
			}

			org := &models.Organization{
				Name:         strings.TrimSpace(input.OrganizationName),
				Slug:         normalizeSlug(input.OrganizationSlug),
				ContactEmail: normalizeEmail(input.Email),
			}
			user := &models.User{
				Email:        normalizeEmail(input.Email),
				Name:         strings.TrimSpace(input.Name),
				Role:         models.RoleOrgAdmin,
				IsActive:     true,
				PasswordHash: string(hashed),
			}

			if err := s.userRepo.RegisterOwner(org, user); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, repository.ErrCreateOrganization) {
					return nil, apierrors.NewConflictError(MsgSlugTaken)
				}
				if errors.Is(err, repository.ErrCreateUser) {
					return nil, apierrors.NewConflictError(MsgEmailTaken)
				}
				return nil, fmt.Errorf("failed to complete registration: %w", err)
			}

			user.Organization = org
			return user, nil
		},
	)
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns the authenticated user. It issues
// no session token; the transport layer owns sessions.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	errs := &validation.Errors{}
	if msg := validation.Required(input.Email, "Email"); msg != "" {
		errs.Add(msg)
	}
	if msg := validation.Required(input.Password, "Password"); msg != "" {
		errs.Add(msg)
	}
	if errs.HasErrors() {
		return nil, apierrors.NewValidationError(errs.GetErrors())
	}

	user, err := s.userRepo.FindByEmail(normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return user, nil
}

// CreateOrgMember creates an ORG_MEMBER user inside an existing organization.
func (s *AuthService) CreateOrgMember(input validation.MemberInput, organizationID uint64) (*models.User, error) {
	return runMutation(
		func() *validation.Errors { return validation.ValidateMemberInput(input) },
		func() error {
			if _, err := resolveParent(func() (*models.Organization, error) {
				return s.orgRepo.FindByID(organizationID)
			}, "Organization"); err != nil {
				return err
			}
			return s.ensureEmailAvailable(normalizeEmail(input.Email))
		},
		func() (*models.User, error) {
			hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, ErrFailedToHashPassword
			}

			user := &models.User{
				Email:          normalizeEmail(input.Email),
				Name:           strings.TrimSpace(input.Name),
				OrganizationID: &organizationID,
				Role:           models.RoleOrgMember,
				IsActive:       true,
				PasswordHash:   string(hashed),
			}

			if err := s.userRepo.Create(user); err != nil {
				return nil, translateDuplicate(err, MsgEmailTaken)
			}
			return user, nil
		},
	)
}

// DeleteOrgMember removes a member. Admin accounts cannot be deleted through
// this path.
func (s *AuthService) DeleteOrgMember(userID uint64) error {
	user, err := resolveParent(func() (*models.User, error) {
		return s.userRepo.FindByID(userID)
	}, "User")
	if err != nil {
		return err
	}

	if user.Role == models.RoleOrgAdmin {
		return apierrors.NewForbiddenError(MsgCannotDeleteAdmin)
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) ensureEmailAvailable(email string) error {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return apierrors.NewConflictError(MsgEmailTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

func (s *AuthService) ensureRegisterSlugAvailable(slug string) error {
	if _, err := s.orgRepo.FindBySlug(slug); err == nil {
		return apierrors.NewConflictError(MsgSlugTaken)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	return nil
}
