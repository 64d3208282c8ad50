package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"sareeMarket/domain"
	"sareeMarket/pkg/logger"
	"sareeMarket/pkg/utils"
)

// Sessions are valid for a fixed week from issuance.
const TokenTTL = 7 * 24 * time.Hour

// Store contract interface
type Store interface {
	View(ctx context.Context, fn func(*domain.Document) error) error
	Update(ctx context.Context, fn func(*domain.Document) error) error
}

// AuthService issues session tokens from a user identity. Login is
// passwordless: anyone claiming a registered mobile number is
// authenticated. That is the documented behavior of this demo and is
// not suitable for a real deployment.
type AuthService struct {
	store        Store
	validate     *validator.Validate
	jwtSecret    string
	adminMobiles map[string]bool
}

func NewAuthService(store Store, validate *validator.Validate, jwtSecret string, adminMobiles []string) *AuthService {
	allow := make(map[string]bool, len(adminMobiles))
	for _, m := range adminMobiles {
		allow[m] = true
	}

	return &AuthService{
		store:        store,
		validate:     validate,
		jwtSecret:    jwtSecret,
		adminMobiles: allow,
	}
}

// Register creates a user keyed by mobile number and returns a fresh
// session token. The admin flag is set when the mobile is on the
// configured allow-list.
func (s *AuthService) Register(ctx context.Context, name, mobile string) (string, domain.User, error) {
	if err := s.validate.Var(name, "required"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: name and mobile required", domain.ErrValidation)
	}

	if err := s.validate.Var(mobile, "required"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: name and mobile required", domain.ErrValidation)
	}

	user := domain.User{
		ID:      uuid.NewString(),
		Name:    name,
		Mobile:  mobile,
		IsAdmin: s.adminMobiles[mobile],
	}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		for _, u := range doc.Users {
			if u.Mobile == mobile {
				return fmt.Errorf("%w: mobile already registered", domain.ErrConflict)
			}
		}

		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return "", domain.User{}, err
	}

	token, err := utils.GenerateJWT(user, s.jwtSecret, TokenTTL)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return "", domain.User{}, err
	}

	return token, user, nil
}

// Login returns a fresh token for an existing identity. No secret is
// checked beyond knowledge of the registered mobile number.
func (s *AuthService) Login(ctx context.Context, mobile string) (string, domain.User, error) {
	if err := s.validate.Var(mobile, "required"); err != nil {
		return "", domain.User{}, fmt.Errorf("%w: mobile required", domain.ErrValidation)
	}

	var user domain.User
	err := s.store.View(ctx, func(doc *domain.Document) error {
		for _, u := range doc.Users {
			if u.Mobile == mobile {
				user = u
				return nil
			}
		}

		return fmt.Errorf("%w: mobile not registered", domain.ErrNotFound)
	})
	if err != nil {
		return "", domain.User{}, err
	}

	token, err := utils.GenerateJWT(user, s.jwtSecret, TokenTTL)
	if err != nil {
		logger.Error("Failed to sign token", err)
		return "", domain.User{}, err
	}

	return token, user, nil
}
