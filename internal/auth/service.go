package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"community-scheduler-backend/internal/config"
	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Claims is the JWT payload issued on login
type Claims struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	IsSupervisor bool      `json:"isSupervisor"`
	jwt.RegisteredClaims
}

// Service issues and validates tokens and handles both login flows
type Service struct {
	userRepo    repository.UserRepositoryInterface
	jwtSecret   []byte
	oauthConfig *oauth2.Config
}

// NewService creates a new auth service
func NewService(userRepo repository.UserRepositoryInterface, cfg *config.Config) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// LoginResponse carries the issued token and the authenticated user's identity
type LoginResponse struct {
	Token        string    `json:"token"`
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	IsSupervisor bool      `json:"isSupervisor"`
}

// Login authenticates a LOCAL account by email and password
func (s *Service) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueFor(user)
}

// GoogleAuthURL returns the provider consent URL for the given state
func (s *Service) GoogleAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// googleUserInfo is the subset of the provider's userinfo payload we read
type googleUserInfo struct {
	Email string `json:"email"`
}

// GoogleLogin exchanges the OAuth code, resolves the account by the provider
// email and issues a token. Accounts are provisioned by an admin beforehand;
// unknown emails are rejected.
func (s *Service) GoogleLogin(ctx context.Context, code string) (*LoginResponse, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, &apperrors.AuthenticationError{Message: "code exchange failed"}
	}

	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching user info: %w", err)
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding user info: %w", err)
	}
	if info.Email == "" {
		return nil, &apperrors.AuthenticationError{Message: "provider returned no email"}
	}

	user, err := s.userRepo.GetByEmail(info.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.AuthenticationError{Message: "no account for this email"}
		}
		return nil, err
	}
	return s.issueFor(user)
}

func (s *Service) issueFor(user *models.User) (*LoginResponse, error) {
	if !user.Enabled {
		return nil, &apperrors.AuthenticationError{Message: "account is disabled"}
	}

	now := time.Now()
	claims := &Claims{
		UserID:       user.ID,
		Email:        user.Email,
		IsSupervisor: user.IsSupervisor(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:        signed,
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Surname:      user.Surname,
		IsSupervisor: user.IsSupervisor(),
	}, nil
}

// ValidateToken parses and verifies a bearer token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, &apperrors.AuthenticationError{Message: "invalid or expired token"}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, &apperrors.AuthenticationError{Message: "invalid token claims"}
	}
	return claims, nil
}
