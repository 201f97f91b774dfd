package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ayursutra/backend/internal/config"
	"github.com/ayursutra/backend/internal/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	RolePatient      = "patient"
	RolePractitioner = "practitioner"
	RoleAdmin        = "admin"
)

// Service issues and verifies access tokens and manages credentials.
type Service struct {
	config *config.Config
	store  storage.Store
	now    func() time.Time
}

func NewService(cfg *config.Config, store storage.Store) *Service {
	return &Service{
		config: cfg,
		store:  store,
		now:    time.Now,
	}
}

// Register creates an account and returns a fresh access token.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	role := req.Role
	if role == "" {
		role = RolePatient
	}
	if role != RolePatient && role != RolePractitioner && role != RoleAdmin {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &storage.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     strings.TrimSpace(req.FullName),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.createRoleProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("create %s profile: %w", role, err)
	}

	return s.tokenResponse(user)
}

// createRoleProfile seeds the profile row that matches the account role, so a
// fresh practitioner is listable and a fresh patient has a profile to update.
// Admins carry no profile table.
func (s *Service) createRoleProfile(ctx context.Context, user *storage.User) error {
	switch user.Role {
	case RolePatient:
		return s.store.CreatePatientProfile(ctx, &storage.PatientProfile{UserID: user.ID})
	case RolePractitioner:
		return s.store.CreatePractitioner(ctx, &storage.Practitioner{
			UserID:         user.ID,
			Specialization: "General",
			Available:      true,
		})
	}
	return nil
}

// Login verifies credentials and returns a fresh access token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

func (s *Service) tokenResponse(user *storage.User) (*TokenResponse, error) {
	ttl := time.Duration(s.config.JWTTTLMinutes) * time.Minute
	token, err := s.generateJWT(user.ID, user.Role, ttl)
	if err != nil {
		return nil, fmt.Errorf("generate JWT: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}

func (s *Service) generateJWT(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iss":  s.config.JWTIssuer,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// VerifyJWT validates the token and returns the subject user ID and role.
func (s *Service) VerifyJWT(tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return userID, role, nil
}
