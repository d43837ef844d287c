// Package auth implements the dashboard's sign-in boundary: a
// registered-user list and a current-session record held in the same
// key-value store as the fleet data, plus bearer tokens for the HTTP
// surface. Credentials are stored and compared in plaintext; this is an
// in-browser role-selection convenience, explicitly not a security
// mechanism.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"

	"github.com/fleetflow/fleetflow/internal/models"
	"github.com/fleetflow/fleetflow/internal/storage"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNoSession          = errors.New("no active session")
)

// Claims carries the identity attached to each request.
type Claims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   models.Role `json:"role"`
	Exp    int64       `json:"exp"`
}

// Service handles authentication operations.
type Service struct {
	kv        storage.KV
	jwtSecret []byte
	tokenExp  time.Duration
	now       func() time.Time
}

// NewService creates a new authentication service over the given store.
func NewService(kv storage.KV) (*Service, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-key-change-in-production"
	}

	expStr := os.Getenv("JWT_EXPIRY")
	exp := 24 * time.Hour // default 24 hours
	if expStr != "" {
		if parsed, err := time.ParseDuration(expStr); err == nil {
			exp = parsed
		}
	}

	return &Service{
		kv:        kv,
		jwtSecret: []byte(secret),
		tokenExp:  exp,
		now:       time.Now,
	}, nil
}

// Register adds a user to the registered-user list, persists it, and logs
// the new user straight in.
func (s *Service) Register(ctx context.Context, email, password, name string, role models.Role) (models.User, string, error) {
	if err := s.ValidateEmail(email); err != nil {
		return models.User{}, "", err
	}
	if password == "" {
		return models.User{}, "", errors.New("password is required")
	}
	if !models.IsValidRole(role) {
		return models.User{}, "", ErrInvalidRole
	}

	users := s.registeredUsers(ctx)
	for _, u := range users {
		if u.Email == email {
			return models.User{}, "", ErrEmailTaken
		}
	}

	user := models.User{
		ID:       models.NewID("u"),
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
	}
	users = append(users, user)
	if err := s.saveRegisteredUsers(ctx, users); err != nil {
		return models.User{}, "", err
	}

	return s.openSession(ctx, user)
}

// Login compares the supplied credentials against the registered-user
// list and, on a match, persists the session record with the password
// stripped.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, string, error) {
	for _, u := range s.registeredUsers(ctx) {
		if u.Email == email && u.Password == password {
			return s.openSession(ctx, u)
		}
	}
	return models.User{}, "", ErrInvalidCredentials
}

// Logout removes the current-session record.
func (s *Service) Logout(ctx context.Context) error {
	return s.kv.Delete(ctx, storage.KeyUser)
}

// CurrentSession returns the persisted session record, if any.
func (s *Service) CurrentSession(ctx context.Context) (*models.User, error) {
	value, err := s.kv.Get(ctx, storage.KeyUser)
	if err != nil {
		if err == storage.ErrNotFound {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var session models.User
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		log.WithError(err).Warn("malformed session record, treating as absent")
		return nil, ErrNoSession
	}
	return &session, nil
}

func (s *Service) openSession(ctx context.Context, user models.User) (models.User, string, error) {
	session := user.Session()

	payload, err := json.Marshal(session)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyUser, string(payload)); err != nil {
		return models.User{}, "", fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := s.GenerateToken(session)
	if err != nil {
		return models.User{}, "", err
	}
	return session, token, nil
}

// registeredUsers loads the registered-user list; a missing or malformed
// value yields an empty list.
func (s *Service) registeredUsers(ctx context.Context) []models.User {
	value, err := s.kv.Get(ctx, storage.KeyRegisteredUsers)
	if err != nil {
		if err != storage.ErrNotFound {
			log.WithError(err).Warn("failed to read registered users")
		}
		return nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(value), &users); err != nil {
		log.WithError(err).Warn("malformed registered-user list, treating as empty")
		return nil
	}
	return users
}

func (s *Service) saveRegisteredUsers(ctx context.Context, users []models.User) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize registered users: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyRegisteredUsers, string(payload)); err != nil {
		return fmt.Errorf("failed to persist registered users: %w", err)
	}
	return nil
}

// GenerateToken generates a bearer token for a user session.
func (s *Service) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    string(user.Role),
		"exp":     s.now().Add(s.tokenExp).Unix(),
		"iat":     s.now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken validates a bearer token and returns the claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	// Remove "Bearer " prefix if present
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	name, _ := claims["name"].(string)

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   models.Role(roleStr),
		Exp:    int64(exp),
	}, nil
}

// ExtractTokenFromHeader extracts token from Authorization header.
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// ValidateEmail validates email format.
func (s *Service) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.New("invalid email format")
	}
	return nil
}
