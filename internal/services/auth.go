package services

import (
	"errors"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/storage"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the placeholder credential system. Credentials are
// bcrypt-hashed into the key-value store and logins return signed access
// and refresh tokens, but nothing in the quiz core consumes them; only
// the settings routes check the access token.
type AuthService struct {
	store     *storage.Service
	jwtSecret []byte
}

func NewAuthService(store *storage.Service, jwtSecret string) *AuthService {
	return &AuthService{store: store, jwtSecret: []byte(jwtSecret)}
}

// RegisterResult echoes the registered user back to the caller.
type RegisterResult struct {
	Status string `json:"status"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenPair carries the access and refresh tokens issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *AuthService) Register(email, password, role string) (*RegisterResult, error) {
	if _, exists := s.store.GetUser(email); exists {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = "user"
	}
	user := storage.UserRecord{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.store.SaveUser(user); err != nil {
		return nil, err
	}

	return &RegisterResult{Status: "active", Email: email, Role: role}, nil
}

func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	user, exists := s.store.GetUser(email)
	if !exists {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	access, err := s.generateToken(email, "access", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(email, "refresh", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) generateToken(email, kind string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"kind": kind,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken checks an access token and returns the subject email.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("invalid subject in token")
	}
	if kind, _ := claims["kind"].(string); kind != "access" {
		return "", errors.New("not an access token")
	}
	return sub, nil
}
