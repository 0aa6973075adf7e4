package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/classicmodels-api/internal/config"
	"github.com/classicmodels-api/internal/domain"
)

// User - учётная запись пользователя API
type User struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type account struct {
	user         User
	passwordHash []byte
}

// Service выпускает и проверяет JWT токены доступа.
// Хранилище пользователей - в памяти, заполняется из конфигурации
type Service struct {
	secret []byte
	ttl    time.Duration
	users  map[string]account
}

// NewService создаёт сервис аутентификации с одним администратором
// из конфигурации
func NewService(cfg config.AuthConfig) (*Service, error) {
	s := &Service{
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenTTLMin) * time.Minute,
		users:  make(map[string]account),
	}

	if err := s.addUser(User{
		Username: cfg.AdminUsername,
		FullName: "Administrator",
		Email:    cfg.AdminUsername + "@classicmodels.local",
	}, cfg.AdminPassword); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) addUser(user User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	s.users[user.Username] = account{user: user, passwordHash: hash}
	return nil
}

// Authenticate проверяет пару логин/пароль
func (s *Service) Authenticate(username, password string) (*User, error) {
	acc, ok := s.users[username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user := acc.user
	return &user, nil
}

// IssueToken выпускает HS256 токен для пользователя
func (s *Service) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken проверяет подпись и срок действия токена,
// возвращает имя пользователя из claim "sub"
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", domain.ErrInvalidToken
	}

	return sub, nil
}

// UserByName возвращает пользователя по имени
func (s *Service) UserByName(username string) (*User, error) {
	acc, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := acc.user
	return &user, nil
}
