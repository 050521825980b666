package services

import (
	"errors"
	"time"

	"regeve-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleOrganizer = "organizer"
	RoleVoter     = "voter"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) RegisterOrganizer(username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	organizer := models.Organizer{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&organizer).Error; err != nil {
		if isUniqueViolation(err) {
			return "", errors.New("username already taken")
		}
		return "", err
	}

	return s.GenerateToken(organizer.ID, RoleOrganizer)
}

func (s *AuthService) LoginOrganizer(username, password string) (string, error) {
	var organizer models.Organizer
	if err := s.db.Where("username = ?", username).First(&organizer).Error; err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return s.GenerateToken(organizer.ID, RoleOrganizer)
}

func (s *AuthService) RegisterVoter(username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	voter := models.Voter{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&voter).Error; err != nil {
		if isUniqueViolation(err) {
			return "", errors.New("username already taken")
		}
		return "", err
	}

	return s.GenerateToken(voter.ID, RoleVoter)
}

func (s *AuthService) LoginVoter(username, password string) (string, error) {
	var voter models.Voter
	if err := s.db.Where("username = ?", username).First(&voter).Error; err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(voter.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return s.GenerateToken(voter.ID, RoleVoter)
}

func (s *AuthService) GenerateToken(subjectID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", errors.New("invalid subject claim")
	}
	role, ok := claims["role"].(string)
	if !ok || (role != RoleOrganizer && role != RoleVoter) {
		return 0, "", errors.New("invalid role claim")
	}

	return uint(sub), role, nil
}
