package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/utils"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when login email/password do not match
var ErrInvalidCredentials = errors.New("invalid email or password")

// PassTokenType marks tokens embedded in guest pass QR codes
const PassTokenType = "visitor_access"

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	Login(email, password string) (string, *models.Profile, error)
	GenerateToken(profile *models.Profile) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	GeneratePassToken(visitor *models.Visitor) (string, error)
}

// JWTService provides token issuance and validation
type JWTService struct {
	DB        *gorm.DB
	secretKey string
	issuer    string
}

// JWTClaims defines the claims carried by login tokens
type JWTClaims struct {
	UserID string  `json:"user_id"`
	Role   string  `json:"role"`
	UnitID *string `json:"unit_id,omitempty"`
	jwt.RegisteredClaims
}

// PassClaims defines the claims carried by guest pass tokens
type PassClaims struct {
	VisitorName string `json:"visitor_name"`
	Type        string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		DB:        db,
		secretKey: cfg.JWTSecretKey,
		issuer:    "gss-os",
	}
}

// Login verifies credentials and issues a token
func (s *JWTService) Login(email, password string) (string, *models.Profile, error) {
	var profile models.Profile
	if err := s.DB.Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, profile.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&profile)
	if err != nil {
		return "", nil, err
	}
	return token, &profile, nil
}

// GenerateToken generates a login token valid for 24 hours
func (s *JWTService) GenerateToken(profile *models.Profile) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID: profile.ID,
		Role:   string(profile.Role),
		UnitID: profile.UnitID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken validates a token string
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims extracts typed claims from a token string
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}

	if userID, ok := claims["user_id"].(string); ok {
		jwtClaims.UserID = userID
	}
	if role, ok := claims["role"].(string); ok {
		jwtClaims.Role = role
	}
	if unitID, ok := claims["unit_id"].(string); ok {
		jwtClaims.UnitID = &unitID
	}

	return jwtClaims, nil
}

// GeneratePassToken signs a QR token for a guest pass, expiring at the end of
// the pass's access date (UTC)
func (s *JWTService) GeneratePassToken(visitor *models.Visitor) (string, error) {
	accessDate, err := time.ParseInLocation(models.AccessDateLayout, visitor.AccessDate, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid access date on visitor %s: %w", visitor.ID, err)
	}
	expiresAt := accessDate.Add(24 * time.Hour)

	claims := &PassClaims{
		VisitorName: visitor.VisitorName,
		Type:        PassTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   visitor.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}
