package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/config"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/repository"
	"gestao-associado-svc/pkg/logger"
	"gestao-associado-svc/pkg/utils"
)

// Role values carried in the auth token
const (
	RoleAdmin  = "admin"
	RoleMember = "associado"
)

// AuthClaims are the JWT claims issued on login
type AuthClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult carries the issued token and the authenticated identity
type LoginResult struct {
	Token       string `json:"token"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	MemberID    *uint  `json:"member_id,omitempty"`
}

// AuthService authenticates credentials and manages passwords
type AuthService interface {
	Login(username string, password string) (*LoginResult, error)
	Register(in MemberInput, password string) (*models.Member, error)
	ChangePassword(username string, newPassword string) error
}

// authService implements AuthService
type authService struct {
	credentialRepo repository.CredentialRepository
	memberRepo     repository.MemberRepository
	memberService  MemberService
	jwtConfig      config.JWTConfig
	logger         *logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	credentialRepo repository.CredentialRepository,
	memberRepo repository.MemberRepository,
	memberService MemberService,
	jwtConfig config.JWTConfig,
	logger *logger.Logger,
) AuthService {
	return &authService{
		credentialRepo: credentialRepo,
		memberRepo:     memberRepo,
		memberService:  memberService,
		jwtConfig:      jwtConfig,
		logger:         logger,
	}
}

// Login verifies the password for a username and issues a signed token. The
// username is accepted either as stored or in the masked national-id form.
func (s *authService) Login(username string, password string) (*LoginResult, error) {
	credential, err := s.credentialRepo.FindByUsername(username)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		// A member may log in with the masked form of their national id;
		// the stored username is always the bare digits.
		if digits := utils.CPFDigits(username); len(digits) == 11 && digits != username {
			credential, err = s.credentialRepo.FindByUsername(digits)
		}
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	role := RoleAdmin
	var memberID *uint
	member, err := s.memberRepo.FindByCredentialID(credential.ID)
	if err == nil {
		role = RoleMember
		memberID = &member.ID
	} else if !errors.Is(err, apperrors.ErrMemberNotFound) {
		return nil, err
	}

	token, err := s.issueToken(credential, role)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"credential_id": credential.ID,
		"role":          role,
	}).Info("Login succeeded")

	return &LoginResult{
		Token:       token,
		Role:        role,
		DisplayName: credential.DisplayName,
		MemberID:    memberID,
	}, nil
}

// Register creates a member with its credential; the initial password is
// hashed here before being handed to the member service
func (s *authService) Register(in MemberInput, password string) (*models.Member, error) {
	if len(password) < 4 {
		return nil, apperrors.NewValidation("password must have at least 4 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.memberService.Create(in, string(hash))
}

// ChangePassword replaces the password of an existing credential
func (s *authService) ChangePassword(username string, newPassword string) error {
	if len(newPassword) < 4 {
		return apperrors.NewValidation("password must have at least 4 characters")
	}

	lookup := username
	if digits := utils.CPFDigits(username); len(digits) == 11 {
		lookup = digits
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.credentialRepo.UpdatePassword(lookup, string(hash)); err != nil {
		return err
	}

	s.logger.WithField("username", lookup).Info("Password updated")

	return nil
}

// issueToken signs an HS256 token for the credential
func (s *authService) issueToken(credential *models.Credential, role string) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		Username: credential.Username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(credential.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.jwtConfig.ExpiryHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
