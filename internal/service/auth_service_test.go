package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gestao-associado-svc/internal/apperrors"
	"gestao-associado-svc/internal/config"
	"gestao-associado-svc/internal/models"
	"gestao-associado-svc/internal/repository"
)

var testJWTConfig = config.JWTConfig{
	Secret:      "test-secret",
	ExpiryHours: 1,
}

func newAuthFixture(t *testing.T) (AuthService, MemberService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	log := newTestLogger()
	credentialRepo := repository.NewCredentialRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	memberService := NewMemberService(memberRepo, db, log)
	authService := NewAuthService(credentialRepo, memberRepo, memberService, testJWTConfig, log)
	return authService, memberService, db
}

func seedAdmin(t *testing.T, db *gorm.DB, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Credential{
		Username:     "admin",
		DisplayName:  "Administrador",
		PasswordHash: string(hash),
		Active:       true,
	}).Error)
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	in := testMemberInput("Maria Souza")
	in.NationalID = "52998224725"
	member, err := auth.Register(in, "segredo")
	require.NoError(t, err)

	// Login with the bare-digit username.
	result, err := auth.Login("52998224725", "segredo")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, result.Role)
	assert.Equal(t, "Maria Souza", result.DisplayName)
	require.NotNil(t, result.MemberID)
	assert.Equal(t, member.ID, *result.MemberID)
	assert.NotEmpty(t, result.Token)

	// The masked national id works too.
	result, err = auth.Login("529.982.247-25", "segredo")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, result.Role)
}

func TestLogin_TokenCarriesUsernameAndRole(t *testing.T) {
	auth, _, db := newAuthFixture(t)
	seedAdmin(t, db, "1234")

	result, err := auth.Login("admin", "1234")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, result.Role)
	assert.Nil(t, result.MemberID)

	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTConfig.Secret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth, _, db := newAuthFixture(t)
	seedAdmin(t, db, "1234")

	_, err := auth.Login("admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = auth.Login("nobody", "1234")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_DisabledMemberLockedOut(t *testing.T) {
	auth, members, _ := newAuthFixture(t)

	in := testMemberInput("Pedro Alves")
	in.NationalID = "52998224725"
	member, err := auth.Register(in, "segredo")
	require.NoError(t, err)

	_, err = auth.Login("52998224725", "segredo")
	require.NoError(t, err)

	// Disabling the member deactivates the login in the same transaction.
	termination := date(2026, time.January, 31)
	in.Status = models.MemberStatusDisabled
	in.TerminationDate = &termination
	require.NoError(t, members.UpdateAll(member.ID, in))

	_, err = auth.Login("52998224725", "segredo")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Re-enabling restores access.
	in.Status = models.MemberStatusEnabled
	require.NoError(t, members.UpdateAll(member.ID, in))

	result, err := auth.Login("52998224725", "segredo")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, result.Role)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	auth, _, db := newAuthFixture(t)

	_, err := auth.Register(testMemberInput("Maria Souza"), "123")
	assert.True(t, apperrors.IsValidation(err))
	assert.EqualValues(t, 0, countRows(t, db, &models.Member{}))
}

func TestChangePassword(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	in := testMemberInput("Maria Souza")
	in.NationalID = "52998224725"
	_, err := auth.Register(in, "segredo")
	require.NoError(t, err)

	// The masked form is accepted as the username here too.
	require.NoError(t, auth.ChangePassword("529.982.247-25", "novo-segredo"))

	_, err = auth.Login("52998224725", "segredo")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	result, err := auth.Login("52998224725", "novo-segredo")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, result.Role)
}

func TestChangePassword_Validation(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	assert.True(t, apperrors.IsValidation(auth.ChangePassword("admin", "123")))
	assert.ErrorIs(t, auth.ChangePassword("nobody", "novo-segredo"), apperrors.ErrUserNotFound)
}
