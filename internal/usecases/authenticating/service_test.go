package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"github.com/osrsclan/event-manager-api/infrastructure/repository/mocks"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	cfg := &config.Config{SecretKey: "segredo-de-teste"}
	return NewService(users, cfg), users
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUserComPerfilPadrao(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().GetUserByEmail("novo@clan.gg").Return(nil, nil)
	users.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		assert.Equal(t, 3, user.RoleID)
		assert.False(t, user.Active)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
		user.ID = 7
		return user, nil
	})

	created, err := svc.CreateUser(&domain.User{
		Name:         "Novo",
		Lastname:     "Usuário",
		Email:        " Novo@Clan.GG ",
		PasswordHash: "Senha@123",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "novo@clan.gg", created.Email)
}

func TestCreateUserEmailJaCadastrado(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().GetUserByEmail("novo@clan.gg").Return(&domain.User{ID: 1}, nil)

	_, err := svc.CreateUser(&domain.User{
		Name:         "Novo",
		Lastname:     "Usuário",
		Email:        "novo@clan.gg",
		PasswordHash: "Senha@123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUserGeraTokenValido(t *testing.T) {
	svc, users := newAuthService(t)

	user := &domain.User{
		ID:           3,
		Name:         "Admin",
		Email:        "admin@clan.gg",
		PasswordHash: hashOf(t, "Senha@123"),
		Active:       true,
		RoleID:       1,
	}
	users.EXPECT().GetUserByEmail("admin@clan.gg").Return(user, nil)

	token, err := svc.LoginUser("Admin@Clan.GG", "Senha@123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, 1, claims.UserRoleID)
	assert.Equal(t, "admin@clan.gg", claims.UserEmail)
}

func TestLoginUserSenhaIncorreta(t *testing.T) {
	svc, users := newAuthService(t)

	user := &domain.User{
		ID:           3,
		Email:        "admin@clan.gg",
		PasswordHash: hashOf(t, "Senha@123"),
		Active:       true,
	}
	users.EXPECT().GetUserByEmail("admin@clan.gg").Return(user, nil)

	_, err := svc.LoginUser("admin@clan.gg", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserContaDesativada(t *testing.T) {
	svc, users := newAuthService(t)

	user := &domain.User{
		ID:           3,
		Email:        "admin@clan.gg",
		PasswordHash: hashOf(t, "Senha@123"),
		Active:       false,
	}
	users.EXPECT().GetUserByEmail("admin@clan.gg").Return(user, nil)

	_, err := svc.LoginUser("admin@clan.gg", "Senha@123")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestGenerateStrongPasswordExigeAdministrador(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().GetUserByID(5).Return(&domain.User{ID: 5, RoleID: 2}, nil)

	_, err := svc.GenerateStrongPassword(5, 9)
	assert.Error(t, err)
}

func TestGenerateStrongPasswordAtualizaSenhaDoAlvo(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: 1}, nil)
	users.EXPECT().GetUserByID(9).Return(&domain.User{ID: 9, RoleID: 3}, nil)

	var saved string
	users.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
		saved = user.PasswordHash
		return nil
	})

	password, err := svc.GenerateStrongPassword(1, 9)
	require.NoError(t, err)
	assert.NoError(t, svc.ValidatePasswordStrength(password))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved), []byte(password)))
}

func TestValidatePasswordStrength(t *testing.T) {
	svc, _ := newAuthService(t)

	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "senha forte", password: "Senha@123", valid: true},
		{name: "muito curta", password: "S@1a", valid: false},
		{name: "sem maiúscula", password: "senha@123", valid: false},
		{name: "sem número", password: "Senha@abc", valid: false},
		{name: "sem caractere especial", password: "Senha1234", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ValidatePasswordStrength(tc.password)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestChangePasswordSenhaAtualIncorreta(t *testing.T) {
	svc, users := newAuthService(t)

	user := &domain.User{ID: 3, PasswordHash: hashOf(t, "Senha@123")}
	users.EXPECT().GetUserByID(3).Return(user, nil)

	err := svc.ChangePassword(3, "errada", "Nova@Senha1")
	assert.Error(t, err)
}
