package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/muebleria-api/internal/application/auth"
	"github.com/tu-usuario/muebleria-api/internal/application/dto"
	"github.com/tu-usuario/muebleria-api/internal/domain"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/muebleria-api/pkg/jwt"
)

type memUserRepo struct {
	items map[string]*entity.User // por email
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.items[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.items[email], nil
}

func newAuthUC() (*auth.AuthUseCase, *memUserRepo) {
	repo := &memUserRepo{items: make(map[string]*entity.User)}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "muebleria-api-test",
	})
	return uc, repo
}

func TestRegisterUser_RolPorDefectoEmpleado(t *testing.T) {
	uc, repo := newAuthUC()

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@muebleria.es", Password: "contraseña-larga", Name: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmpleado, user.Role)
	assert.Equal(t, "active", user.Status)

	stored, err := repo.FindByEmail("ana@muebleria.es")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestRegisterUser_PasswordCorta(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@muebleria.es", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@muebleria.es", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@muebleria.es", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConRolDelUsuario(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@muebleria.es", Password: "contraseña-larga", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	session, err := uc.Login(dto.LoginRequest{Email: "ana@muebleria.es", Password: "contraseña-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	userID, role, err := pkgjwt.Parse("test-secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@muebleria.es", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@muebleria.es", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@muebleria.es", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
