package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/varunhirthik/warehouse-management/internal/application/auth"
	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/domain"
	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  map[string]*entity.User
	nextID int64
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.Username]; ok {
		return domain.ErrUsernameTaken
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	for _, u := range f.users {
		if u.ID == id {
			u.LastLogin = &at
		}
	}
	return nil
}

type fakeDepartmentRepo struct {
	departments map[int64]*entity.Department
}

func (f *fakeDepartmentRepo) Create(_ context.Context, _ *entity.Department) error { return nil }
func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*entity.Department, error) {
	return f.departments[id], nil
}
func (f *fakeDepartmentRepo) ListByName(_ context.Context) ([]*entity.Department, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-para-jwt"

// newUseCase arma el caso de uso con el usuario "ana" (password "secreta123",
// staff del departamento 1) ya registrado.
func newUseCase(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	deptID := int64(1)
	users := &fakeUserRepo{
		nextID: 1,
		users: map[string]*entity.User{
			"ana": {
				ID:           1,
				Username:     "ana",
				PasswordHash: string(hash),
				Role:         entity.RoleStaff,
				DepartmentID: &deptID,
				FullName:     "Ana Gómez",
				CreatedAt:    time.Now(),
			},
		},
	}
	departments := &fakeDepartmentRepo{departments: map[int64]*entity.Department{
		1: {ID: 1, Name: "Beverages & Snacks"},
	}}
	uc := auth.NewAuthUseCase(users, departments, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "warehouse-management",
	})
	return uc, users
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, users := newUseCase(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)
	assert.Equal(t, entity.RoleStaff, out.User.Role)

	// Los claims del token reflejan al usuario autenticado.
	userID, role, deptID, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, entity.RoleStaff, role)
	assert.Equal(t, int64(1), deptID)

	// El login actualiza last_login.
	require.NotNil(t, users.users["ana"].LastLogin)
	assert.WithinDuration(t, time.Now(), *users.users["ana"].LastLogin, time.Minute)
	assert.NotNil(t, out.User.LastLogin)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, users := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, users.users["ana"].LastLogin, "un login fallido no toca last_login")
}

// Usuario inexistente y password incorrecta producen el mismo error: no se
// distingue cuál de los dos falló.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_StaffConDepartamento(t *testing.T) {
	uc, users := newUseCase(t)
	deptID := int64(1)

	out, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username:     "beto",
		Password:     "password123",
		Role:         entity.RoleStaff,
		DepartmentID: &deptID,
		FullName:     "Beto Ruiz",
	})
	require.NoError(t, err)

	assert.Equal(t, "beto", out.Username)
	require.NotNil(t, out.DepartmentID)
	assert.Equal(t, int64(1), *out.DepartmentID)

	// El password nunca se guarda en claro.
	stored := users.users["beto"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

// Un manager no necesita departamento: ve todos.
func TestCreateUser_ManagerSinDepartamento(t *testing.T) {
	uc, _ := newUseCase(t)

	out, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "gerente",
		Password: "password123",
		Role:     entity.RoleManager,
		FullName: "Gerente General",
	})
	require.NoError(t, err)
	assert.Nil(t, out.DepartmentID)
}

func TestCreateUser_RolInvalido(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "x",
		Password: "password123",
		Role:     "admin",
		FullName: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_StaffSinDepartamento(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "x",
		Password: "password123",
		Role:     entity.RoleStaff,
		FullName: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_DepartamentoInexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	deptID := int64(99)

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username:     "x",
		Password:     "password123",
		Role:         entity.RoleStaff,
		DepartmentID: &deptID,
		FullName:     "X",
	})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestCreateUser_UsernameDuplicado(t *testing.T) {
	uc, _ := newUseCase(t)
	deptID := int64(1)

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username:     "ana",
		Password:     "password123",
		Role:         entity.RoleStaff,
		DepartmentID: &deptID,
		FullName:     "Otra Ana",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestUserInfo(t *testing.T) {
	uc, _ := newUseCase(t)

	out, err := uc.UserInfo(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)

	_, err = uc.UserInfo(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
