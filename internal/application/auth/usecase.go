package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/varunhirthik/warehouse-management/internal/application/dto"
	"github.com/varunhirthik/warehouse-management/internal/domain"
	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/internal/domain/repository"
	"github.com/varunhirthik/warehouse-management/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y administración de usuarios:
// login con bcrypt + JWT, alta de usuarios (solo manager) y consulta.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	departmentRepo repository.DepartmentRepository
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, departmentRepo repository.DepartmentRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, departmentRepo: departmentRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, actualiza last_login y genera el JWT.
// Credenciales inválidas devuelven siempre ErrUnauthorized, sin distinguir
// usuario inexistente de contraseña incorrecta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	if err := uc.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	var deptID int64
	if user.DepartmentID != nil {
		deptID = *user.DepartmentID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, deptID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// CreateUser da de alta un usuario: valida rol y departamento, hashea el
// password con bcrypt y persiste. Username duplicado devuelve ErrUsernameTaken.
// La restricción "solo manager" la impone el middleware de la ruta.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" || in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	// department_id es obligatorio salvo para managers, que ven todos.
	var deptID *int64
	if in.Role != entity.RoleManager {
		if in.DepartmentID == nil {
			return nil, domain.ErrInvalidInput
		}
		dept, err := uc.departmentRepo.GetByID(ctx, *in.DepartmentID)
		if err != nil {
			return nil, err
		}
		if dept == nil {
			return nil, domain.ErrDepartmentNotFound
		}
		deptID = in.DepartmentID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		DepartmentID: deptID,
		FullName:     in.FullName,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers devuelve todos los usuarios (solo manager, impuesto en la ruta).
func (uc *AuthUseCase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, *toUserResponse(u))
	}
	return out, nil
}

// UserInfo devuelve los datos del usuario autenticado.
func (uc *AuthUseCase) UserInfo(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		FullName:     u.FullName,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}
