package dto

import "time"

// LoginRequest body para POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos del usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest body para POST /users (solo manager).
// DepartmentID es obligatorio salvo que role sea manager.
type CreateUserRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	DepartmentID *int64 `json:"department_id"`
	FullName     string `json:"full_name"`
}

// UserResponse usuario sin hash de contraseña.
type UserResponse struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Role         string     `json:"role"`
	DepartmentID *int64     `json:"department_id"`
	FullName     string     `json:"full_name"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

// UserListResponse respuesta de GET /users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}
