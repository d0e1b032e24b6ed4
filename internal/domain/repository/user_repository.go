package repository

import (
	"context"
	"time"

	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// UpdateLastLogin registra el instante de la última autenticación exitosa;
	// es la única mutación permitida sobre usuarios.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}
