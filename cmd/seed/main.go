// seed crea el esquema y carga los datos de arranque del café:
// los dos departamentos, el catálogo de productos con sus costos, el stock
// inicial (imports en el ledger) y los usuarios de demostración.
//
// Uso: go run ./cmd/seed
// Es idempotente: si ya hay productos o usuarios no vuelve a cargarlos.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/varunhirthik/warehouse-management/internal/domain"
	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
	"github.com/varunhirthik/warehouse-management/internal/infrastructure/postgres"
	"github.com/varunhirthik/warehouse-management/pkg/config"
	"github.com/varunhirthik/warehouse-management/pkg/logger"
)

// catálogo inicial del café: nombre, costo unitario y departamento destino.
type seedProduct struct {
	name       string
	costPrice  string
	department string
	initial    int64 // stock inicial (import)
}

var seedDepartments = []string{"Beverages & Snacks", "Kitchen"}

var seedProducts = []seedProduct{
	{"Coffee Beans (kg)", "15.0", "Beverages & Snacks", 10},
	{"Tea Leaves (kg)", "12.0", "Beverages & Snacks", 5},
	{"Sugar (kg)", "3.0", "Beverages & Snacks", 20},
	{"Milk (L)", "2.5", "Beverages & Snacks", 15},
	{"Biscuits (packet)", "1.5", "Beverages & Snacks", 50},
	{"Chips (packet)", "2.0", "Beverages & Snacks", 30},
	{"Cold Drink Bottles", "1.0", "Beverages & Snacks", 100},
	{"Rice (kg)", "8.0", "Kitchen", 25},
	{"Dosa Batter (L)", "5.0", "Kitchen", 10},
	{"Idli Batter (L)", "4.5", "Kitchen", 8},
	{"Oil (L)", "6.0", "Kitchen", 5},
	{"Onions (kg)", "2.0", "Kitchen", 15},
	{"Tomatoes (kg)", "3.0", "Kitchen", 12},
	{"Bread (loaf)", "1.5", "Kitchen", 20},
	{"Eggs (dozen)", "4.0", "Kitchen", 10},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Service: cfg.App.Name, Env: cfg.App.Env, Level: "info"}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema verificado")

	departmentRepo := postgres.NewDepartmentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Departamentos: Create es idempotente (recupera el id si ya existen).
	deptIDs := make(map[string]int64, len(seedDepartments))
	for _, name := range seedDepartments {
		dept := &entity.Department{Name: name}
		if err := departmentRepo.Create(ctx, dept); err != nil {
			log.Fatal().Err(err).Str("department", name).Msg("seed departamento")
		}
		deptIDs[name] = dept.ID
	}

	// Catálogo y stock inicial: solo la primera vez.
	var productCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&productCount); err != nil {
		log.Fatal().Err(err).Msg("contar productos")
	}
	if productCount == 0 {
		now := time.Now()
		for _, sp := range seedProducts {
			cost, err := decimal.NewFromString(sp.costPrice)
			if err != nil {
				log.Fatal().Err(err).Str("product", sp.name).Msg("costo inválido")
			}
			product := &entity.Product{Name: sp.name, CostPrice: cost}
			if err := productRepo.Create(ctx, product); err != nil {
				log.Fatal().Err(err).Str("product", sp.name).Msg("seed producto")
			}
			if err := transactionRepo.Create(ctx, &entity.InventoryTransaction{
				ProductID:      product.ID,
				DepartmentID:   deptIDs[sp.department],
				QuantityChange: sp.initial,
				Type:           entity.TypeImport,
				SellingPrice:   decimal.Zero,
				Timestamp:      now,
			}); err != nil {
				log.Fatal().Err(err).Str("product", sp.name).Msg("seed stock inicial")
			}
		}
		log.Info().Int("products", len(seedProducts)).Msg("catálogo y stock inicial cargados")
	} else {
		log.Info().Msg("catálogo ya presente, se omite")
	}

	// Usuarios de demostración: un manager y un staff por departamento.
	seedUser(ctx, log, userRepo, "manager", "manager123", entity.RoleManager, nil, "Cafe Manager")
	for _, name := range seedDepartments {
		id := deptIDs[name]
		username := staffUsername(name)
		seedUser(ctx, log, userRepo, username, username+"123", entity.RoleStaff, &id, name+" Staff")
	}

	log.Info().Msg("seed completado")
}

// seedUser crea el usuario si no existe; el duplicado no es error.
func seedUser(ctx context.Context, log *logger.Logger, repo *postgres.UserRepo, username, password, role string, departmentID *int64, fullName string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("hash de password")
	}
	err = repo.Create(ctx, &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		DepartmentID: departmentID,
		FullName:     fullName,
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, domain.ErrUsernameTaken) {
		log.Info().Str("username", username).Msg("usuario ya existe, se omite")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("seed usuario")
	}
	log.Info().Str("username", username).Str("role", role).Msg("usuario creado")
}

// staffUsername deriva un username corto del nombre del departamento,
// ej. "Beverages & Snacks" → "beverages".
func staffUsername(department string) string {
	first := department
	for i, r := range department {
		if r == ' ' {
			first = department[:i]
			break
		}
	}
	out := make([]rune, 0, len(first))
	for _, r := range first {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}
	return string(out)
}
