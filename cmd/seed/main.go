// seed carga datos de demostración: un administrador, un usuario dueño de un negocio
// de ejemplo con productos, materias primas, tareas y transacciones.
//
// Uso: go run ./cmd/seed [-admin-email admin@bizness.id] [-admin-password ...]
// Aplica las migraciones antes de insertar. Es idempotente por email: si el dueño ya
// existe no se vuelve a crear el negocio.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bizness/bizness-api/internal/application/auth"
	"github.com/bizness/bizness-api/internal/application/dto"
	"github.com/bizness/bizness-api/internal/application/usecase"
	"github.com/bizness/bizness-api/internal/domain"
	"github.com/bizness/bizness-api/internal/domain/entity"
	"github.com/bizness/bizness-api/internal/infrastructure/postgres"
	"github.com/bizness/bizness-api/pkg/config"
	"github.com/bizness/bizness-api/pkg/logger"
)

func main() {
	adminEmail := flag.String("admin-email", "admin@bizness.id", "email del administrador")
	adminPassword := flag.String("admin-password", "admin12345", "password del administrador")
	ownerEmail := flag.String("owner-email", "demo@bizness.id", "email del usuario de demostración")
	ownerPassword := flag.String("owner-password", "demo12345", "password del usuario de demostración")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	if err := seedAdmin(ctx, userRepo, *adminEmail, *adminPassword); err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Str("email", *adminEmail).Msg("administrador listo")

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer})
	owner, err := authUC.RegisterUser(ctx, dto.RegisterRequest{Email: *ownerEmail, Password: *ownerPassword, FullName: "Siti Rahayu"})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		log.Info().Str("email", *ownerEmail).Msg("usuario de demostración ya existe; nada que hacer")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("crear usuario de demostración")
	}

	d := demo{
		businesses:   usecase.NewBusinessUseCase(postgres.NewBusinessRepository(pool)),
		products:     usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		materials:    usecase.NewMaterialUseCase(postgres.NewMaterialRepository(pool), postgres.NewTxRunner(pool), cfgThreshold(cfg), cfg.Inventory.TopN),
		todos:        usecase.NewTodoUseCase(postgres.NewTodoRepository(pool)),
		transactions: usecase.NewTransactionUseCase(postgres.NewTransactionRepository(pool)),
	}
	businessID, err := d.run(ctx, owner.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("datos de demostración")
	}
	log.Info().Str("email", *ownerEmail).Str("business_id", businessID).Msg("datos de demostración cargados")
}

func seedAdmin(ctx context.Context, users *postgres.UserRepo, email, password string) error {
	existing, err := users.GetByEmail(ctx, email)
	if err != nil || existing != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return users.Create(ctx, &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
