package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-directory/internal/auth"
	"github.com/spec-kit/employee-directory/internal/config"
	"github.com/spec-kit/employee-directory/internal/domain"
	"github.com/spec-kit/employee-directory/internal/observability"
	"github.com/spec-kit/employee-directory/internal/persistence"
	"github.com/spec-kit/employee-directory/internal/repository"
)

// create_user seeds or resets a login: the stored secret is always a bcrypt hash.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/create_user <employee_id> <password> [admin|regular]")
		os.Exit(2)
	}
	employeeID := strings.TrimSpace(os.Args[1])
	password := os.Args[2]
	role := domain.RoleRegular
	if len(os.Args) > 3 {
		parsed, ok := domain.ParseRole(os.Args[3])
		if !ok {
			log.Fatalf("unknown role %q: want admin or regular", os.Args[3])
		}
		role = parsed
	}
	if employeeID == "" || password == "" {
		log.Fatal("employee_id and password must not be empty")
	}

	_ = godotenv.Load()
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	if dsn == "" {
		log.Fatal("POSTGRES_DSN not set in environment")
	}

	logger, err := observability.NewLogger(config.LoggerConfig{Level: "warn"})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, config.PostgresConfig{DSN: dsn}, logger)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer pg.Close()

	if err := persistence.RunMigrations(pg.PoolHandle(), logger); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	hash, err := auth.HashPassword(password, bcryptCost())
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}

	accounts := repository.NewAccountRepository(pg.PoolHandle())
	account := &domain.Account{EmployeeID: employeeID, PasswordHash: hash, Role: role}
	err = accounts.Create(ctx, account)
	switch {
	case err == nil:
		fmt.Printf("created user %s access=%s\n", employeeID, role)
	case errors.Is(err, repository.ErrDuplicate):
		if err := accounts.Update(ctx, account); err != nil {
			log.Fatalf("failed to reset user: %v", err)
		}
		fmt.Printf("reset user %s access=%s\n", employeeID, role)
	default:
		logger.Error("create user failed", zap.String("employee_id", employeeID), zap.Error(err))
		log.Fatalf("failed to create user: %v", err)
	}
}

func bcryptCost() int {
	cost, err := strconv.Atoi(os.Getenv("AUTH_BCRYPT_COST"))
	if err != nil {
		return 12
	}
	return cost
}
