// Comando create_admin: alta de un administrador fuera del panel.
//
//	go run ./cmd/create_admin <usuario> <contraseña>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jhoicas/woodini-site/internal/application/auth"
	"github.com/jhoicas/woodini-site/internal/domain"
	"github.com/jhoicas/woodini-site/internal/infrastructure/postgres"
	"github.com/jhoicas/woodini-site/pkg/config"
	"github.com/jhoicas/woodini-site/pkg/password"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "uso: create_admin <usuario> <contraseña>")
		return 1
	}
	username, plain := args[0], args[1]

	// Antes de tocar la base: una contraseña corta se rechaza aunque no haya conexión.
	if err := password.Validate(plain); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "cargar configuración:", err)
		return 1
	}
	if err := cfg.RequireDatabase(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintln(stderr, "conexión a PostgreSQL:", err)
		return 1
	}
	defer pool.Close()

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool))
	user, err := uc.CreateAdmin(ctx, username, plain)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Fprintf(stderr, "el usuario %q ya existe\n", username)
		return 1
	case err != nil:
		fmt.Fprintln(stderr, "crear administrador:", err)
		return 1
	}

	fmt.Fprintf(stdout, "Administrador %q creado (ID: %s). Deberá cambiar la contraseña en el primer acceso.\n", user.Username, user.ID)
	return 0
}
