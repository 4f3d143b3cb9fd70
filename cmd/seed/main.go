// seed puebla la base de datos con un catálogo de muebles de ejemplo y un
// usuario administrador, para desarrollo local y demos.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración de entorno que cmd/api (DB_HOST, DB_USER, ...).
// La contraseña del admin se toma de SEED_ADMIN_PASSWORD (por defecto "cambiame123").
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/muebleria-api/internal/domain/entity"
	"github.com/tu-usuario/muebleria-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/muebleria-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

type seedItem struct {
	ftype, name, description, color, dimensions string
	price                                       string
	stock                                       int64
}

var catalogue = []seedItem{
	{"Sofa", "Sofá Mediterráneo", "Sofá de tres plazas tapizado en lino", "Beige", "220x95x88 cm", "899.00", 4},
	{"Table", "Mesa Roble Macizo", "Mesa de comedor extensible de roble", "Natural", "160x90x75 cm", "645.50", 6},
	{"Chair", "Silla Nórdica", "Silla de comedor con patas de haya", "Gris", "46x52x82 cm", "79.95", 24},
	{"Bed", "Cama Canapé Atlántico", "Cama con canapé abatible y somier", "Blanco", "150x190 cm", "520.00", 3},
	{"Wardrobe", "Armario Corredera Luna", "Armario de dos puertas correderas con espejo", "Roble", "200x60x220 cm", "730.00", 2},
	{"Desk", "Escritorio Estudio", "Escritorio con dos cajones y pasacables", "Nogal", "120x60x76 cm", "189.90", 8},
	{"Shelf", "Estantería Cubo", "Estantería modular de ocho cubos", "Blanco", "140x30x140 cm", "129.00", 10},
	{"Stool", "Taburete Industrial", "Taburete alto regulable de metal", "Negro", "38x38x65 cm", "45.00", 16},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fail("migración del esquema", err)
	}

	furnitureRepo := postgres.NewFurnitureRepository(pool)
	now := time.Now().UTC()
	created := 0
	for _, item := range catalogue {
		existing, err := furnitureRepo.GetByName(item.name)
		if err != nil {
			fail("consultar mueble "+item.name, err)
		}
		if existing != nil {
			continue
		}
		price, err := decimal.NewFromString(item.price)
		if err != nil {
			fail("precio de "+item.name, err)
		}
		err = furnitureRepo.Create(&entity.Furniture{
			ID:          uuid.NewString(),
			Type:        item.ftype,
			Name:        item.name,
			Description: item.description,
			Color:       item.color,
			Dimensions:  item.dimensions,
			Price:       price,
			Stock:       item.stock,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			fail("crear mueble "+item.name, err)
		}
		created++
	}

	userRepo := postgres.NewUserRepository(pool)
	adminEmail := "admin@muebleria.local"
	admin, err := userRepo.FindByEmail(adminEmail)
	if err != nil {
		fail("consultar usuario admin", err)
	}
	if admin == nil {
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "cambiame123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fail("hash de contraseña", err)
		}
		err = userRepo.Create(&entity.User{
			ID:           uuid.NewString(),
			Email:        adminEmail,
			PasswordHash: string(hash),
			Name:         "Administrador",
			Role:         entity.RoleAdmin,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			fail("crear usuario admin", err)
		}
		fmt.Printf("Usuario admin creado: %s\n", adminEmail)
	}

	fmt.Printf("Catálogo: %d muebles nuevos (de %d)\n", created, len(catalogue))
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
