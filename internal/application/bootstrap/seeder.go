// Package bootstrap siembra los datos por defecto de desarrollo: dos
// cuentas con credenciales conocidas y las categorías de base. El toggle
// SEED_DEFAULT_DATA permite desactivarlo fuera de desarrollo.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/gbgescom/supermarche-api/internal/domain/entity"
	"github.com/gbgescom/supermarche-api/internal/domain/repository"
	"github.com/gbgescom/supermarche-api/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Cuentas por defecto. Son públicas y documentadas: existen por paridad con
// los entornos de desarrollo y demo, no para producción.
var defaultUsers = []struct {
	Username   string
	Password   string
	NomComplet string
	Role       string
}{
	{Username: "admin", Password: "admin123", NomComplet: "Administrateur", Role: entity.RoleAdmin},
	{Username: "user", Password: "user123", NomComplet: "Utilisateur", Role: entity.RoleUtilisateur},
}

var defaultCategories = []string{"ELECTRICITE", "MENAGE", "PLOMBERIE"}

// Seeder crea usuarios y categorías por defecto cuando las tablas están
// vacías. Nunca crea productos.
type Seeder struct {
	userRepo      repository.UserRepository
	categorieRepo repository.CategorieRepository
	log           *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(userRepo repository.UserRepository, categorieRepo repository.CategorieRepository, log *logger.Logger) *Seeder {
	return &Seeder{userRepo: userRepo, categorieRepo: categorieRepo, log: log}
}

// Run ejecuta el sembrado. Solo actúa sobre tablas vacías: los datos
// existentes nunca se tocan.
func (s *Seeder) Run() error {
	if err := s.seedUsers(); err != nil {
		return err
	}
	return s.seedCategories()
}

func (s *Seeder) seedUsers() error {
	count, err := s.userRepo.Count()
	if err != nil {
		return fmt.Errorf("contar usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, def := range defaultUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(def.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashear password por defecto: %w", err)
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			Username:     def.Username,
			PasswordHash: string(hash),
			NomComplet:   def.NomComplet,
			Role:         def.Role,
			DateCreation: time.Now(),
		}
		if err := s.userRepo.Create(user); err != nil {
			return fmt.Errorf("crear usuario por defecto %q: %w", def.Username, err)
		}
		s.log.Info().Str("username", def.Username).Str("role", def.Role).Msg("usuario por defecto creado")
	}
	return nil
}

func (s *Seeder) seedCategories() error {
	count, err := s.categorieRepo.Count()
	if err != nil {
		return fmt.Errorf("contar categorías: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, nom := range defaultCategories {
		cat := &entity.Categorie{
			ID:           uuid.New().String(),
			Nom:          nom,
			DateCreation: time.Now(),
		}
		if err := s.categorieRepo.Create(cat); err != nil {
			return fmt.Errorf("crear categoría %q: %w", nom, err)
		}
	}
	s.log.Info().Int("categories", len(defaultCategories)).Msg("categorías de base creadas")
	return nil
}
