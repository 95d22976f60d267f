package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bizdesk/internal/config"
	"bizdesk/internal/db"
	"bizdesk/internal/model"
	"bizdesk/internal/repository"
)

// seedUser is a default directory entry with a plaintext password that is
// hashed at seed time.
type seedUser struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	Phone      string
}

var defaultUsers = []seedUser{
	{Name: "Arben Krasniqi", Email: "arben@bizdesk.local", Password: "admin123", Role: "admin", Department: "Administrata", Phone: "+383 44 100 100"},
	{Name: "Blerta Gashi", Email: "blerta@bizdesk.local", Password: "manager123", Role: "manager", Department: "Shitjet", Phone: "+383 44 200 200"},
	{Name: "Driton Berisha", Email: "driton@bizdesk.local", Password: "tech123", Role: "technician", Department: "Servisi", Phone: "+383 44 300 300"},
	{Name: "Fjolla Hoxha", Email: "fjolla@bizdesk.local", Password: "agent123", Role: "agent", Department: "Pranimi", Phone: "+383 44 400 400"},
}

func main() {
	log.Println("Starting seed script...")

	_ = godotenv.Load()
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	seeded, updated, err := seedUsers(ctx, userRepo, defaultUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", seeded)
	log.Printf("  - Existing users updated: %d", updated)
}

// seedUsers creates missing default users and refreshes role and contact
// fields of existing ones. Passwords are only set on creation.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []seedUser) (seeded int, updated int, err error) {
	for _, u := range users {
		existing, err := repo.FindByEmail(ctx, u.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return seeded, updated, err
		}

		if existing != nil {
			existing.Name = u.Name
			existing.Role = u.Role
			existing.Department = u.Department
			existing.Phone = u.Phone
			if err := repo.Update(ctx, existing); err != nil {
				return seeded, updated, err
			}
			updated++
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), 10)
		if err != nil {
			return seeded, updated, err
		}
		user := &model.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hashed),
			Role:         u.Role,
			Department:   u.Department,
			Phone:        u.Phone,
		}
		if err := repo.Create(ctx, user); err != nil {
			return seeded, updated, err
		}
		seeded++
	}

	return seeded, updated, nil
}
