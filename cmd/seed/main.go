package main

import (
	"log"
	"os"
	"time"

	"eventdesk/internal/database"
	"eventdesk/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "eventdesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.Equipment{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123!"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@eventdesk.local",
		PasswordHash: string(adminHash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("creating admin:", err)
	}

	opsHash, _ := bcrypt.GenerateFromPassword([]byte("ops12345"), bcrypt.DefaultCost)
	ops := domain.User{
		Email:        "ops@eventdesk.local",
		PasswordHash: string(opsHash),
		Name:         "Operations",
		Role:         domain.RoleMember,
	}
	if err := db.Create(&ops).Error; err != nil {
		log.Fatal("creating ops user:", err)
	}

	// ================== EQUIPMENT ==================
	log.Println("Creating equipment...")

	equipment := []domain.Equipment{
		{ID: uuid.NewString(), Name: "Tent", Qty: 5, Note: "6x12m frame tents"},
		{ID: uuid.NewString(), Name: "Speaker", Qty: 12, Note: "powered, pairs"},
		{ID: uuid.NewString(), Name: "Stage", Qty: 2, Note: "modular 2x1m decks"},
		{ID: uuid.NewString(), Name: "Truss", Qty: 20},
		{ID: uuid.NewString(), Name: "Generator", Qty: 3, Note: "60kVA diesel"},
	}
	for i := range equipment {
		if err := db.Create(&equipment[i]).Error; err != nil {
			log.Fatal("creating equipment:", err)
		}
	}

	// ================== PROJECTS ==================
	log.Println("Creating projects...")

	projects := []domain.Project{
		{
			ID: uuid.NewString(), Name: "Riverside Wedding", Client: "Chen family",
			Location: "Riverside Park", Status: domain.StatusConfirmed,
			StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 15),
			Revenue: 180000, Cost: 95000, Quote: 200000,
			EquipmentsUsed: []domain.UsageEntry{
				{Name: "Tent", Qty: 3},
				{Name: "Speaker", Qty: 4},
			},
		},
		{
			// overlaps the wedding and over-books tents: 3+3 > 5
			ID: uuid.NewString(), Name: "Summer Expo", Client: "Acme",
			Location: "Hall B", Status: domain.StatusExecuting,
			StartDate: day(2024, 6, 10), EndDate: day(2024, 6, 15),
			Revenue: 420000, Cost: 260000, Quote: 450000,
			EquipmentsUsed: []domain.UsageEntry{
				{Name: "Tent", Qty: 3},
				{Name: "Stage", Qty: 1},
				{Name: "Truss", Qty: 12},
			},
		},
		{
			ID: uuid.NewString(), Name: "Spring Tour Finale", Client: "Globex",
			Location: "City Arena", Status: domain.StatusClosed,
			StartDate: day(2024, 5, 28), EndDate: day(2024, 6, 3),
			Revenue: 310000, Cost: 205000, Quote: 310000,
			EquipmentsUsed: []domain.UsageEntry{
				{Name: "Stage", Qty: 2},
				{Name: "Generator", Qty: 2},
			},
		},
		{
			ID: uuid.NewString(), Name: "Autumn Gala", Client: "Initech",
			Location: "Grand Hotel", Status: domain.StatusPlanning,
			StartDate: day(2024, 9, 20), EndDate: day(2024, 9, 21),
			Quote: 150000,
		},
	}
	for i := range projects {
		if err := db.Create(&projects[i]).Error; err != nil {
			log.Fatal("creating project:", err)
		}
	}

	log.Printf("Seeded %d users, %d equipment, %d projects", 2, len(equipment), len(projects))
	log.Println("June 2024 has an intentional Tent shortage (6 needed, 5 available)")
}

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}
