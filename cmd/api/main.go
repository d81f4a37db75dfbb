package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"eventdesk/internal/database"
	"eventdesk/internal/domain"
	"eventdesk/internal/middleware"
	"eventdesk/internal/modules/auth"
	"eventdesk/internal/modules/calendar"
	"eventdesk/internal/modules/equipment"
	"eventdesk/internal/modules/live"
	"eventdesk/internal/modules/projects"
	"eventdesk/internal/modules/report"
	jwtsvc "eventdesk/internal/pkg/jwt"
	"eventdesk/internal/planning"
	"eventdesk/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "eventdesk.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Project{},
		&domain.Equipment{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	overuseCache := planning.NewCache()
	hub := live.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	projectService := projects.NewService(projectRepo, overuseCache, hub)
	projectHandler := projects.NewHandler(projectService)

	equipmentService := equipment.NewService(equipmentRepo, overuseCache, hub)
	equipmentHandler := equipment.NewHandler(equipmentService)

	calendarService := calendar.NewService(projectRepo, equipmentRepo, overuseCache)
	calendarHandler := calendar.NewHandler(calendarService)

	reportService := report.NewService(projectRepo)
	reportHandler := report.NewHandler(reportService)

	liveHandler := live.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		liveHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			equipmentHandler.RegisterRoutes(protected)
			calendarHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
