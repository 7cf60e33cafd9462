package main

import (
	"log"

	"crm-master-api/config"
	"crm-master-api/internal/admin"
	"crm-master-api/internal/auth"
	"crm-master-api/internal/logs"
	"crm-master-api/internal/master"
	"crm-master-api/internal/middlewares"
	"crm-master-api/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openDB(cfg config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		name := cfg.DBName
		if name == "" {
			name = "crm_master.db"
		}
		return gorm.Open(sqlite.Open(name), &gorm.Config{})
	}

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	models := master.AllModels()
	models = append(models, &auth.User{}, &logs.SystemLog{})
	return db.AutoMigrate(models...)
}

func seedAdminUser(db *gorm.DB, userService *auth.AuthService) error {
	var count int64
	if err := db.Model(&auth.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := util.HashPassword("admin123")
	if err != nil {
		return err
	}
	_, err = userService.CreateUser(auth.User{
		FirstName: "System",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  hashed,
		Role:      "Admin",
	})
	return err
}

func main() {
	cfg := config.LoadConfig()

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	logService := &logs.LogService{DB: db}
	userService := &auth.AuthService{DB: db, CFG: &cfg}
	masterService := master.NewMasterService(db)
	adminService := &admin.AdminService{DB: db}

	if cfg.SeedData == "true" {
		if err := master.Seed(db); err != nil {
			log.Fatal("Failed to seed master data:", err)
		}
		if err := seedAdminUser(db, userService); err != nil {
			log.Fatal("Failed to seed admin user:", err)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth.RegisterRoutes(r, userService, logService)
	logs.RegisterRoutes(r, logService, middlewares.AuthMiddleware())
	admin.RegisterRoutes(r, adminService)

	// Resource routes use a path parameter, so they go last and static
	// groups above keep precedence.
	master.RegisterRoutes(r, masterService, middlewares.AuthMiddleware())

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
