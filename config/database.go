package config

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"idea-management-api/models"
)

// InitDB connects to MySQL, migrates the schema and seeds reference data.
func InitDB(cfg *Config) *gorm.DB {
	// In production, suppress SQL logs unless explicitly re-enabled via DEBUG_SQL=true.
	logLevel := logger.Info
	if cfg.Environment == "production" && !cfg.DebugSQL {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Idea{},
		&models.Comment{},
		&models.IdeaStatusHistory{},
		&models.Attachment{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedRoles(db)

	log.Println("Database connected successfully")
	return db
}

// seedRoles inserts the fixed role set if missing. Roles are reference data
// and are never deleted while referenced.
func seedRoles(db *gorm.DB) {
	roles := []models.Role{
		{RoleName: models.RoleTeamMember, Description: "Submits and manages own ideas"},
		{RoleName: models.RoleTeamLead, Description: "Reviews all ideas, decides status and views metrics"},
	}
	for _, role := range roles {
		if err := db.Where("role_name = ?", role.RoleName).FirstOrCreate(&role).Error; err != nil {
			log.Fatal("Failed to seed roles:", err)
		}
	}
}
