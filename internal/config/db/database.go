package db

import (
	"fmt"
	"log"

	"github.com/nsu-ctrg/grant-review/internal/config"
	"github.com/nsu-ctrg/grant-review/internal/domain/audit"
	"github.com/nsu-ctrg/grant-review/internal/domain/cycle"
	"github.com/nsu-ctrg/grant-review/internal/domain/proposal"
	"github.com/nsu-ctrg/grant-review/internal/domain/review"
	"github.com/nsu-ctrg/grant-review/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate runs AutoMigrate for every entity in dependency order.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&cycle.GrantCycle{},
		&proposal.Proposal{},
		&proposal.Stage1Decision{},
		&proposal.FinalDecision{},
		&review.ReviewerProfile{},
		&review.ReviewAssignment{},
		&review.Stage1Score{},
		&review.Stage2Review{},
		&audit.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
