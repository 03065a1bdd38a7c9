package postgres

import (
	"context"
	"log/slog"

	"insurai/internal/domain/entity"
	"insurai/internal/domain/service"
	"insurai/internal/errors"
	"insurai/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uaeStates is the fixed emirate reference data. IDs are stable so that
// clients and seed fixtures can rely on them.
var uaeStates = []model.StateModel{
	{ID: 1, Name: "Abu Dhabi", Code: "AD"},
	{ID: 2, Name: "Dubai", Code: "DU"},
	{ID: 3, Name: "Sharjah", Code: "SH"},
	{ID: 4, Name: "Ajman", Code: "AJ"},
	{ID: 5, Name: "Umm Al Quwain", Code: "UAQ"},
	{ID: 6, Name: "Ras Al Khaimah", Code: "RAK"},
	{ID: 7, Name: "Fujairah", Code: "FU"},
}

const (
	defaultAdminEmail    = "admin@insurai.com"
	defaultAdminPassword = "Admin@123"
	defaultAdminName     = "System Administrator"
	defaultAdminStateID  = 2 // Dubai
)

// Migrate creates the schema and seeds the reference data: the seven
// emirates and the default admin account. Seeding is idempotent; existing
// rows are left untouched.
func Migrate(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.StateModel{},
		&model.UserModel{},
		&model.ProviderModel{},
		&model.PlanModel{},
		&model.ChatHistoryModel{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&uaeStates).Error; err != nil {
		return errors.Wrap(err, "seed states failed")
	}

	return seedAdmin(ctx, db, hasher, logger)
}

func seedAdmin(ctx context.Context, db *gorm.DB, hasher service.PasswordHasher, logger *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", defaultAdminEmail).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "check admin account failed")
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(defaultAdminPassword)
	if err != nil {
		return errors.Wrap(err, "hash admin password failed")
	}

	admin := model.UserModel{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FullName:     defaultAdminName,
		Role:         entity.RoleAdmin.String(),
		StateID:      defaultAdminStateID,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return errors.Wrap(err, "seed admin account failed")
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Seeded default admin account",
		slog.String("email", defaultAdminEmail),
	)

	return nil
}
