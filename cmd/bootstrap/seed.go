package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the default roles and, when username is set and not yet taken,
// an initial admin account. Running it twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, log *logrus.Logger, username, password string) error {
	roleRepo := repository.NewRoleRepository()
	userRepo := repository.NewUserRepository()

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := roleRepo.EnsureExists(ctx, tx, entity.DefaultRoles()); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	if username != "" {
		if password == "" {
			return errors.New("admin password is required when an admin username is given")
		}

		existing, err := userRepo.FindByUsername(ctx, tx, username)
		if err != nil {
			return fmt.Errorf("failed to look up admin: %w", err)
		}
		if existing == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			admin := &entity.User{
				RoleID:   entity.RoleIDAdmin,
				Username: username,
				Password: string(hash),
				IsActive: true,
			}
			if err := userRepo.Create(ctx, tx, admin); err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}
			log.Infof("Created admin user %q", username)
		} else {
			log.Infof("Admin user %q already exists", username)
		}
	}

	return tx.Commit().Error
}
