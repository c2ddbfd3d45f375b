package repository

import (
	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID with roles preloaded
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email with roles preloaded
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users with roles preloaded, ordered by surname
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Roles").Order("surname ASC, name ASC, id ASC").Find(&users).Error
	return users, err
}

// GetEnabled retrieves all enabled users with roles preloaded
func (r *UserRepository) GetEnabled() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Roles").Where("enabled = ?", true).
		Order("surname ASC, name ASC, id ASC").Find(&users).Error
	return users, err
}

// ExistsByEmail checks whether a user with the given email exists
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update updates a user and replaces the role association
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Roles").Save(user).Error; err != nil {
			return err
		}
		return tx.Model(user).Association("Roles").Replace(user.Roles)
	})
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
