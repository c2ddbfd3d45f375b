package repository

import (
	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a new role
func (r *RoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// GetByID retrieves a role by ID
func (r *RoleRepository) GetByID(id uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByName retrieves a role by its unique name
func (r *RoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByNameAndType retrieves a role by name restricted to a role type
func (r *RoleRepository) GetByNameAndType(name string, roleType models.RoleType) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "name = ? AND type = ?", name, roleType).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetAll retrieves all roles ordered by sort order
func (r *RoleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("sort_order ASC, id ASC").Find(&roles).Error
	return roles, err
}

// GetByType retrieves roles of the given type ordered by sort order
func (r *RoleRepository) GetByType(roleType models.RoleType) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Where("type = ?", roleType).Order("sort_order ASC, id ASC").Find(&roles).Error
	return roles, err
}

// GetByNames retrieves all roles whose names are in the given set
func (r *RoleRepository) GetByNames(names []string) ([]models.Role, error) {
	var roles []models.Role
	if len(names) == 0 {
		return roles, nil
	}
	err := r.db.Where("name IN ?", names).Find(&roles).Error
	return roles, err
}

// ExistsByName checks whether a role with the given name exists
func (r *RoleRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// MaxSortOrderForType returns the highest sort order among roles of the type,
// or 0 when none exist
func (r *RoleRepository) MaxSortOrderForType(roleType models.RoleType) (int64, error) {
	var max *int64
	err := r.db.Model(&models.Role{}).Where("type = ?", roleType).
		Select("MAX(sort_order)").Scan(&max).Error
	if err != nil || max == nil {
		return 0, err
	}
	return *max, nil
}

// Update updates a role
func (r *RoleRepository) Update(role *models.Role) error {
	return r.db.Save(role).Error
}

// Delete deletes a role
func (r *RoleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Role{}, "id = ?", id).Error
}

// CountTaskReferences counts tasks that allow or are supervised by the role
func (r *RoleRepository) CountTaskReferences(roleID uuid.UUID) (int64, error) {
	var allowed int64
	if err := r.db.Table("task_allowed_roles").Where("role_id = ?", roleID).Count(&allowed).Error; err != nil {
		return 0, err
	}
	var supervised int64
	if err := r.db.Model(&models.Task{}).Where("supervisor_role_id = ?", roleID).Count(&supervised).Error; err != nil {
		return 0, err
	}
	return allowed + supervised, nil
}

// CountUserReferences counts users holding the role
func (r *RoleRepository) CountUserReferences(roleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("user_roles").Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
