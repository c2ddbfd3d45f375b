package main

import (
	"community-scheduler-backend/internal/config"
	"community-scheduler-backend/internal/database"
	"community-scheduler-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RoleData struct {
	Name                    string `yaml:"name"`
	Type                    string `yaml:"type"`
	SortOrder               int64  `yaml:"sort_order"`
	AssignedTasksGroupName  string `yaml:"assigned_tasks_group_name,omitempty"`
	AreTasksVisibleInPrints bool   `yaml:"are_tasks_visible_in_prints"`
}

type TaskData struct {
	Name                  string   `yaml:"name"`
	NameAbbrev            string   `yaml:"name_abbrev"`
	ParticipantsLimit     int      `yaml:"participants_limit"`
	SupervisorRoleName    string   `yaml:"supervisor_role_name"`
	AllowedRoleNames      []string `yaml:"allowed_role_names"`
	DaysOfWeek            []string `yaml:"days_of_week"`
	SortOrder             int64    `yaml:"sort_order"`
	Permanent             bool     `yaml:"permanent"`
	VisibleInObstacleForm bool     `yaml:"visible_in_obstacle_form"`
}

type UserData struct {
	Email     string   `yaml:"email"`
	Name      string   `yaml:"name"`
	Surname   string   `yaml:"surname"`
	EntryDate string   `yaml:"entry_date,omitempty"`
	Roles     []string `yaml:"roles,omitempty"`
	Enabled   bool     `yaml:"enabled"`
}

type SpecialDateData struct {
	Date string `yaml:"date"`
	Type string `yaml:"type"`
}

// File structures
type RolesFile struct {
	Roles []RoleData `yaml:"roles"`
}

type TasksFile struct {
	Tasks []TaskData `yaml:"tasks"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type SpecialDatesFile struct {
	SpecialDates []SpecialDateData `yaml:"special_dates"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	roles, err := loadRoles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	tasks, err := loadTasks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	specialDates, err := loadSpecialDates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load special dates: %w", err)
	}

	// Create roles first, everything else references them by name
	roleMap := make(map[string]*models.Role)
	roleCreated := 0
	for _, roleData := range roles {
		role, created, err := createRole(db, roleData)
		if err != nil {
			return fmt.Errorf("failed to create role %s: %w", roleData.Name, err)
		}
		roleMap[roleData.Name] = role
		if created {
			roleCreated++
		}
	}
	log.Printf("📋 Roles: %d created, %d total", roleCreated, len(roles))

	// Create tasks
	taskCreated := 0
	for _, taskData := range tasks {
		_, created, err := createTask(db, taskData, roleMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create task %s: %v", taskData.Name, err)
			continue // Continue with other tasks
		}
		if created {
			taskCreated++
		}
	}
	log.Printf("📋 Tasks: %d created, %d total", taskCreated, len(tasks))

	// Create users
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData, roleMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create user %s: %v", userData.Email, err)
			continue // Continue with other users
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create special dates
	specialDateCreated := 0
	for _, dateData := range specialDates {
		_, created, err := createSpecialDate(db, dateData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create special date %s: %v", dateData.Date, err)
			continue
		}
		if created {
			specialDateCreated++
		}
	}
	log.Printf("📋 Special dates: %d created, %d total", specialDateCreated, len(specialDates))

	return nil
}

func loadRoles(dataDir string) ([]RoleData, error) {
	var allRoles []RoleData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "roles") {
			var file RolesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allRoles = append(allRoles, file.Roles...)
		}
		return nil
	})

	return allRoles, err
}

func loadTasks(dataDir string) ([]TaskData, error) {
	var allTasks []TaskData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tasks") {
			var file TasksFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTasks = append(allTasks, file.Tasks...)
		}
		return nil
	})

	return allTasks, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadSpecialDates(dataDir string) ([]SpecialDateData, error) {
	var allDates []SpecialDateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "special_dates") {
			var file SpecialDatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allDates = append(allDates, file.SpecialDates...)
		}
		return nil
	})

	return allDates, err
}

func createRole(db *gorm.DB, roleData RoleData) (*models.Role, bool, error) {
	var role models.Role
	if err := db.Where("name = ?", roleData.Name).First(&role).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			roleType := models.RoleType(strings.ToUpper(roleData.Type))
			if !roleType.IsValid() {
				return nil, false, fmt.Errorf("unknown role type %s", roleData.Type)
			}

			role = models.Role{
				Name:                    roleData.Name,
				Type:                    roleType,
				SortOrder:               roleData.SortOrder,
				AssignedTasksGroupName:  roleData.AssignedTasksGroupName,
				AreTasksVisibleInPrints: roleData.AreTasksVisibleInPrints,
			}

			if err := db.Create(&role).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create role: %w", err)
			}
			return &role, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query role: %w", err)
		}
	}

	return &role, false, nil // created = false (existing)
}

func createTask(db *gorm.DB, taskData TaskData, roleMap map[string]*models.Role) (*models.Task, bool, error) {
	supervisor := roleMap[taskData.SupervisorRoleName]
	if supervisor == nil {
		return nil, false, fmt.Errorf("supervisor role %s not found for task %s", taskData.SupervisorRoleName, taskData.Name)
	}

	var task models.Task
	if err := db.Where("name = ?", taskData.Name).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var days []models.DayOfWeek
			for _, d := range taskData.DaysOfWeek {
				day := models.DayOfWeek(strings.ToUpper(d))
				if !day.IsValid() {
					return nil, false, fmt.Errorf("unknown day of week %s", d)
				}
				days = append(days, day)
			}

			var allowed []models.Role
			for _, name := range taskData.AllowedRoleNames {
				role := roleMap[name]
				if role == nil {
					return nil, false, fmt.Errorf("allowed role %s not found for task %s", name, taskData.Name)
				}
				allowed = append(allowed, *role)
			}

			task = models.Task{
				Name:                             taskData.Name,
				NameAbbrev:                       taskData.NameAbbrev,
				ParticipantsLimit:                taskData.ParticipantsLimit,
				SupervisorRoleID:                 supervisor.ID,
				SortOrder:                        taskData.SortOrder,
				Permanent:                        taskData.Permanent,
				VisibleInObstacleFormForUserRole: taskData.VisibleInObstacleForm,
				DaysOfWeek:                       days,
				AllowedRoles:                     allowed,
			}

			if err := db.Create(&task).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create task: %w", err)
			}
			return &task, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query task: %w", err)
		}
	}

	return &task, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, roleMap map[string]*models.Role) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var entryDate time.Time
			if userData.EntryDate != "" {
				parsed, err := time.Parse("2006-01-02", userData.EntryDate)
				if err != nil {
					return nil, false, fmt.Errorf("invalid entry date %s: %w", userData.EntryDate, err)
				}
				entryDate = parsed
			}

			var userRoles []models.Role
			for _, name := range userData.Roles {
				role := roleMap[name]
				if role == nil {
					return nil, false, fmt.Errorf("role %s not found for user %s", name, userData.Email)
				}
				userRoles = append(userRoles, *role)
			}

			user = models.User{
				Email:     userData.Email,
				Name:      userData.Name,
				Surname:   userData.Surname,
				EntryDate: entryDate,
				Provider:  models.AuthProviderGoogle,
				Enabled:   userData.Enabled,
				Roles:     userRoles,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createSpecialDate(db *gorm.DB, dateData SpecialDateData) (*models.SpecialDate, bool, error) {
	date, err := time.Parse("2006-01-02", dateData.Date)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date %s: %w", dateData.Date, err)
	}

	dateType := models.SpecialDateType(strings.ToUpper(dateData.Type))
	if !dateType.IsValid() {
		return nil, false, fmt.Errorf("unknown special date type %s", dateData.Type)
	}

	var specialDate models.SpecialDate
	if err := db.Where("date = ? AND type = ?", date, dateType).First(&specialDate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			specialDate = models.SpecialDate{
				Date: date,
				Type: dateType,
			}

			if err := db.Create(&specialDate).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create special date: %w", err)
			}
			return &specialDate, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query special date: %w", err)
		}
	}

	return &specialDate, false, nil // created = false (existing)
}
