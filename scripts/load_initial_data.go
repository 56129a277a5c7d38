package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"task-orchestrator-backend/internal/config"
	"task-orchestrator-backend/internal/database"
	"task-orchestrator-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type UserData struct {
	UserName   string `yaml:"username"`
	Email      string `yaml:"email"`
	FullName   string `yaml:"full_name"`
	Department string `yaml:"department,omitempty"`
}

type ProjectData struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	OwnerUserName string `yaml:"owner_username"`
}

type TeamData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	ProjectName string   `yaml:"project_name,omitempty"`
	Members     []string `yaml:"members,omitempty"`
}

type TaskData struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Status           string `yaml:"status,omitempty"`
	Priority         string `yaml:"priority,omitempty"`
	AssignedUserName string `yaml:"assigned_username,omitempty"`
	ProjectName      string `yaml:"project_name,omitempty"`
}

type SeedData struct {
	Users    []UserData    `yaml:"users"`
	Projects []ProjectData `yaml:"projects"`
	Teams    []TeamData    `yaml:"teams"`
	Tasks    []TaskData    `yaml:"tasks"`
}

func main() {
	log.Println("Loading initial data from YAML...")

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

	seedPath := "scripts/data/initial_data.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	if err := loadSeedFile(db, seedPath); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
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
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Users first, everything else references them by username
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, data := range seed.Users {
		user := &models.User{
			UserName: data.UserName,
			Email:    data.Email,
			FullName: data.FullName,
			IsActive: true,
		}
		if data.Department != "" {
			dept := data.Department
			user.Department = &dept
		}

		var existing models.User
		err := db.Where("user_name = ?", data.UserName).First(&existing).Error
		switch {
		case err == nil:
			userMap[data.UserName] = &existing
		case err == gorm.ErrRecordNotFound:
			if err := db.Create(user).Error; err != nil {
				return fmt.Errorf("failed to create user %s: %w", data.UserName, err)
			}
			userMap[data.UserName] = user
			userCreated++
		default:
			return fmt.Errorf("failed to look up user %s: %w", data.UserName, err)
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(seed.Users))

	// Projects
	projectMap := make(map[string]*models.Project)
	projectCreated := 0
	for _, data := range seed.Projects {
		owner, ok := userMap[data.OwnerUserName]
		if !ok {
			return fmt.Errorf("project %s references unknown owner %s", data.Name, data.OwnerUserName)
		}

		var existing models.Project
		err := db.Where("name = ?", data.Name).First(&existing).Error
		switch {
		case err == nil:
			projectMap[data.Name] = &existing
		case err == gorm.ErrRecordNotFound:
			project := &models.Project{
				Name:        data.Name,
				Description: data.Description,
				StartDate:   time.Now().UTC(),
				IsActive:    true,
				OwnerID:     owner.ID,
			}
			if err := db.Create(project).Error; err != nil {
				return fmt.Errorf("failed to create project %s: %w", data.Name, err)
			}
			projectMap[data.Name] = project
			projectCreated++
		default:
			return fmt.Errorf("failed to look up project %s: %w", data.Name, err)
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(seed.Projects))

	// Teams and their memberships
	teamCreated := 0
	for _, data := range seed.Teams {
		var existing models.Team
		err := db.Where("name = ?", data.Name).First(&existing).Error

		team := &existing
		switch {
		case err == nil:
		case err == gorm.ErrRecordNotFound:
			team = &models.Team{
				Name:        data.Name,
				Description: data.Description,
			}
			if data.ProjectName != "" {
				project, ok := projectMap[data.ProjectName]
				if !ok {
					return fmt.Errorf("team %s references unknown project %s", data.Name, data.ProjectName)
				}
				team.ProjectID = &project.ID
			}
			if err := db.Create(team).Error; err != nil {
				return fmt.Errorf("failed to create team %s: %w", data.Name, err)
			}
			teamCreated++
		default:
			return fmt.Errorf("failed to look up team %s: %w", data.Name, err)
		}

		for _, userName := range data.Members {
			user, ok := userMap[userName]
			if !ok {
				return fmt.Errorf("team %s references unknown member %s", data.Name, userName)
			}
			membership := models.TeamMember{
				TeamID: team.ID,
				UserID: user.ID,
				Role:   "Member",
			}
			if err := db.Where("team_id = ? AND user_id = ?", team.ID, user.ID).
				FirstOrCreate(&membership).Error; err != nil {
				return fmt.Errorf("failed to add %s to team %s: %w", userName, data.Name, err)
			}
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(seed.Teams))

	// Tasks
	taskCreated := 0
	for _, data := range seed.Tasks {
		var existing models.WorkTask
		err := db.Where("title = ?", data.Title).First(&existing).Error
		switch {
		case err == nil:
			continue
		case err == gorm.ErrRecordNotFound:
		default:
			return fmt.Errorf("failed to look up task %s: %w", data.Title, err)
		}

		task := &models.WorkTask{
			Title:       data.Title,
			Description: data.Description,
			Status:      models.TaskStatusPending,
			Priority:    models.TaskPriorityMedium,
		}
		if data.Status != "" {
			task.Status = models.TaskStatus(data.Status)
		}
		if data.Priority != "" {
			task.Priority = models.TaskPriority(data.Priority)
		}
		if data.AssignedUserName != "" {
			user, ok := userMap[data.AssignedUserName]
			if !ok {
				return fmt.Errorf("task %s references unknown user %s", data.Title, data.AssignedUserName)
			}
			task.AssignedToID = &user.ID
		}
		if data.ProjectName != "" {
			project, ok := projectMap[data.ProjectName]
			if !ok {
				return fmt.Errorf("task %s references unknown project %s", data.Title, data.ProjectName)
			}
			task.ProjectID = &project.ID
		}

		if err := db.Create(task).Error; err != nil {
			return fmt.Errorf("failed to create task %s: %w", data.Title, err)
		}
		taskCreated++
	}
	log.Printf("Tasks: %d created, %d total", taskCreated, len(seed.Tasks))

	return nil
}
