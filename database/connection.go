package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	var psqlInfo string

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL != "" {
		psqlInfo = databaseURL
	} else {
		host := os.Getenv("DB_HOST")
		portstr := os.Getenv("DB_PORT")
		port, err := strconv.Atoi(portstr)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT, must be a number: %w", err)
		}
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		dbname := os.Getenv("DB_NAME")
		sslmode := os.Getenv("DB_SSLMODE")

		if sslmode == "" {
			sslmode = "disable"
		}

		psqlInfo = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, dbname, sslmode)
	}

	var err error
	DB, err = sql.Open("postgres", psqlInfo)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)

	if err = DB.Ping(); err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	log.Println("Successfully connected to database")

	if err := runMigrations(); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	return nil
}

func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

func runMigrations() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS workers (
			id BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			identification VARCHAR(100) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			profession VARCHAR(255),
			address VARCHAR(255),
			specialty VARCHAR(255),
			password VARCHAR(255) NOT NULL,
			active BOOLEAN NOT NULL DEFAULT true,
			role_id BIGINT NOT NULL REFERENCES roles(id),
			registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			reset_token VARCHAR(64),
			reset_token_expires_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			start_date DATE NOT NULL,
			estimated_end_date DATE,
			leader_id BIGINT NOT NULL REFERENCES workers(id),
			status VARCHAR(20) NOT NULL DEFAULT 'planning'
		)`,
		`CREATE TABLE IF NOT EXISTS stages (
			id BIGSERIAL PRIMARY KEY,
			project_id BIGINT NOT NULL REFERENCES projects(id),
			name VARCHAR(255) NOT NULL,
			estimated_start_date DATE,
			estimated_end_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id BIGSERIAL PRIMARY KEY,
			stage_id BIGINT NOT NULL REFERENCES stages(id),
			developer_id BIGINT NOT NULL REFERENCES workers(id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			estimated_start_date DATE,
			estimated_end_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id BIGSERIAL PRIMARY KEY,
			project_id BIGINT NOT NULL REFERENCES projects(id),
			developer_id BIGINT NOT NULL REFERENCES workers(id),
			assigned_at DATE NOT NULL DEFAULT CURRENT_DATE,
			active BOOLEAN NOT NULL DEFAULT true
		)`,
		// At most one active assignment per (project, developer) pair.
		// Partial index: inactive rows stay out of the constraint so a
		// pair can be re-assigned after deactivation.
		`CREATE UNIQUE INDEX IF NOT EXISTS assignments_active_pair_idx
			ON assignments (project_id, developer_id) WHERE active`,
		`CREATE TABLE IF NOT EXISTS error_reports (
			id BIGSERIAL PRIMARY KEY,
			error_type VARCHAR(100) NOT NULL,
			description TEXT NOT NULL,
			project_phase VARCHAR(100) NOT NULL,
			reported_at DATE NOT NULL,
			activity_id BIGINT REFERENCES activities(id),
			project_id BIGINT REFERENCES projects(id),
			developer_id BIGINT NOT NULL REFERENCES workers(id)
		)`,
		`CREATE TABLE IF NOT EXISTS interruptions (
			id BIGSERIAL PRIMARY KEY,
			interruption_type VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			duration_minutes INTEGER NOT NULL,
			project_phase VARCHAR(100) NOT NULL,
			description TEXT,
			activity_id BIGINT REFERENCES activities(id),
			project_id BIGINT REFERENCES projects(id),
			developer_id BIGINT NOT NULL REFERENCES workers(id)
		)`,
		`CREATE TABLE IF NOT EXISTS performance_reports (
			id BIGSERIAL PRIMARY KEY,
			worker_id BIGINT NOT NULL REFERENCES workers(id),
			assignment_id BIGINT REFERENCES assignments(id),
			stage_id BIGINT REFERENCES stages(id),
			project_id BIGINT REFERENCES projects(id),
			start_date DATE,
			end_date DATE,
			completed_tasks INTEGER NOT NULL DEFAULT 0,
			delayed_tasks INTEGER NOT NULL DEFAULT 0,
			reported_errors INTEGER NOT NULL DEFAULT 0,
			reported_interruptions INTEGER NOT NULL DEFAULT 0,
			progress_percent NUMERIC(5,2) NOT NULL DEFAULT 0,
			rating NUMERIC(3,2) NOT NULL DEFAULT 0,
			observations TEXT,
			reported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_workers_email ON workers(email)`,
		`CREATE INDEX IF NOT EXISTS idx_workers_reset_token ON workers(reset_token)`,
		`CREATE INDEX IF NOT EXISTS idx_workers_role ON workers(role_id)`,
		`CREATE INDEX IF NOT EXISTS idx_stages_project ON stages(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_stage ON activities(stage_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_developer ON activities(developer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_project ON assignments(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_developer ON assignments(developer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_error_reports_developer ON error_reports(developer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_interruptions_developer ON interruptions(developer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_performance_reports_worker ON performance_reports(worker_id)`,
		`CREATE INDEX IF NOT EXISTS idx_performance_reports_project ON performance_reports(project_id)`,
	}

	for _, migration := range migrations {
		if _, err := DB.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, migration)
		}
	}

	log.Println("Migrations completed successfully")

	if err := seedDefaultRoles(); err != nil {
		log.Printf("Warning: Failed to seed default roles: %v", err)
	}

	return nil
}

func seedDefaultRoles() error {
	defaults := []string{"Leader", "Developer", "Coordinator"}

	for _, name := range defaults {
		_, err := DB.Exec(
			`INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return fmt.Errorf("failed to seed role '%s': %w", name, err)
		}
	}

	return nil
}
