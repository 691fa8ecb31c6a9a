package handlers

import (
	"context"

	"github.com/Xjua-nes/Juanes-ikernell/database"
	"github.com/Xjua-nes/Juanes-ikernell/models"
)

// Consumer-side store contracts. The database package satisfies all of
// them; tests substitute in-memory fakes.

type WorkerStore interface {
	database.Store[models.Worker, int64]
	ListByActive(ctx context.Context, active bool) ([]models.Worker, error)
	ListLeaders(ctx context.Context, roleName string) ([]models.Worker, error)
	FindByEmail(ctx context.Context, email string) (*models.Worker, error)
	FindByResetToken(ctx context.Context, token string) (*models.Worker, error)
}

type RoleStore interface {
	database.Store[models.Role, int64]
}

type ProjectStore interface {
	database.Store[models.Project, int64]
}

type StageStore interface {
	database.Store[models.Stage, int64]
	ListByProject(ctx context.Context, projectID int64) ([]models.Stage, error)
}

type ActivityStore interface {
	database.Store[models.Activity, int64]
	ListByStage(ctx context.Context, stageID int64) ([]models.Activity, error)
	ListByDeveloper(ctx context.Context, developerID int64) ([]models.Activity, error)
}

type AssignmentStore interface {
	database.Store[models.Assignment, int64]
	ListByProject(ctx context.Context, projectID int64) ([]models.Assignment, error)
	ListByDeveloper(ctx context.Context, developerID int64) ([]models.Assignment, error)
}

type ErrorReportStore interface {
	database.Store[models.ErrorReport, int64]
	ListByDeveloper(ctx context.Context, developerID int64) ([]models.ErrorReport, error)
}

type InterruptionStore interface {
	database.Store[models.Interruption, int64]
	ListByDeveloper(ctx context.Context, developerID int64) ([]models.Interruption, error)
}

type PerformanceReportStore interface {
	database.Store[models.PerformanceReport, int64]
	ListByWorker(ctx context.Context, workerID int64) ([]models.PerformanceReport, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.PerformanceReport, error)
}

// Narrow getters for foreign-key validation across resources.

type WorkerGetter interface {
	Get(ctx context.Context, id int64) (*models.Worker, error)
}

type ProjectGetter interface {
	Get(ctx context.Context, id int64) (*models.Project, error)
}

type StageGetter interface {
	Get(ctx context.Context, id int64) (*models.Stage, error)
}

type ActivityGetter interface {
	Get(ctx context.Context, id int64) (*models.Activity, error)
}

type AssignmentGetter interface {
	Get(ctx context.Context, id int64) (*models.Assignment, error)
}

type RoleGetter interface {
	Get(ctx context.Context, id int64) (*models.Role, error)
}

// Notifier delivers mail without blocking or failing the request.
type Notifier interface {
	SendRegistrationEmail(worker *models.Worker, plainPassword string)
	SendPasswordResetEmail(worker *models.Worker)
}
