package storage

import (
	"context"
	"errors"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

var (
	ErrNotFound      = errors.New("storage: not found")
	ErrInboxReserved = errors.New("storage: the inbox project cannot be deleted")
)

// Repository is the narrow surface the command layer writes through. Every
// mutation is followed by a full reload on the caller's side, so the interface
// has no partial-update or patch operations.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	InsertTask(ctx context.Context, in model.Task) error
	UpdateTask(ctx context.Context, in model.Task) error
	DeleteTask(ctx context.Context, id string) error

	ListProjects(ctx context.Context) ([]model.Project, error)
	InsertProject(ctx context.Context, in model.Project) error
	UpdateProject(ctx context.Context, in model.Project) error
	// DeleteProject refuses model.InboxProjectID with ErrInboxReserved.
	// Tasks in the deleted project either move to the inbox or are removed.
	DeleteProject(ctx context.Context, id string, deleteTasks bool) error

	ListTags(ctx context.Context) ([]model.Tag, error)
	// CleanupOrphanTags drops tags no task references any more.
	CleanupOrphanTags(ctx context.Context) error

	// EnsureInbox creates the reserved inbox project when missing.
	EnsureInbox(ctx context.Context) error
}
