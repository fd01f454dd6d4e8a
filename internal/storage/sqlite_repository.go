package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/milosmiric/ratado-sub000/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, due_date, priority, status, project_id, created_at, updated_at, completed_at
		FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		tags, tagErr := r.taskTags(ctx, out[i].ID)
		if tagErr != nil {
			return nil, tagErr
		}
		out[i].Tags = tags
	}
	return out, nil
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, due_date, priority, status, project_id, created_at, updated_at, completed_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	tags, err := r.taskTags(ctx, task.ID)
	if err != nil {
		return model.Task{}, err
	}
	task.Tags = tags
	return task, nil
}

func (r *SQLiteRepository) InsertTask(ctx context.Context, in model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, due_date, priority, status, project_id, created_at, updated_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Description, nullTime(in.DueDate), string(in.Priority), string(in.Status),
		in.ProjectID, mustTime(in.CreatedAt), mustTime(in.UpdatedAt), nullTime(in.CompletedAt),
	)
	if err != nil {
		return err
	}
	if err := writeTaskTags(ctx, tx, in.ID, in.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in model.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, due_date = ?, priority = ?, status = ?, project_id = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`,
		in.Title, in.Description, nullTime(in.DueDate), string(in.Priority), string(in.Status),
		in.ProjectID, mustTime(in.UpdatedAt), nullTime(in.CompletedAt), in.ID,
	)
	if err != nil {
		return err
	}
	if err := checkRowsAffected(res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, in.ID); err != nil {
		return err
	}
	if err := writeTaskTags(ctx, tx, in.ID, in.Tags); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, color, icon, created_at FROM projects ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Project, 0)
	for rows.Next() {
		project, scanErr := scanProject(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, project)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) InsertProject(ctx context.Context, in model.Project) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, color, icon, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Color, in.Icon, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) UpdateProject(ctx context.Context, in model.Project) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE projects SET name = ?, color = ?, icon = ? WHERE id = ?`,
		in.Name, in.Color, in.Icon, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string, deleteTasks bool) error {
	if id == model.InboxProjectID {
		return ErrInboxReserved
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if deleteTasks {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, id); err != nil {
			return err
		}
	} else {
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET project_id = ? WHERE project_id = ?`, model.InboxProjectID, id); err != nil {
			return err
		}
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if err := checkRowsAffected(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) ListTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Tag, 0)
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CleanupOrphanTags(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM tags WHERE name NOT IN (SELECT DISTINCT name FROM task_tags)`)
	return err
}

func (r *SQLiteRepository) EnsureInbox(ctx context.Context) error {
	inbox := model.InboxProject()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, color, icon, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		inbox.ID, inbox.Name, inbox.Color, inbox.Icon, mustTime(inbox.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) taskTags(ctx context.Context, taskID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name FROM task_tags WHERE task_id = ? ORDER BY position ASC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func writeTaskTags(ctx context.Context, tx *sql.Tx, taskID string, tags []string) error {
	for i, name := range tags {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO task_tags (task_id, position, name) VALUES (?, ?, ?)`,
			taskID, i, name,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tags (id, name) VALUES (?, ?) ON CONFLICT(name) DO NOTHING`,
			model.NewID(), name,
		); err != nil {
			return err
		}
	}
	return nil
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var due sql.NullString
	var priority string
	var status string
	var created string
	var updated string
	var completed sql.NullString
	if err := s.Scan(&out.ID, &out.Title, &out.Description, &due, &priority, &status, &out.ProjectID, &created, &updated, &completed); err != nil {
		return model.Task{}, err
	}
	dueDate, err := parseNullableTime(due)
	if err != nil {
		return model.Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return model.Task{}, err
	}
	updatedAt, err := parseRequiredTime(updated)
	if err != nil {
		return model.Task{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return model.Task{}, err
	}
	out.DueDate = dueDate
	out.Priority = model.Priority(priority)
	out.Status = model.Status(status)
	out.CreatedAt = createdAt
	out.UpdatedAt = updatedAt
	out.CompletedAt = completedAt
	return out, nil
}

func scanProject(s scanner) (model.Project, error) {
	var out model.Project
	var created string
	if err := s.Scan(&out.ID, &out.Name, &out.Color, &out.Icon, &created); err != nil {
		return model.Project{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return model.Project{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
