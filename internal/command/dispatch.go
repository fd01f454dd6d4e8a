package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/milosmiric/ratado-sub000/internal/app"
	"github.com/milosmiric/ratado-sub000/internal/dialog"
	"github.com/milosmiric/ratado-sub000/internal/model"
	"github.com/milosmiric/ratado-sub000/internal/storage"
)

// Execute interprets one command against the state. It returns false only for
// Quit and ForceQuit. Mutating commands write through the repository and then
// reload every collection; a storage failure aborts the command and leaves
// the state in its last-good condition.
func Execute(ctx context.Context, cmd Command, st *app.State, repo storage.Repository) (bool, error) {
	switch cmd.Type {
	case TypeQuit, TypeForceQuit:
		return false, nil

	case TypeSelectNextTask:
		st.SelectNextTask()
	case TypeSelectPrevTask:
		st.SelectPrevTask()
	case TypeSelectNextProject:
		st.SelectNextProject()
	case TypeSelectPrevProject:
		st.SelectPrevProject()
	case TypeFocusSidebar:
		st.Focus = app.FocusSidebar
	case TypeFocusTaskList:
		st.Focus = app.FocusTaskList

	case TypeCycleFilter:
		st.Filter = st.Filter.CycleNext()
		st.ClampSelection()
		st.SetStatus("filter: "+st.Filter.Label(), false)

	case TypeCyclePriority:
		task, ok := st.SelectedTask()
		if !ok {
			return true, nil
		}
		task.Priority = task.Priority.CycleNext()
		task.UpdatedAt = st.Clock().UTC()
		if err := repo.UpdateTask(ctx, task); err != nil {
			return true, storageError("update task priority", err)
		}
		if err := reload(ctx, st, repo); err != nil {
			return true, err
		}
		st.SetStatus(fmt.Sprintf("priority: %s", task.Priority), false)

	case TypeToggleStatus:
		task, ok := st.SelectedTask()
		if !ok {
			return true, nil
		}
		task.ToggleStatus(st.Clock())
		if err := repo.UpdateTask(ctx, task); err != nil {
			return true, storageError("toggle task status", err)
		}
		if err := reload(ctx, st, repo); err != nil {
			return true, err
		}

	case TypeDeleteTask:
		task, ok := st.SelectedTask()
		if !ok {
			return true, nil
		}
		if st.ConfirmDelete {
			st.Dialog = dialog.NewConfirm("Delete task", fmt.Sprintf("Delete %q?", task.Title), task.ID)
			return true, nil
		}
		if err := deleteTask(ctx, st, repo, task.ID); err != nil {
			return true, err
		}

	case TypeReload:
		if err := reload(ctx, st, repo); err != nil {
			return true, err
		}

	case TypeOpenAddTask:
		st.Dialog = dialog.NewTaskForm(st.Projects, st.ScopedProjectID(), st.TagNames())
	case TypeOpenEditTask:
		task, ok := st.SelectedTask()
		if !ok {
			return true, nil
		}
		st.Dialog = dialog.NewTaskFormEdit(task, st.Projects, st.TagNames())
	case TypeOpenQuickCapture:
		st.Dialog = dialog.NewQuickCapture(st.Projects, st.TagNames(), st.ProjectTagNames(st.ScopedProjectID()))
	case TypeOpenAddProject:
		st.Dialog = dialog.NewProjectForm()
	case TypeOpenEditProject:
		project, ok := st.ScopedProject()
		if !ok {
			return true, nil
		}
		st.Dialog = dialog.NewProjectFormEdit(project)
	case TypeOpenDeleteProject:
		project, ok := st.ScopedProject()
		if !ok {
			return true, nil
		}
		if project.ID == model.InboxProjectID {
			st.SetStatus("the inbox cannot be deleted", true)
			return true, nil
		}
		st.Dialog = dialog.NewDeleteProject(project)
	case TypeOpenMoveToProject:
		task, ok := st.SelectedTask()
		if !ok {
			return true, nil
		}
		st.Dialog = dialog.NewMoveToProject(task.ID, st.Projects)
	case TypeOpenFilterSort:
		st.Dialog = dialog.NewFilterSort(st.Filter, st.Sort)
	case TypeOpenSettings:
		st.Dialog = dialog.NewSettings(st.Sort, st.ConfirmDelete)

	case TypeDialogSubmit:
		return true, submitDialog(ctx, st, repo)
	case TypeDialogCancel:
		st.Dialog = nil

	case TypeShowTaskDetail:
		task, ok := st.SelectedTask()
		if !ok {
			return true, nil
		}
		st.DetailTaskID = task.ID
		st.View = app.ViewTaskDetail
	case TypeShowCalendar:
		st.View = app.ViewCalendar
	case TypeShowHelp:
		st.View = app.ViewHelp
	case TypeShowMain:
		st.View = app.ViewMain
		st.Mode = app.ModeNormal
	case TypeToggleDebugLogs:
		if st.View == app.ViewDebugLogs {
			st.View = app.ViewMain
		} else {
			st.View = app.ViewDebugLogs
		}

	case TypeStartSearch:
		st.View = app.ViewSearch
		st.Mode = app.ModeSearch
		st.ResetInput("")
	case TypeCommitSearch:
		st.SearchQuery = strings.TrimSpace(st.Input)
		st.Mode = app.ModeNormal
		st.ClampSelection()
	case TypeCancelSearch:
		st.SearchQuery = ""
		st.ResetInput("")
		st.Mode = app.ModeNormal
		st.View = app.ViewMain
		st.ClampSelection()

	case TypeStartInlineEdit:
		task, ok := st.SelectedTask()
		if !ok {
			return true, nil
		}
		st.EditingTaskID = task.ID
		st.Mode = app.ModeEditing
		st.ResetInput(task.Title)
	case TypeCommitInlineEdit:
		if err := commitInlineEdit(ctx, st, repo); err != nil {
			return true, err
		}
	case TypeCancelInlineEdit:
		st.EditingTaskID = ""
		st.ResetInput("")
		st.Mode = app.ModeNormal

	case TypeInputRune:
		st.InsertRune(cmd.Rune)
	case TypeInputBackspace:
		st.Backspace()
	case TypeInputLeft:
		st.CursorLeft()
	case TypeInputRight:
		st.CursorRight()

	case TypeLogScrollUp:
		if st.LogScroll < st.Logs.Len()-1 {
			st.LogScroll++
		}
	case TypeLogScrollDown:
		if st.LogScroll > 0 {
			st.LogScroll--
		}

	case TypeCalendarPrevDay:
		st.CalendarFocus = st.CalendarFocus.AddDate(0, 0, -1)
	case TypeCalendarNextDay:
		st.CalendarFocus = st.CalendarFocus.AddDate(0, 0, 1)
	case TypeCalendarPrevWeek:
		st.CalendarFocus = st.CalendarFocus.AddDate(0, 0, -7)
	case TypeCalendarNextWeek:
		st.CalendarFocus = st.CalendarFocus.AddDate(0, 0, 7)
	}

	return true, nil
}

// submitDialog interprets a Submit action from the active dialog. The type
// switch is exhaustive over the dialog variants; the dialog stays open when
// its conversion rejects the input.
func submitDialog(ctx context.Context, st *app.State, repo storage.Repository) error {
	switch d := st.Dialog.(type) {
	case *dialog.TaskForm:
		task := d.ToTask()
		if task == nil {
			st.SetStatus("a title is required", true)
			return nil
		}
		if d.Editing {
			if err := repo.UpdateTask(ctx, *task); err != nil {
				return storageError("update task", err)
			}
		} else {
			if err := repo.InsertTask(ctx, *task); err != nil {
				return storageError("insert task", err)
			}
		}
		if err := finishMutation(ctx, st, repo); err != nil {
			return err
		}
		st.SetStatus(fmt.Sprintf("saved %q", task.Title), false)

	case *dialog.QuickCapture:
		task := d.ToTask()
		if task == nil {
			st.SetStatus("a title is required", true)
			return nil
		}
		if err := repo.InsertTask(ctx, *task); err != nil {
			return storageError("capture task", err)
		}
		if err := finishMutation(ctx, st, repo); err != nil {
			return err
		}
		st.SetStatus(fmt.Sprintf("captured %q", task.Title), false)

	case *dialog.ProjectForm:
		project := d.ToProject()
		if project == nil {
			st.SetStatus("a name is required", true)
			return nil
		}
		var err error
		if d.Editing {
			err = repo.UpdateProject(ctx, *project)
		} else {
			err = repo.InsertProject(ctx, *project)
		}
		if err != nil {
			return storageError("save project", err)
		}
		if err := finishMutation(ctx, st, repo); err != nil {
			return err
		}
		st.SetStatus(fmt.Sprintf("saved project %q", project.Name), false)

	case *dialog.Confirm:
		st.Dialog = nil
		if !d.Accepted {
			return nil
		}
		return deleteTask(ctx, st, repo, d.TargetID)

	case *dialog.DeleteProject:
		deleteTasks := d.Choice == dialog.ChoiceDeleteTasks
		if err := repo.DeleteProject(ctx, d.Project.ID, deleteTasks); err != nil {
			return storageError("delete project", err)
		}
		if err := finishMutation(ctx, st, repo); err != nil {
			return err
		}
		st.SetStatus(fmt.Sprintf("deleted project %q", d.Project.Name), false)

	case *dialog.MoveToProject:
		project, ok := d.Selected()
		if !ok {
			st.Dialog = nil
			return nil
		}
		task, found := st.TaskByID(d.TaskID)
		if !found {
			st.Dialog = nil
			return nil
		}
		task.ProjectID = project.ID
		task.UpdatedAt = st.Clock().UTC()
		if err := repo.UpdateTask(ctx, task); err != nil {
			return storageError("move task", err)
		}
		if err := finishMutation(ctx, st, repo); err != nil {
			return err
		}
		st.SetStatus(fmt.Sprintf("moved to %q", project.Name), false)

	case *dialog.FilterSort:
		st.Filter, st.Sort = d.Chosen()
		st.Dialog = nil
		st.ClampSelection()

	case *dialog.Settings:
		st.Sort = d.DefaultSort
		st.ConfirmDelete = d.ConfirmDelete
		st.Dialog = nil
		st.ClampSelection()
	}
	return nil
}

func deleteTask(ctx context.Context, st *app.State, repo storage.Repository, id string) error {
	if err := repo.DeleteTask(ctx, id); err != nil {
		return storageError("delete task", err)
	}
	if err := finishMutation(ctx, st, repo); err != nil {
		return err
	}
	st.SetStatus("task deleted", false)
	return nil
}

func commitInlineEdit(ctx context.Context, st *app.State, repo storage.Repository) error {
	defer func() {
		st.EditingTaskID = ""
		st.ResetInput("")
		st.Mode = app.ModeNormal
	}()

	title := strings.TrimSpace(st.Input)
	if title == "" {
		return nil
	}
	task, ok := st.TaskByID(st.EditingTaskID)
	if !ok {
		return nil
	}
	task.Title = title
	task.UpdatedAt = st.Clock().UTC()
	if err := repo.UpdateTask(ctx, task); err != nil {
		return storageError("rename task", err)
	}
	return reload(ctx, st, repo)
}

// finishMutation closes the active dialog, cleans up orphan tags and reloads
// the full snapshot. Reload-after-write keeps each command atomic from the
// state's perspective.
func finishMutation(ctx context.Context, st *app.State, repo storage.Repository) error {
	st.Dialog = nil
	if err := repo.CleanupOrphanTags(ctx); err != nil {
		return storageError("cleanup tags", err)
	}
	return reload(ctx, st, repo)
}

func reload(ctx context.Context, st *app.State, repo storage.Repository) error {
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return storageError("load tasks", err)
	}
	projects, err := repo.ListProjects(ctx)
	if err != nil {
		return storageError("load projects", err)
	}
	tags, err := repo.ListTags(ctx)
	if err != nil {
		return storageError("load tags", err)
	}
	st.ReplaceCollections(tasks, projects, tags)
	return nil
}
