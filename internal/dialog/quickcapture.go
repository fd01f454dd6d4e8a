package dialog

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/milosmiric/ratado-sub000/internal/capture"
	"github.com/milosmiric/ratado-sub000/internal/model"
)

// QuickCapture is the single-line capture dialog. The buffer is reparsed from
// scratch on every keystroke and the suggestion engine tracks the token at
// the cursor. Tab accepts the highlighted suggestion; Enter always submits.
// An accepted @-suggestion is stored out of band as the explicit project;
// typing a new @-token clears it again (last @ wins).
type QuickCapture struct {
	Input textinput.Model

	Parsed          capture.ParsedCapture
	Sugg            capture.Suggestions
	ExplicitProject string

	Projects    []model.Project
	AllTags     []string
	ProjectTags []string

	Clock func() time.Time
}

func NewQuickCapture(projects []model.Project, allTags, projectTags []string) *QuickCapture {
	input := textinput.New()
	input.Placeholder = "task @project #tag !1 due:tomorrow"
	input.Focus()
	return &QuickCapture{
		Input:       input,
		Projects:    projects,
		AllTags:     allTags,
		ProjectTags: projectTags,
		Clock:       time.Now,
	}
}

func (c *QuickCapture) HandleKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "esc":
		if !c.Sugg.IsEmpty() {
			c.Sugg = capture.Suggestions{}
			return ActionNone
		}
		return ActionCancel
	case "enter":
		return ActionSubmit
	case "tab":
		if !c.Sugg.IsEmpty() {
			c.accept()
		}
		return ActionNone
	case "down", "ctrl+n":
		c.Sugg.MoveNext()
		return ActionNone
	case "up", "ctrl+p":
		c.Sugg.MovePrev()
		return ActionNone
	}

	c.Input, _ = c.Input.Update(msg)
	c.refresh(true)
	return ActionNone
}

// refresh recomputes the parse and the suggestion state from the buffer.
// clearExplicit controls whether an active @-token drops a previously
// accepted explicit project; acceptance itself must not.
func (c *QuickCapture) refresh(clearExplicit bool) {
	text := c.Input.Value()
	c.Parsed = capture.Parse(text, c.Clock())

	tok, ok := capture.ActiveTokenAt(text, c.Input.Position())
	if !ok {
		c.Sugg = capture.Suggestions{}
		return
	}

	var items []string
	switch tok.Kind {
	case capture.TokenProject:
		if clearExplicit {
			c.ExplicitProject = ""
		}
		items = capture.SuggestProjects(tok.Query, c.projectNames())
	case capture.TokenTag:
		items = capture.SuggestTags(tok.Query, c.AllTags, c.Parsed.Tags, c.ProjectTags)
	case capture.TokenPriority:
		items = capture.SuggestPriorities(tok.Query)
	}
	c.Sugg = capture.Suggestions{Kind: tok.Kind, Items: items}
}

func (c *QuickCapture) accept() {
	chosen, ok := c.Sugg.Current()
	if !ok {
		return
	}
	text := c.Input.Value()
	tok, ok := capture.ActiveTokenAt(text, c.Input.Position())
	if !ok {
		return
	}

	var replacement string
	switch tok.Kind {
	case capture.TokenProject:
		c.ExplicitProject = chosen
	case capture.TokenTag:
		replacement = "#" + chosen
	case capture.TokenPriority:
		replacement = "!" + chosen
	}

	next, cursor := capture.ReplaceToken(text, tok, replacement)
	c.Input.SetValue(next)
	c.Input.SetCursor(cursor)
	c.refresh(false)
}

func (c *QuickCapture) projectNames() []string {
	names := make([]string, len(c.Projects))
	for i, p := range c.Projects {
		names[i] = p.Name
	}
	return names
}

// EffectiveProjectName is the explicit project when one was accepted, the
// last @-token in the text otherwise.
func (c *QuickCapture) EffectiveProjectName() string {
	if c.ExplicitProject != "" {
		return c.ExplicitProject
	}
	return c.Parsed.ProjectName
}

// ToTask converts the capture into a task, or nil when the title is empty.
// An unknown project name falls back to the inbox.
func (c *QuickCapture) ToTask() *model.Task {
	title := strings.TrimSpace(c.Parsed.Title)
	if title == "" {
		return nil
	}

	task := model.NewTask(title)
	if c.Parsed.Priority != "" {
		task.Priority = c.Parsed.Priority
	}
	task.DueDate = c.Parsed.DueDate
	task.Tags = c.Parsed.Tags
	if name := c.EffectiveProjectName(); name != "" {
		for _, p := range c.Projects {
			if strings.EqualFold(p.Name, name) {
				task.ProjectID = p.ID
				break
			}
		}
	}
	return &task
}
