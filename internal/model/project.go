package model

import (
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// InboxProjectID is the reserved id of the built-in project. It always exists
// and cannot be deleted.
const InboxProjectID = "inbox"

var ErrInboxReserved = errors.New("model: the inbox project is reserved")

type Project struct {
	ID        string
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
}

func NewProject(name, color, icon string) Project {
	return Project{
		ID:        NewID(),
		Name:      strings.TrimSpace(name),
		Color:     color,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
}

func InboxProject() Project {
	return Project{
		ID:        InboxProjectID,
		Name:      "Inbox",
		Color:     "#7aa2f7",
		Icon:      "📥",
		CreatedAt: time.Now().UTC(),
	}
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: project id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("model: project name is required")
	}
	return nil
}

type Tag struct {
	ID   string
	Name string
}

// NewID returns a time-ordered unique string id.
func NewID() string {
	return strings.ToLower(ulid.Make().String())
}
