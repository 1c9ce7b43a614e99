package domain

import (
	"errors"
	"time"
)

// WorkspaceCookieName identifies the visitor's workspace.
const WorkspaceCookieName = "rpg_workspace"

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrWorkspaceConflict = errors.New("workspace modified concurrently")
)

// Workspace is the per-visitor state that lives for one browsing session:
// the characters and guilds created so far and the sign-in flag.
type Workspace struct {
	ID              string      `json:"id"`
	NextCharacterID int         `json:"nextCharacterId"`
	Characters      []Character `json:"characters"`
	Guilds          []Guild     `json:"guilds"`
	SignedIn        bool        `json:"signedIn"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// NewWorkspace returns an empty workspace whose character counter starts at 1.
func NewWorkspace(id string) *Workspace {
	return &Workspace{
		ID:              id,
		NextCharacterID: 1,
		Characters:      []Character{},
		Guilds:          []Guild{},
	}
}

// Clone returns a deep copy so callers can hand out workspace state without
// sharing backing arrays.
func (w *Workspace) Clone() *Workspace {
	if w == nil {
		return nil
	}
	c := *w
	c.Characters = append([]Character{}, w.Characters...)
	c.Guilds = append([]Guild{}, w.Guilds...)
	return &c
}
