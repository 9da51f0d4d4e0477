package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/model"
)

// Wire representations. The password hash never appears here.

type userJSON struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Phone       string    `json:"phone,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserJSON(u model.User) userJSON {
	return userJSON{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Phone:       u.Phone,
		AvatarURL:   u.AvatarURL,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type workspaceJSON struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Owner     uuid.UUID   `json:"owner"`
	Members   []uuid.UUID `json:"members"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func toWorkspaceJSON(w model.Workspace) workspaceJSON {
	members := w.Members
	if members == nil {
		members = []uuid.UUID{}
	}
	return workspaceJSON{
		ID:        w.ID,
		Name:      w.Name,
		Owner:     w.OwnerID,
		Members:   members,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toWorkspaceListJSON(workspaces []model.Workspace) []workspaceJSON {
	out := make([]workspaceJSON, 0, len(workspaces))
	for _, w := range workspaces {
		out = append(out, toWorkspaceJSON(w))
	}
	return out
}

type boardJSON struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Owner       uuid.UUID   `json:"owner"`
	Members     []uuid.UUID `json:"members"`
	Workspace   uuid.UUID   `json:"workspace"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toBoardJSON(b model.Board) boardJSON {
	members := b.Members
	if members == nil {
		members = []uuid.UUID{}
	}
	return boardJSON{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Owner:       b.OwnerID,
		Members:     members,
		Workspace:   b.WorkspaceID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBoardListJSON(boards []model.Board) []boardJSON {
	out := make([]boardJSON, 0, len(boards))
	for _, b := range boards {
		out = append(out, toBoardJSON(b))
	}
	return out
}

type listJSON struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	BoardID   uuid.UUID `json:"boardId"`
	Position  float64   `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toListListJSON(lists []model.List) []listJSON {
	out := make([]listJSON, 0, len(lists))
	for _, l := range lists {
		out = append(out, listJSON{
			ID:        l.ID,
			Title:     l.Title,
			BoardID:   l.BoardID,
			Position:  l.Position,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		})
	}
	return out
}

type cardJSON struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ListID      uuid.UUID   `json:"listId"`
	BoardID     uuid.UUID   `json:"boardId"`
	Labels      []string    `json:"labels"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
	Members     []uuid.UUID `json:"members"`
	Position    float64     `json:"position"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func toCardListJSON(cards []model.Card) []cardJSON {
	out := make([]cardJSON, 0, len(cards))
	for _, c := range cards {
		labels := c.Labels
		if labels == nil {
			labels = []string{}
		}
		members := c.Members
		if members == nil {
			members = []uuid.UUID{}
		}
		out = append(out, cardJSON{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			ListID:      c.ListID,
			BoardID:     c.BoardID,
			Labels:      labels,
			DueDate:     c.DueDate,
			Members:     members,
			Position:    c.Position,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return out
}
