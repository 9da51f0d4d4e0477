package handler

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/nqhuy/kanban-server/internal/apierrors"
)

// Board member lists and workspace references arrive from several client
// generations in different shapes: a proper JSON array, a JSON-encoded
// string holding an array, or a comma-separated string. These helpers
// coerce all of them before anything reaches the services.

// normalizeMembers parses a member list from raw. The second return value
// reports whether the field was present at all.
func normalizeMembers(raw json.RawMessage) ([]uuid.UUID, bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false, nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err == nil {
		members, err := parseMemberIDs(items)
		return members, true, err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, apierrors.NewErrInvalidMemberID(string(raw))
	}
	if strings.TrimSpace(s) == "" {
		return []uuid.UUID{}, true, nil
	}

	// A string field: either a JSON-encoded array or comma-separated ids.
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		items = strings.Split(s, ",")
	}

	members, err := parseMemberIDs(items)
	return members, true, err
}

func parseMemberIDs(items []string) ([]uuid.UUID, error) {
	members := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		cleaned := cleanID(item)
		if cleaned == "" {
			continue
		}
		id, err := uuid.Parse(cleaned)
		if err != nil {
			return nil, apierrors.NewErrInvalidMemberID(item)
		}
		members = append(members, id)
	}
	return members, nil
}

// cleanID strips whitespace, surrounding quotes and angle brackets that
// sloppy clients wrap around ids.
func cleanID(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, `'"`)
	if strings.HasPrefix(cleaned, "<") && strings.HasSuffix(cleaned, ">") {
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}
	return strings.TrimSpace(cleaned)
}

// normalizeWorkspace parses a workspace reference from raw: a plain id
// string, a JSON-encoded id string, or an object carrying an id field.
func normalizeWorkspace(raw json.RawMessage) (uuid.UUID, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return uuid.Nil, apierrors.NewErrInvalidWorkspaceID()
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		trimmed := strings.TrimSpace(s)
		// The string itself may hold another JSON value.
		var inner json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &inner); err == nil {
			return normalizeWorkspace(inner)
		}
		return parseWorkspaceID(trimmed)
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.ID != "" {
		return parseWorkspaceID(obj.ID)
	}

	return uuid.Nil, apierrors.NewErrInvalidWorkspaceID()
}

func parseWorkspaceID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(cleanID(s))
	if err != nil {
		return uuid.Nil, apierrors.NewErrInvalidWorkspaceID()
	}
	return id, nil
}
