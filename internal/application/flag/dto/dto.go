package dto

import (
	"time"

	"switchboard/internal/domain/flag"
)

// EvaluationResponse is the public evaluation payload. Result holds the
// matching flag names sorted ascending.
type EvaluationResponse struct {
	Count  int      `json:"count"`
	Result []string `json:"result"`
}

// FlagResponse is the admin-facing representation of a single flag.
type FlagResponse struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	IsActive   bool       `json:"is_active"`
	Groups     []string   `json:"groups"`
	Version    *int       `json:"version"`
	Comment    string     `json:"comment"`
	TTLDays    int        `json:"ttl"`
	JiraTicket string     `json:"jira_ticket"`
	IsHidden   bool       `json:"is_hidden"`
	ExpiresAt  *time.Time `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

// FlagDetailResponse extends FlagResponse with the rendered comment, the
// change history, and a ready-to-paste markdown status badge snippet.
type FlagDetailResponse struct {
	FlagResponse
	CommentHTML  string                 `json:"comment_html"`
	BadgeSnippet string                 `json:"badge_snippet"`
	History      []HistoryEntryResponse `json:"history"`
}

// HistoryEntryResponse is a single activity change record.
type HistoryEntryResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	NewValue  string    `json:"new_value"`
	ChangedAt time.Time `json:"changed_at"`
}

// FlagListResponse carries the admin listing plus the distinct group names
// for filter dropdowns.
type FlagListResponse struct {
	Count  int            `json:"count"`
	Result []FlagResponse `json:"result"`
	Groups []string       `json:"groups"`
}

// FullInfoResponse is the gated full-detail public listing.
type FullInfoResponse struct {
	Count  int            `json:"count"`
	Result []FlagResponse `json:"result"`
}

// CreateFlagRequest is the admin create/overwrite payload. Creating a flag
// under the name of a hidden one resurrects and overwrites it.
type CreateFlagRequest struct {
	Name       string   `json:"name" binding:"required"`
	IsActive   bool     `json:"is_active"`
	Groups     []string `json:"groups" binding:"required,min=1"`
	Version    *int     `json:"version"`
	Comment    string   `json:"comment"`
	TTLDays    int      `json:"ttl"`
	JiraTicket string   `json:"jira_ticket"`
}

// UpdateFlagRequest is a partial patch; nil fields are left untouched.
// ClearVersion removes the version gate entirely.
type UpdateFlagRequest struct {
	IsActive     *bool    `json:"is_active"`
	Groups       []string `json:"groups"`
	Version      *int     `json:"version"`
	ClearVersion bool     `json:"clear_version"`
	Comment      *string  `json:"comment"`
	TTLDays      *int     `json:"ttl"`
	JiraTicket   *string  `json:"jira_ticket"`
}

// SyncResultItem reports the outcome for one remote snapshot entry.
// Outcome is one of "created", "updated", "skipped" or "failed".
type SyncResultItem struct {
	Name    string `json:"name"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// SyncResponse summarises a completed sync run.
type SyncResponse struct {
	Total   int              `json:"total"`
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Failed  int              `json:"failed"`
	Items   []SyncResultItem `json:"items"`
}

// ToFlagResponse converts a domain flag, evaluating hidden state and
// expiry against the given instant.
func ToFlagResponse(f *flag.Flag, now time.Time) FlagResponse {
	return FlagResponse{
		ID:         f.ID(),
		Name:       f.Name(),
		IsActive:   f.IsActive(),
		Groups:     f.Groups(),
		Version:    f.Version(),
		Comment:    f.Comment(),
		TTLDays:    f.TTLDays(),
		JiraTicket: f.JiraTicket(),
		IsHidden:   f.IsHidden(now),
		ExpiresAt:  f.ExpiresAt(),
		CreatedAt:  f.CreatedAt(),
		UpdatedAt:  f.UpdatedAt(),
		DeletedAt:  f.DeletedAt(),
	}
}

// ToFlagResponseList converts a slice of domain flags.
func ToFlagResponseList(flags []*flag.Flag, now time.Time) []FlagResponse {
	result := make([]FlagResponse, 0, len(flags))
	for _, f := range flags {
		result = append(result, ToFlagResponse(f, now))
	}
	return result
}

// ToHistoryResponseList converts history entries.
func ToHistoryResponseList(entries []*flag.HistoryEntry) []HistoryEntryResponse {
	result := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, HistoryEntryResponse{
			ID:        e.ID(),
			UserID:    e.UserID(),
			NewValue:  e.NewValue(),
			ChangedAt: e.ChangedAt(),
		})
	}
	return result
}
