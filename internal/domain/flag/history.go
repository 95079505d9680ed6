package flag

import (
	"strconv"
	"time"
)

// HistoryEntry is an immutable record of an is_active transition. One entry
// is appended per successful update that touched is_active, even when the
// new value equals the old one.
type HistoryEntry struct {
	id        uint
	flagID    uint
	userID    uint
	newValue  string
	changedAt time.Time
}

// NewHistoryEntry records the stringified new activity state of a flag.
func NewHistoryEntry(flagID, userID uint, isActive bool) *HistoryEntry {
	return &HistoryEntry{
		flagID:    flagID,
		userID:    userID,
		newValue:  strconv.FormatBool(isActive),
		changedAt: time.Now().UTC(),
	}
}

// ReconstructHistoryEntry rebuilds an entry from the persistence layer.
func ReconstructHistoryEntry(id, flagID, userID uint, newValue string, changedAt time.Time) *HistoryEntry {
	return &HistoryEntry{
		id:        id,
		flagID:    flagID,
		userID:    userID,
		newValue:  newValue,
		changedAt: changedAt,
	}
}

func (h *HistoryEntry) ID() uint             { return h.id }
func (h *HistoryEntry) FlagID() uint         { return h.flagID }
func (h *HistoryEntry) UserID() uint         { return h.userID }
func (h *HistoryEntry) NewValue() string     { return h.newValue }
func (h *HistoryEntry) ChangedAt() time.Time { return h.changedAt }

// SetID is for the persistence layer after insert.
func (h *HistoryEntry) SetID(id uint) { h.id = id }
