package model

import "time"

// Record kinds, used as the per-guild storage subdirectory name.
const (
	KindPanel  = "panel"
	KindButton = "button"
	KindMenu   = "menu"
)

// Panel is a live membership display: an embed listing, for each configured
// role, the members currently holding it. ChannelID and MessageID identify the
// message showing the panel; once set they never change, edits and
// reconciliation rewrite the message content in place.
type Panel struct {
	RoleIDs   []string  `json:"roleIds"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	ShowCount bool      `json:"showCount"`
	ChannelID string    `json:"channelId,omitempty"`
	MessageID string    `json:"messageId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// LegacyRoleID carries the single-role field written by old record
	// versions. Normalize folds it into RoleIDs; it is never written back.
	LegacyRoleID string `json:"roleId,omitempty"`
}

// Normalize upgrades a freshly loaded record to the current schema: the legacy
// single roleId becomes the first entry of RoleIDs, and duplicates are removed
// preserving first-seen order. Call once at load time so the rest of the code
// only ever sees the canonical shape.
func (p *Panel) Normalize() {
	if p.LegacyRoleID != "" {
		p.RoleIDs = append([]string{p.LegacyRoleID}, p.RoleIDs...)
		p.LegacyRoleID = ""
	}
	p.RoleIDs = dedupIDs(p.RoleIDs)
}

// Button is a single-role toggle: one message carrying a join and a leave
// button for RoleID.
type Button struct {
	RoleID     string    `json:"roleId"`
	Message    string    `json:"message"`
	JoinLabel  string    `json:"joinLabel"`
	LeaveLabel string    `json:"leaveLabel"`
	JoinEmoji  string    `json:"joinEmoji,omitempty"`
	LeaveEmoji string    `json:"leaveEmoji,omitempty"`
	ChannelID  string    `json:"channelId,omitempty"`
	MessageID  string    `json:"messageId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Menu is a multi-select role toggle bound to up to 25 roles; the select
// option order follows RoleIDs.
type Menu struct {
	RoleIDs     []string  `json:"roleIds"`
	Message     string    `json:"message"`
	Placeholder string    `json:"placeholder"`
	ChannelID   string    `json:"channelId,omitempty"`
	MessageID   string    `json:"messageId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize removes duplicate role ids preserving first-seen order.
func (m *Menu) Normalize() {
	m.RoleIDs = dedupIDs(m.RoleIDs)
}

func dedupIDs(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
