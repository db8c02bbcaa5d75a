package panel

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const memberPageSize = 1000

// Snapshot is a point-in-time view of a guild's roles and members. Panel
// content is computed from it alone, so callers must fetch a fresh snapshot
// before every pass that depends on current membership.
type Snapshot struct {
	Roles   []*discordgo.Role
	Members []*discordgo.Member
}

// FetchSnapshot pulls the guild's roles and its full member list. Members are
// paged through the REST API rather than read from the session state cache so
// the snapshot is current even for guilds the gateway has not fully synced.
func FetchSnapshot(s *discordgo.Session, guildID string) (*Snapshot, error) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("fetching roles for guild %s: %w", guildID, err)
	}

	var members []*discordgo.Member
	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching members for guild %s: %w", guildID, err)
		}
		members = append(members, page...)
		if len(page) < memberPageSize {
			break
		}
		after = page[len(page)-1].User.ID
	}

	return &Snapshot{Roles: roles, Members: members}, nil
}

// Role returns the live role with the given ID, or nil when it no longer
// exists.
func (sn *Snapshot) Role(id string) *discordgo.Role {
	for _, r := range sn.Roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// MembersWithRole returns the members holding the role, in snapshot order.
func (sn *Snapshot) MembersWithRole(roleID string) []*discordgo.Member {
	var out []*discordgo.Member
	for _, m := range sn.Members {
		for _, id := range m.Roles {
			if id == roleID {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
