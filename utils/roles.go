package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var (
	roleMentionRe = regexp.MustCompile(`^<@&(\d+)>$`)
	numericIDRe   = regexp.MustCompile(`^\d+$`)
)

// ResolveRoleInput resolves a space-separated list of role references against
// the guild's live roles. Each token may be a role mention (<@&id>), a raw
// numeric role ID, or an exact role name matched case-insensitively.
// Duplicates are removed preserving first-seen order. Resolution is
// all-or-nothing: any token that does not correspond to a live role fails the
// whole input.
func ResolveRoleInput(roles []*discordgo.Role, input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("ロールが指定されていません。@role の形式で指定してください。")
	}

	var ids []string
	seen := make(map[string]struct{})
	for _, token := range tokens {
		id, err := resolveRoleToken(roles, token)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func resolveRoleToken(roles []*discordgo.Role, token string) (string, error) {
	if m := roleMentionRe.FindStringSubmatch(token); m != nil {
		if FindRole(roles, m[1]) != nil {
			return m[1], nil
		}
		return "", fmt.Errorf("ロール ID %s が見つかりません。", m[1])
	}
	if numericIDRe.MatchString(token) {
		if FindRole(roles, token) != nil {
			return token, nil
		}
		return "", fmt.Errorf("ロール ID %s が見つかりません。", token)
	}
	for _, r := range roles {
		if strings.EqualFold(r.Name, token) {
			return r.ID, nil
		}
	}
	return "", fmt.Errorf("ロール %q が見つかりません。", token)
}

// FindRole returns the role with the given ID, or nil.
func FindRole(roles []*discordgo.Role, id string) *discordgo.Role {
	for _, r := range roles {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// FormatMessageOption converts the literal "\n" sequences users type into
// slash-command options to real newlines.
func FormatMessageOption(message string) string {
	return strings.ReplaceAll(message, `\n`, "\n")
}
