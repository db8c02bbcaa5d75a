package panel

import (
	"fmt"
	"log"
	"sort"

	"github.com/bwmarrin/discordgo"

	"welcome-power/model"
	"welcome-power/utils"
	"welcome-power/utils/storage"
)

// Session is the subset of discord session operations panel reconciliation
// performs. *discordgo.Session satisfies it.
type Session interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error)
	ChannelEditComplex(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// UpdateRolePanels re-renders the guild's stored panels and edits their
// messages in place. When changedRoleIDs is non-empty only panels whose role
// set intersects it are touched; otherwise every panel is refreshed.
//
// Panels are always fully re-rendered rather than diffed against the current
// message: BuildPanelEmbed is deterministic, membership changes are rare
// relative to render cost, and an unnecessary edit is harmless.
func UpdateRolePanels(s *discordgo.Session, store *storage.Store, logChannelID, guildID string, changedRoleIDs []string) {
	panels := store.LoadAllPanels(guildID)
	if len(panels) == 0 {
		return
	}

	selected := SelectPanels(panels, changedRoleIDs)
	if len(selected) == 0 {
		return
	}

	snap, err := FetchSnapshot(s, guildID)
	if err != nil {
		log.Printf("rolepanel: error fetching guild snapshot for %s: %v", guildID, err)
		return
	}

	reconcilePanels(s, store, snap, s.State.User.ID, logChannelID, guildID, selected)
}

// reconcilePanels walks the selected panels in name order. Each panel is
// processed independently; a failure is logged and the loop moves on.
func reconcilePanels(s Session, store *storage.Store, snap *Snapshot, botUserID, logChannelID, guildID string, selected map[string]*model.Panel) {
	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		updatePanel(s, store, snap, botUserID, logChannelID, guildID, name, selected[name])
	}
}

// SelectPanels filters panels to those affected by the changed role ids. An
// empty changed set selects everything.
func SelectPanels(panels map[string]*model.Panel, changedRoleIDs []string) map[string]*model.Panel {
	if len(changedRoleIDs) == 0 {
		return panels
	}
	changed := make(map[string]struct{}, len(changedRoleIDs))
	for _, id := range changedRoleIDs {
		changed[id] = struct{}{}
	}
	selected := make(map[string]*model.Panel)
	for name, p := range panels {
		for _, id := range p.RoleIDs {
			if _, ok := changed[id]; ok {
				selected[name] = p
				break
			}
		}
	}
	return selected
}

func updatePanel(s Session, store *storage.Store, snap *Snapshot, botUserID, logChannelID, guildID, name string, p *model.Panel) {
	if p.ChannelID == "" || p.MessageID == "" {
		return
	}

	channel, err := s.Channel(p.ChannelID)
	if err != nil {
		log.Printf("rolepanel: channel %s for panel %s/%s not found, skipping: %v", p.ChannelID, guildID, name, err)
		utils.LogWarn(s, logChannelID, "RolePanel", "Update",
			fmt.Sprintf("パネル \"%s\" のチャンネル <#%s> が見つからないためスキップしました。", name, p.ChannelID))
		return
	}
	if _, err := s.ChannelMessage(p.ChannelID, p.MessageID); err != nil {
		log.Printf("rolepanel: message %s for panel %s/%s not found, skipping: %v", p.MessageID, guildID, name, err)
		utils.LogWarn(s, logChannelID, "RolePanel", "Update",
			fmt.Sprintf("パネル \"%s\" のメッセージが見つからないためスキップしました。", name))
		return
	}

	perms, err := s.UserChannelPermissions(botUserID, p.ChannelID)
	if err != nil {
		log.Printf("rolepanel: error computing permissions in channel %s for panel %s/%s: %v", p.ChannelID, guildID, name, err)
		return
	}
	sendPerm := int64(discordgo.PermissionSendMessages)
	sendPermName := "SendMessages"
	if channel.IsThread() {
		sendPerm = discordgo.PermissionSendMessagesInThreads
		sendPermName = "SendMessagesInThreads"
	}
	if perms&sendPerm == 0 {
		log.Printf("rolepanel: missing %s permission in channel %s, skipping panel %s/%s", sendPermName, p.ChannelID, guildID, name)
		utils.LogError(s, logChannelID, "RolePanel", "Update",
			fmt.Sprintf("<#%s> での %s 権限がないため、パネル \"%s\" を更新できません。", p.ChannelID, sendPermName, name))
		return
	}
	if perms&discordgo.PermissionEmbedLinks == 0 {
		log.Printf("rolepanel: missing EmbedLinks permission in channel %s, skipping panel %s/%s", p.ChannelID, guildID, name)
		utils.LogError(s, logChannelID, "RolePanel", "Update",
			fmt.Sprintf("<#%s> での EmbedLinks 権限がないため、パネル \"%s\" を更新できません。", p.ChannelID, name))
		return
	}

	if channel.IsThread() && channel.ThreadMetadata != nil && channel.ThreadMetadata.Archived {
		if err := unarchiveThread(s, p.ChannelID); err != nil {
			log.Printf("rolepanel: error unarchiving thread %s for panel %s/%s, skipping: %v", p.ChannelID, guildID, name, err)
			utils.LogWarn(s, logChannelID, "RolePanel", "Update",
				fmt.Sprintf("スレッド <#%s> のアーカイブ解除に失敗したため、パネル \"%s\" をスキップしました。", p.ChannelID, name))
			return
		}
	}

	embed := BuildPanelEmbed(snap, p)
	if _, err := s.ChannelMessageEditEmbed(p.ChannelID, p.MessageID, embed); err != nil {
		log.Printf("rolepanel: error editing panel message %s/%s: %v", guildID, name, err)
		return
	}

	store.SavePanel(guildID, name, p)
}

func unarchiveThread(s Session, threadID string) error {
	archived := false
	_, err := s.ChannelEditComplex(threadID, &discordgo.ChannelEdit{
		Archived: &archived,
	})
	return err
}
