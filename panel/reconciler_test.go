package panel

import (
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"welcome-power/model"
	"welcome-power/utils/storage"
)

const testGuild = "100200300400500600"

// fakeSession implements Session in memory and records what was touched.
type fakeSession struct {
	channels        map[string]*discordgo.Channel
	missingMessages map[string]bool
	perms           int64
	edited          []string
	unarchived      []string
	logPosts        []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		channels:        map[string]*discordgo.Channel{},
		missingMessages: map[string]bool{},
		perms:           discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks,
	}
}

func (f *fakeSession) Channel(id string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	ch, ok := f.channels[id]
	if !ok {
		return nil, fmt.Errorf("unknown channel %s", id)
	}
	return ch, nil
}

func (f *fakeSession) ChannelMessage(chID, msgID string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.missingMessages[chID+"/"+msgID] {
		return nil, fmt.Errorf("unknown message %s", msgID)
	}
	return &discordgo.Message{ID: msgID, ChannelID: chID}, nil
}

func (f *fakeSession) UserChannelPermissions(_, _ string, _ ...discordgo.RequestOption) (int64, error) {
	return f.perms, nil
}

func (f *fakeSession) ChannelEditComplex(id string, data *discordgo.ChannelEdit, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	ch, ok := f.channels[id]
	if !ok {
		return nil, fmt.Errorf("unknown channel %s", id)
	}
	if data.Archived != nil && !*data.Archived && ch.ThreadMetadata != nil {
		ch.ThreadMetadata.Archived = false
		f.unarchived = append(f.unarchived, id)
	}
	return ch, nil
}

func (f *fakeSession) ChannelMessageEditEmbed(chID, msgID string, _ *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edited = append(f.edited, chID+"/"+msgID)
	return &discordgo.Message{ID: msgID, ChannelID: chID}, nil
}

func (f *fakeSession) ChannelMessageSendEmbed(chID string, _ *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.logPosts = append(f.logPosts, chID)
	return &discordgo.Message{ChannelID: chID}, nil
}

func reconcilerSnapshot() *Snapshot {
	return &Snapshot{
		Roles: []*discordgo.Role{{ID: "A", Name: "Admin"}},
		Members: []*discordgo.Member{
			{User: &discordgo.User{ID: "u1"}, Roles: []string{"A"}},
		},
	}
}

func TestReconcilePanelsIsolatesFailures(t *testing.T) {
	st := storage.New(t.TempDir())
	f := newFakeSession()
	f.channels["c1"] = &discordgo.Channel{ID: "c1", Type: discordgo.ChannelTypeGuildText}
	f.channels["c2"] = &discordgo.Channel{ID: "c2", Type: discordgo.ChannelTypeGuildText}
	f.missingMessages["c1/m1"] = true

	broken := &model.Panel{RoleIDs: []string{"A"}, Title: "b", ChannelID: "c1", MessageID: "m1"}
	healthy := &model.Panel{RoleIDs: []string{"A"}, Title: "h", ChannelID: "c2", MessageID: "m2"}
	st.SavePanel(testGuild, "broken", broken)
	st.SavePanel(testGuild, "healthy", healthy)
	brokenBefore, _ := st.LoadPanel(testGuild, "broken")

	reconcilePanels(f, st, reconcilerSnapshot(), "bot-user", "log-ch", testGuild,
		map[string]*model.Panel{"broken": broken, "healthy": healthy})

	if len(f.edited) != 1 || f.edited[0] != "c2/m2" {
		t.Errorf("edited = %v, want only the healthy panel", f.edited)
	}
	brokenAfter, _ := st.LoadPanel(testGuild, "broken")
	if !brokenAfter.UpdatedAt.Equal(brokenBefore.UpdatedAt) {
		t.Error("skipped panel record was rewritten")
	}
	if len(f.logPosts) == 0 {
		t.Error("missing message skip was not reported to the log channel")
	}
}

func TestUpdatePanelSkipsWithoutEmbedLinks(t *testing.T) {
	st := storage.New(t.TempDir())
	f := newFakeSession()
	f.perms = discordgo.PermissionSendMessages
	f.channels["c1"] = &discordgo.Channel{ID: "c1", Type: discordgo.ChannelTypeGuildText}

	p := &model.Panel{RoleIDs: []string{"A"}, Title: "t", ChannelID: "c1", MessageID: "m1"}
	updatePanel(f, st, reconcilerSnapshot(), "bot-user", "log-ch", testGuild, "p", p)

	if len(f.edited) != 0 {
		t.Errorf("panel edited despite missing EmbedLinks: %v", f.edited)
	}
	if len(f.logPosts) != 1 || f.logPosts[0] != "log-ch" {
		t.Errorf("permission skip not reported to the log channel: %v", f.logPosts)
	}
}

func TestUpdatePanelSkipsWithoutThreadSendPermission(t *testing.T) {
	st := storage.New(t.TempDir())
	f := newFakeSession()
	// SendMessages alone does not allow posting inside a thread.
	f.perms = discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks
	f.channels["th"] = &discordgo.Channel{
		ID:             "th",
		Type:           discordgo.ChannelTypeGuildPublicThread,
		ThreadMetadata: &discordgo.ThreadMetadata{},
	}

	p := &model.Panel{RoleIDs: []string{"A"}, Title: "t", ChannelID: "th", MessageID: "m1"}
	updatePanel(f, st, reconcilerSnapshot(), "bot-user", "log-ch", testGuild, "p", p)

	if len(f.edited) != 0 {
		t.Errorf("thread panel edited without SendMessagesInThreads: %v", f.edited)
	}
}

func TestUpdatePanelUnarchivesThread(t *testing.T) {
	st := storage.New(t.TempDir())
	f := newFakeSession()
	f.perms = discordgo.PermissionSendMessagesInThreads | discordgo.PermissionEmbedLinks
	f.channels["th"] = &discordgo.Channel{
		ID:             "th",
		Type:           discordgo.ChannelTypeGuildPublicThread,
		ThreadMetadata: &discordgo.ThreadMetadata{Archived: true},
	}

	p := &model.Panel{RoleIDs: []string{"A"}, Title: "t", ChannelID: "th", MessageID: "m1"}
	updatePanel(f, st, reconcilerSnapshot(), "bot-user", "log-ch", testGuild, "p", p)

	if len(f.unarchived) != 1 || f.unarchived[0] != "th" {
		t.Errorf("unarchived = %v, want the archived thread", f.unarchived)
	}
	if len(f.edited) != 1 || f.edited[0] != "th/m1" {
		t.Errorf("edited = %v, want the panel message after unarchiving", f.edited)
	}
}

func TestUpdatePanelBumpsUpdatedAtOnEdit(t *testing.T) {
	st := storage.New(t.TempDir())
	f := newFakeSession()
	f.channels["c1"] = &discordgo.Channel{ID: "c1", Type: discordgo.ChannelTypeGuildText}

	p := &model.Panel{RoleIDs: []string{"A"}, Title: "t", ChannelID: "c1", MessageID: "m1"}
	st.SavePanel(testGuild, "p", p)
	before, _ := st.LoadPanel(testGuild, "p")

	time.Sleep(10 * time.Millisecond)
	updatePanel(f, st, reconcilerSnapshot(), "bot-user", "log-ch", testGuild, "p", p)

	after, _ := st.LoadPanel(testGuild, "p")
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("UpdatedAt not bumped after successful edit: %v then %v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestSelectPanels(t *testing.T) {
	panels := map[string]*model.Panel{
		"p1": {RoleIDs: []string{"A", "B"}},
		"p2": {RoleIDs: []string{"C"}},
		"p3": {RoleIDs: []string{"B", "C"}},
	}

	tests := []struct {
		name    string
		changed []string
		want    []string
	}{
		{"unscoped selects all", nil, []string{"p1", "p2", "p3"}},
		{"single role", []string{"A"}, []string{"p1"}},
		{"shared role", []string{"B"}, []string{"p1", "p3"}},
		{"multiple roles", []string{"A", "C"}, []string{"p1", "p2", "p3"}},
		{"unknown role", []string{"Z"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPanels(panels, tt.changed)
			if len(got) != len(tt.want) {
				t.Fatalf("selected %d panels, want %d (%v)", len(got), len(tt.want), got)
			}
			for _, name := range tt.want {
				if _, ok := got[name]; !ok {
					t.Errorf("panel %s not selected", name)
				}
			}
		})
	}
}
