package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"welcome-power/model"
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name is acceptable as a record name. Names double
// as file names, so only filesystem-safe characters are allowed.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

// Store persists one JSON document per record under
// <dataRoot>/<guildID>/<kind>/<name>.json. Writes are whole-document
// replacements; concurrent writers to the same key are not coordinated, the
// last write wins. All operations report failure as a boolean or absent
// result and log the underlying cause instead of returning errors.
type Store struct {
	dataRoot string
}

// New creates a Store rooted at dataRoot.
func New(dataRoot string) *Store {
	return &Store{dataRoot: dataRoot}
}

func (st *Store) kindDir(guildID, kind string) string {
	return filepath.Join(st.dataRoot, guildID, kind)
}

func (st *Store) recordPath(guildID, kind, name string) string {
	return filepath.Join(st.kindDir(guildID, kind), name+".json")
}

// Exists reports whether a record is currently stored under the key.
func (st *Store) Exists(guildID, kind, name string) bool {
	if !ValidName(name) {
		return false
	}
	_, err := os.Stat(st.recordPath(guildID, kind, name))
	return err == nil
}

// ListNames returns the names of all stored records of the kind, in no
// particular order.
func (st *Store) ListNames(guildID, kind string) []string {
	entries, err := os.ReadDir(st.kindDir(guildID, kind))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: error listing %s records for guild %s: %v", kind, guildID, err)
		}
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names
}

// Delete removes the record. Returns false when the record did not exist or
// the removal failed.
func (st *Store) Delete(guildID, kind, name string) bool {
	if !ValidName(name) {
		return false
	}
	path := st.recordPath(guildID, kind, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	if err := os.Remove(path); err != nil {
		log.Printf("storage: error deleting %s record %s/%s: %v", kind, guildID, name, err)
		return false
	}
	log.Printf("storage: %s record deleted: %s/%s", kind, guildID, name)
	return true
}

func (st *Store) save(guildID, kind, name string, record any) bool {
	if !ValidName(name) {
		log.Printf("storage: refusing to save %s record with invalid name %q", kind, name)
		return false
	}
	dir := st.kindDir(guildID, kind)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("storage: error creating directory %s: %v", dir, err)
		return false
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Printf("storage: error marshalling %s record %s/%s: %v", kind, guildID, name, err)
		return false
	}
	if err := os.WriteFile(st.recordPath(guildID, kind, name), data, 0644); err != nil {
		log.Printf("storage: error saving %s record %s/%s: %v", kind, guildID, name, err)
		return false
	}
	log.Printf("storage: %s record saved: %s/%s", kind, guildID, name)
	return true
}

func (st *Store) load(guildID, kind, name string, record any) bool {
	if !ValidName(name) {
		return false
	}
	data, err := os.ReadFile(st.recordPath(guildID, kind, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: error loading %s record %s/%s: %v", kind, guildID, name, err)
		}
		return false
	}
	if err := json.Unmarshal(data, record); err != nil {
		log.Printf("storage: error unmarshalling %s record %s/%s: %v", kind, guildID, name, err)
		return false
	}
	return true
}

// SavePanel stamps UpdatedAt and writes the panel record.
func (st *Store) SavePanel(guildID, name string, p *model.Panel) bool {
	p.UpdatedAt = time.Now().UTC()
	return st.save(guildID, model.KindPanel, name, p)
}

// LoadPanel returns the panel record, upgraded to the current schema.
func (st *Store) LoadPanel(guildID, name string) (*model.Panel, bool) {
	var p model.Panel
	if !st.load(guildID, model.KindPanel, name, &p) {
		return nil, false
	}
	p.Normalize()
	return &p, true
}

// LoadAllPanels returns every panel record of the guild keyed by name.
// Unreadable records are skipped.
func (st *Store) LoadAllPanels(guildID string) map[string]*model.Panel {
	panels := make(map[string]*model.Panel)
	for _, name := range st.ListNames(guildID, model.KindPanel) {
		if p, ok := st.LoadPanel(guildID, name); ok {
			panels[name] = p
		}
	}
	return panels
}

// SaveButton stamps UpdatedAt and writes the button record.
func (st *Store) SaveButton(guildID, name string, b *model.Button) bool {
	b.UpdatedAt = time.Now().UTC()
	return st.save(guildID, model.KindButton, name, b)
}

// LoadButton returns the button record.
func (st *Store) LoadButton(guildID, name string) (*model.Button, bool) {
	var b model.Button
	if !st.load(guildID, model.KindButton, name, &b) {
		return nil, false
	}
	return &b, true
}

// SaveMenu stamps UpdatedAt and writes the menu record.
func (st *Store) SaveMenu(guildID, name string, m *model.Menu) bool {
	m.UpdatedAt = time.Now().UTC()
	return st.save(guildID, model.KindMenu, name, m)
}

// LoadMenu returns the menu record.
func (st *Store) LoadMenu(guildID, name string) (*model.Menu, bool) {
	var m model.Menu
	if !st.load(guildID, model.KindMenu, name, &m) {
		return nil, false
	}
	m.Normalize()
	return &m, true
}
