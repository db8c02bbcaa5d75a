package database

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"welcome-power/model"
)

// Init opens (creating if necessary) the guild settings database.
func Init(dbPath string) (*sqlx.DB, error) {
	return sqlx.Connect("sqlite3", dbPath)
}

// CreateTables ensures the guild settings schema exists.
func CreateTables(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS auto_role_configs (
		"guild_id" TEXT NOT NULL PRIMARY KEY,
		"enabled" INTEGER NOT NULL DEFAULT 0,
		"role_ids" TEXT NOT NULL DEFAULT ''
	);`
	_, err := db.Exec(schema)
	return err
}

type autoRoleRow struct {
	GuildID string `db:"guild_id"`
	Enabled bool   `db:"enabled"`
	RoleIDs string `db:"role_ids"`
}

// LoadAutoRoleConfigs reads every guild's auto-role settings. Role IDs are
// stored as a comma-separated list; the stored order is the grant order.
func LoadAutoRoleConfigs(db *sqlx.DB) (map[string]model.AutoRoleConfig, error) {
	var rows []autoRoleRow
	if err := db.Select(&rows, "SELECT guild_id, enabled, role_ids FROM auto_role_configs"); err != nil {
		return nil, err
	}
	configs := make(map[string]model.AutoRoleConfig, len(rows))
	for _, row := range rows {
		cfg := model.AutoRoleConfig{
			GuildID: row.GuildID,
			Enabled: row.Enabled,
		}
		for _, id := range strings.Split(row.RoleIDs, ",") {
			if id = strings.TrimSpace(id); id != "" {
				cfg.RoleIDs = append(cfg.RoleIDs, id)
			}
		}
		configs[row.GuildID] = cfg
	}
	return configs, nil
}
