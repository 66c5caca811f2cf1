package repository

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Columns each repository selects or writes. Keep in sync with the SQL in
// this package; the test catches the migration drifting away from it.
var requiredColumns = map[string][]string{
	"users":    {"id", "name", "email", "password_hash", "role", "telegram_chat_id", "created_at", "updated_at"},
	"events":   {"id", "title", "description", "start_date", "end_date", "created_at", "updated_at"},
	"sessions": {"id", "event_id", "facilitator_id", "time", "location", "created_at", "updated_at"},
	"bookings": {"id", "user_id", "session_id", "status", "timestamp", "created_at", "updated_at"},
}

func TestMigration_CoversRepositoryColumns(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/0001_init.sql")
	require.NoError(t, err)

	tableRe := regexp.MustCompile(`(?s)CREATE TABLE (\w+) \((.*?)\);`)
	tables := map[string]string{}
	for _, m := range tableRe.FindAllStringSubmatch(string(raw), -1) {
		tables[m[1]] = m[2]
	}

	for table, columns := range requiredColumns {
		body, ok := tables[table]
		require.True(t, ok, "table %s not created by migration", table)

		for _, column := range columns {
			found := false
			for _, line := range strings.Split(body, "\n") {
				if strings.HasPrefix(strings.TrimSpace(line), column+" ") {
					found = true
					break
				}
			}
			assert.True(t, found, "%s.%s missing from migration", table, column)
		}
	}
}

func TestMigration_SingleBookingRowPerUserSession(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/0001_init.sql")
	require.NoError(t, err)

	assert.Contains(t, string(raw), "UNIQUE (user_id, session_id)")
}
