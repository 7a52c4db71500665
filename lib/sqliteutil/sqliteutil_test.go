package sqliteutil_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"firewatch-backend/lib/sqliteutil"
	"firewatch-backend/lib/testutil"
)

const schema = `CREATE TABLE notes (id INTEGER PRIMARY KEY AUTOINCREMENT, body TEXT NOT NULL);`

func TestOpenDB(t *testing.T) {
	database, err := sqliteutil.OpenDB(schema, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	rndm := rand.New(rand.NewSource(673))
	want := make([]string, 5)
	for i := range want {
		want[i] = testutil.RandomString(rndm, 12)
		_, err := database.Exec("INSERT INTO notes (body) VALUES (?)", want[i])
		require.NoError(t, err)
	}

	rows, err := database.Query("SELECT body FROM notes ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	var got []string
	for rows.Next() {
		var body string
		require.NoError(t, rows.Scan(&body))
		got = append(got, body)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, want, got)
}

func TestOpenDBToleratesExistingSchema(t *testing.T) {
	path := t.TempDir() + "/notes.db"

	first, err := sqliteutil.OpenDB(schema, path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := sqliteutil.OpenDB(schema, path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}
