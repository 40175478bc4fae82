package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCollection(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collection.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadUniqueURLs(t *testing.T) {
	path := writeCollection(t,
		"AnonID\tQuery\tQueryTime\tItemRank\tClickURL\n"+
			"1\tcats\t2006-03-01 10:00:00\t1\thttp://cats.example\n"+
			"1\tcats\t2006-03-01 10:00:05\t2\thttp://pets.example\n"+
			"2\tdogs\t2006-03-01 11:00:00\t1\thttp://cats.example\n"+
			"3\tnews\t2006-03-01 12:00:00\n"+
			"4\tmaps\t2006-03-01 13:00:00\t1\t\n")

	urls, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"http://cats.example", "http://pets.example"}, urls)
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeCollection(t,
		"AnonID\tQuery\n"+
			"1\tcats\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrNoClickURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
