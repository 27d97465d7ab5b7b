package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWiki(t *testing.T) {
	table := Table{
		Headers: []string{"h1", "h2", "h3"},
		Rows: [][]string{
			{"d11", "d12", "d13"},
			{"d21", "d22", "d23"},
		},
	}
	assert.Equal(t, "||h1||h2||h3||\n|d11|d12|d13|\n|d21|d22|d23|\n", table.Wiki())
}

func TestWiki_HeadersOnly(t *testing.T) {
	table := Table{Headers: []string{"a", "b"}}
	assert.Equal(t, "||a||b||\n", table.Wiki())
}

func TestFromCSV(t *testing.T) {
	in := "id,name\n1,alice\n2,bob\n"
	table, err := FromCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, table.Headers)
	assert.Equal(t, [][]string{{"1", "alice"}, {"2", "bob"}}, table.Rows)
}

func TestFromCSV_Empty(t *testing.T) {
	_, err := FromCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestFromCSV_RaggedRows(t *testing.T) {
	_, err := FromCSV(strings.NewReader("a,b\n1\n"))
	assert.Error(t, err)
}

func TestFromCSV_RoundTripToWiki(t *testing.T) {
	in := "owner,object\napp,pkg_orders\n"
	table, err := FromCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "||owner||object||\n|app|pkg_orders|\n", table.Wiki())
}
