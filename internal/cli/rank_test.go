package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/runoshun/ft-calc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRankCommand_Text(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "2000", "--time", "50")

	require.NoError(t, err)
	assert.Equal(t, "Crop: Lettuce\nCount: 80\nProfit: 400\n\nCrop: Leek\nCount: 1\nProfit: 120\n\n", stdout)
}

func TestRankCommand_Top(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "2000", "--time", "50", "--top", "1")

	require.NoError(t, err)
	assert.Equal(t, "Crop: Lettuce\nCount: 80\nProfit: 400\n\n", stdout)
}

func TestRankCommand_Where(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "2000", "--time", "50", "--where", "sale_price > 100")

	require.NoError(t, err)
	assert.Equal(t, "Crop: Leek\nCount: 1\nProfit: 120\n\n", stdout)
}

func TestRankCommand_InvalidWhere(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "1", "--time", "1", "--where", "price >")

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestRankCommand_JSON(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "2000", "--time", "50", "--format", "json")
	require.NoError(t, err)

	var got []rankingEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []rankingEntry{
		{Rank: 1, Crop: "Lettuce", Count: 80, Profit: 400, Cost: 15, Time: 10, SalePrice: 30},
		{Rank: 2, Crop: "Leek", Count: 1, Profit: 120, Cost: 1250, Time: 45, SalePrice: 1380},
	}, got)
}

func TestRankCommand_JSONEmpty(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "1", "--time", "1", "-f", "json")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestRankCommand_YAML(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "200", "--time", "20", "--format", "yaml")
	require.NoError(t, err)

	var got []rankingEntry
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Lettuce", got[0].Crop)
	assert.Equal(t, int64(40), got[0].Profit)
}

func TestRankCommand_Table(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "2000", "--time", "50", "--format", "table")

	require.NoError(t, err)
	assert.Contains(t, stdout, "RANK")
	assert.Contains(t, stdout, "PROFIT")
	assert.Contains(t, stdout, "Lettuce")
	assert.Contains(t, stdout, "400")
	assert.Less(t, strings.Index(stdout, "Lettuce"), strings.Index(stdout, "Leek"))
}

func TestRankCommand_FormatFromConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile(t, domain.LocalConfigName, "[output]\nformat = \"json\"\n")

	stdout, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "1", "--time", "1")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestRankCommand_InvalidFormat(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "1", "--time", "1", "--format", "xml")

	assert.ErrorIs(t, err, domain.ErrInvalidOutputFmt)
}

func TestRankCommand_RequiresBudgets(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "--catalog", env.Catalog, "rank", "--money", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "time")
}
