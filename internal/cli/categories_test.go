package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/unitconv/internal/domain"
)

func TestCategoriesCmd_ListsInOrder(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Length"))
	assert.True(t, strings.HasPrefix(lines[1], "Temperature"))
	assert.Contains(t, lines[1], "affine")
	assert.True(t, strings.HasPrefix(lines[2], "Weight"))
	assert.True(t, strings.HasPrefix(lines[3], "Volume"))
}

func TestCategoriesCmd_JSON(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "categories", "--json")
	require.NoError(t, err)

	var infos []domain.CategoryInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 4)
	assert.Equal(t, domain.CategoryInfo{Name: "Volume", Kind: domain.CategoryKindLinear, BaseUnit: "Liters"}, infos[3])
}

func TestCategoriesCmd_RejectsArgs(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "categories", "extra")
	assert.Error(t, err)
}

func TestRootCmd_BuildsDefaultService(t *testing.T) {
	old := conversionService
	conversionService = nil
	defer func() { conversionService = old }()

	out, err := execute(t, "categories")

	require.NoError(t, err)
	assert.Contains(t, out, "Length")
	assert.NotNil(t, conversionService)
}
