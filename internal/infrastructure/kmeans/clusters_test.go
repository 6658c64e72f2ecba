package kmeans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clusterTableJSON = `{
	"0": {
		"size": 120,
		"percentage": 40.0,
		"center": [0.1, -0.2],
		"focus": "weight_loss",
		"intensity_level": "Moderate",
		"recommended_days": 4,
		"dominant_features": {"bmi": 1.4, "calories": -0.8}
	},
	"1": {
		"size": 180,
		"percentage": 60.0,
		"center": [-0.3, 0.5],
		"focus": "muscle_gain",
		"intensity_level": "High",
		"recommended_days": 5,
		"dominant_features": {"protein": 1.1}
	}
}`

func TestParseClusterTable(t *testing.T) {
	table, err := ParseClusterTable([]byte(clusterTableJSON))
	require.NoError(t, err)
	require.Len(t, table, 2)

	weightLoss := table["0"]
	assert.Equal(t, "weight_loss", weightLoss.Focus)
	assert.Equal(t, "Moderate", weightLoss.IntensityLevel)
	assert.Equal(t, 4, weightLoss.RecommendedDays)
	assert.Equal(t, 120, weightLoss.Size)
	assert.InDelta(t, 1.4, weightLoss.DominantFeatures["bmi"], 1e-9)

	assert.Equal(t, "muscle_gain", table["1"].Focus)
}

func TestParseClusterTableErrors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseClusterTable([]byte("[]"))
		assert.Error(t, err)
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := ParseClusterTable([]byte("{}"))
		assert.Error(t, err)
	})
}

func TestLoadClusterTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cluster_analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(clusterTableJSON), 0o600))

	table, err := LoadClusterTable(path)
	require.NoError(t, err)
	assert.Len(t, table, 2)

	_, err = LoadClusterTable(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
