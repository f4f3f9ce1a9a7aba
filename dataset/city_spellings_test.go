package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/dataset/datasettest"
	"bikeshare/domain/entities/filter"
	"bikeshare/explorer/config"
	"bikeshare/input"
)

func TestLoadData_CitySpellingsShareTheFile(t *testing.T) {
	explorerConfig, err := config.LoadConfig("")
	require.NoError(t, err)
	cities := input.NewEnumeration(explorerConfig.Cities)
	loader := dataset.NewLoader(dataset.LoaderConfig{
		DataDir: datasettest.DataDir(t),
		Columns: explorerConfig.Columns,
	})

	var expected [][]string
	for _, spelling := range []string{"new york city", "new york", "NewYork"} {
		cityFile, ok := cities.Lookup(spelling)
		require.True(t, ok, spelling)
		assert.Equal(t, "new_york_city.csv", cityFile)

		ds, err := loader.LoadData(filter.Unfiltered(cityFile))
		require.NoError(t, err)
		require.Equal(t, 12, ds.Nrow())

		if expected == nil {
			expected = ds.Frame.Records()
			continue
		}
		assert.Equal(t, expected, ds.Frame.Records(), spelling)
	}
}
