package schemaio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ontologyc.dev/compiler/schemaio"
)

const exportFixture = `{
  "schemaVersion": "1.0",
  "properties": {
    "Has name": {"datatype": "Text"},
    "Has age": {"datatype": "Number"}
  },
  "categories": {
    "Person": {
      "properties": {"required": ["Has name"], "optional": ["Has age"]}
    },
    "Employee": {
      "parents": ["Person"],
      "properties": {"required": ["Has age"]}
    }
  }
}`

func TestExport_RoundTripsThroughLoad(t *testing.T) {
	t.Parallel()

	first, warnings, err := schemaio.Load([]byte(exportFixture))
	require.NoError(t, err)
	require.Empty(t, warnings)

	exported, err := schemaio.Export(first)
	require.NoError(t, err)

	second, warnings, err := schemaio.Load(exported)
	require.NoError(t, err)
	require.Empty(t, warnings)

	assert.Equal(t, first.Properties, second.Properties)
	assert.Equal(t, first.Subobjects, second.Subobjects)
	assert.Equal(t, first.Categories, second.Categories)
}

func TestExport_ReExportIsStable(t *testing.T) {
	t.Parallel()

	loaded, _, err := schemaio.Load([]byte(exportFixture))
	require.NoError(t, err)

	first, err := schemaio.Export(loaded)
	require.NoError(t, err)

	reloaded, _, err := schemaio.Load(first)
	require.NoError(t, err)

	second, err := schemaio.Export(reloaded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
