package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackageCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid catalog", func(t *testing.T) {
		t.Parallel()

		data := []byte(`[
			{"id":"bronze","name":"Bronze","price":15000,"eggId":1,"nestId":1,"locationId":1,"billingDays":30},
			{"id":"silver","name":"Silver","price":30000,"eggId":1,"nestId":1,"locationId":2,"billingDays":30}
		]`)

		catalog, err := ParsePackageCatalog(data)
		require.NoError(t, err)
		assert.Len(t, catalog, 2)

		bronze, ok := catalog.Get("bronze")
		require.True(t, ok)
		assert.Equal(t, int64(15000), bronze.Price)
		assert.Equal(t, 1, bronze.LocationId)

		_, ok = catalog.Get("gold")
		assert.False(t, ok)
	})

	t.Run("package without id", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePackageCatalog([]byte(`[{"name":"Bronze","price":15000,"locationId":1}]`))
		assert.Error(t, err)
	})

	t.Run("duplicate package id", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePackageCatalog([]byte(`[
			{"id":"bronze","price":15000,"locationId":1},
			{"id":"bronze","price":20000,"locationId":1}
		]`))
		assert.Error(t, err)
	})

	t.Run("non-positive price", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePackageCatalog([]byte(`[{"id":"bronze","price":0,"locationId":1}]`))
		assert.Error(t, err)
	})

	t.Run("missing deployment location", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePackageCatalog([]byte(`[{"id":"bronze","price":15000}]`))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := ParsePackageCatalog([]byte(`not json`))
		assert.Error(t, err)
	})
}
