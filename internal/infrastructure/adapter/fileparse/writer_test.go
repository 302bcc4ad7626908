package fileparse

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNormalizedCustomers(t *testing.T) {
	now := time.Date(2024, 5, 3, 10, 30, 0, 0, time.UTC)

	t.Run("Writes header and records", func(t *testing.T) {
		dir := t.TempDir()
		records := []entity.CustomerFragment{
			{IdentificationNumber: "900123", Name: "Maria", Address: "Calle 10", Phone: "310", Email: "m@x.co"},
			{IdentificationNumber: "900456", Name: "Pedro"},
		}

		filename, err := WriteNormalizedCustomers(dir, records, now)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "customers_normalized_20240503T103000_"))
		assert.True(t, strings.HasSuffix(filename, ".csv"))

		file, err := os.Open(filepath.Join(dir, filename))
		require.NoError(t, err)
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"identification_number", "name", "address", "phone", "email"}, rows[0])
		assert.Equal(t, []string{"900123", "Maria", "Calle 10", "310", "m@x.co"}, rows[1])
		assert.Equal(t, []string{"900456", "Pedro", "", "", ""}, rows[2])
	})

	t.Run("Creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")

		filename, err := WriteNormalizedCustomers(dir, nil, now)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, filename))
		assert.NoError(t, err)
	})

	t.Run("Filenames differ across calls", func(t *testing.T) {
		dir := t.TempDir()

		first, err := WriteNormalizedCustomers(dir, nil, now)
		require.NoError(t, err)
		second, err := WriteNormalizedCustomers(dir, nil, now)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
