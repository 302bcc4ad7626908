package importer

import (
	"testing"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestDeduplicateCustomers(t *testing.T) {
	t.Run("Last occurrence wins", func(t *testing.T) {
		records := []entity.CustomerFragment{
			{IdentificationNumber: "111", Name: "First"},
			{IdentificationNumber: "222", Name: "Other"},
			{IdentificationNumber: "111", Name: "Last"},
		}

		deduped := DeduplicateCustomers(records)
		assert.Len(t, deduped, 2)
		assert.Equal(t, "Last", deduped[0].Name)
		assert.Equal(t, "Other", deduped[1].Name)
	})

	t.Run("Output keeps first-seen key order", func(t *testing.T) {
		records := []entity.CustomerFragment{
			{IdentificationNumber: "333"},
			{IdentificationNumber: "111"},
			{IdentificationNumber: "222"},
			{IdentificationNumber: "111"},
			{IdentificationNumber: "333"},
		}

		deduped := DeduplicateCustomers(records)
		keys := make([]string, 0, len(deduped))
		for _, r := range deduped {
			keys = append(keys, r.IdentificationNumber)
		}
		assert.Equal(t, []string{"333", "111", "222"}, keys)
	})

	t.Run("No duplicates passes through", func(t *testing.T) {
		records := []entity.CustomerFragment{
			{IdentificationNumber: "111"},
			{IdentificationNumber: "222"},
		}
		assert.Equal(t, records, DeduplicateCustomers(records))
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, DeduplicateCustomers(nil))
	})
}
