package importer

import (
	"github.com/jdvillegas/billing-processor/internal/domain/entity"
)

// DeduplicateCustomers collapses records to one per identification number.
// When several records share a key the last occurrence wins; the surviving
// records are emitted in first-seen key order so the output is deterministic
// for a given input.
func DeduplicateCustomers(records []entity.CustomerFragment) []entity.CustomerFragment {
	index := make(map[string]int, len(records))
	deduped := make([]entity.CustomerFragment, 0, len(records))

	for _, record := range records {
		if pos, seen := index[record.IdentificationNumber]; seen {
			deduped[pos] = record
			continue
		}
		index[record.IdentificationNumber] = len(deduped)
		deduped = append(deduped, record)
	}

	return deduped
}
