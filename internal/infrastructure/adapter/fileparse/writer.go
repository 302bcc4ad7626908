package fileparse

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jdvillegas/billing-processor/internal/domain/entity"
)

// normalizedHeader is the fixed column layout of cleaned customer exports
var normalizedHeader = []string{"identification_number", "name", "address", "phone", "email"}

// WriteNormalizedCustomers writes cleaned customer records as a CSV file
// under outputDir and returns the generated filename. The name carries a
// timestamp plus a uuid suffix so concurrent normalize requests never
// collide on the server-side path.
func WriteNormalizedCustomers(outputDir string, records []entity.CustomerFragment, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("customers_normalized_%s_%s.csv",
		now.Format("20060102T150405"), uuid.NewString()[:8])
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(normalizedHeader); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, record := range records {
		row := []string{
			record.IdentificationNumber,
			record.Name,
			record.Address,
			record.Phone,
			record.Email,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush output: %w", err)
	}

	return filename, nil
}
