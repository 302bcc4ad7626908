package fileparse

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
)

// LineField is the implicit field name records of line-oriented files are
// surfaced under
const LineField = "identification_number"

// DelimitedSource streams the rows of a delimited file with a header line.
// The file is never held in memory as a whole.
type DelimitedSource struct {
	reader io.Reader
}

// NewDelimitedSource creates a row source over a CSV stream
func NewDelimitedSource(reader io.Reader) *DelimitedSource {
	return &DelimitedSource{reader: reader}
}

// ForEach parses the stream and calls fn once per data row. The first line
// is the header. Field-count mismatches are tolerated: short rows map the
// missing columns to "", extra fields are dropped, and a row the csv reader
// rejects outright is skipped. A reader I/O failure aborts with the read
// error; an error returned by fn aborts with that error.
func (s *DelimitedSource) ForEach(fn func(usecase.Row) error) error {
	csvReader := csv.NewReader(bufio.NewReader(s.reader))
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("read header: %w", err)
	}
	headers := make([]string, len(header))
	for i, column := range header {
		headers[i] = strings.TrimSpace(column)
	}

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			return fmt.Errorf("read row: %w", err)
		}

		row := make(usecase.Row, len(headers))
		for i, column := range headers {
			if i < len(record) {
				row[column] = record[i]
			} else {
				row[column] = ""
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
}

// LineSource yields each non-empty trimmed line of a text file as one record
// under the implicit field. Line-oriented files are small enumerations, so
// loading the whole file is fine here.
type LineSource struct {
	lines []string
}

// NewLineSource creates a row source over newline-delimited text
func NewLineSource(reader io.Reader) (*LineSource, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return &LineSource{lines: lines}, nil
}

// ForEach calls fn once per non-empty line
func (s *LineSource) ForEach(fn func(usecase.Row) error) error {
	for _, line := range s.lines {
		if err := fn(usecase.Row{LineField: line}); err != nil {
			return err
		}
	}
	return nil
}

// SourceForExtension dispatches on the uploaded file's extension: ".csv" is
// parsed as delimited-with-header, ".txt" as line-oriented. Anything else is
// rejected before any parsing happens.
func SourceForExtension(reader io.Reader, ext string) (usecase.RowSource, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return NewDelimitedSource(reader), nil
	case ".txt":
		return NewLineSource(reader)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedFileType, ext)
	}
}
