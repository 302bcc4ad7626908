package fileparse

import (
	"strings"
	"testing"

	errs "github.com/jdvillegas/billing-processor/internal/domain/error"
	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRows(t *testing.T, src usecase.RowSource) []usecase.Row {
	t.Helper()
	var rows []usecase.Row
	err := src.ForEach(func(row usecase.Row) error {
		// The delimited source reuses nothing, but copy anyway so the
		// assertion below never depends on that
		copied := make(usecase.Row, len(row))
		for k, v := range row {
			copied[k] = v
		}
		rows = append(rows, copied)
		return nil
	})
	require.NoError(t, err)
	return rows
}

func TestDelimitedSource(t *testing.T) {
	t.Run("Header line names the fields", func(t *testing.T) {
		input := "identification_number,name\n900123,Maria\n900456,Pedro\n"
		rows := collectRows(t, NewDelimitedSource(strings.NewReader(input)))

		require.Len(t, rows, 2)
		assert.Equal(t, "900123", rows[0]["identification_number"])
		assert.Equal(t, "Maria", rows[0]["name"])
		assert.Equal(t, "Pedro", rows[1]["name"])
	})

	t.Run("Header columns are trimmed", func(t *testing.T) {
		input := " identification_number , name \n900123,Maria\n"
		rows := collectRows(t, NewDelimitedSource(strings.NewReader(input)))

		require.Len(t, rows, 1)
		assert.Equal(t, "900123", rows[0]["identification_number"])
	})

	t.Run("Short rows map missing columns to empty", func(t *testing.T) {
		input := "identification_number,name,email\n900123,Maria\n"
		rows := collectRows(t, NewDelimitedSource(strings.NewReader(input)))

		require.Len(t, rows, 1)
		assert.Equal(t, "Maria", rows[0]["name"])
		assert.Equal(t, "", rows[0]["email"])
	})

	t.Run("Extra fields are dropped", func(t *testing.T) {
		input := "identification_number,name\n900123,Maria,extra,fields\n"
		rows := collectRows(t, NewDelimitedSource(strings.NewReader(input)))

		require.Len(t, rows, 1)
		assert.Len(t, rows[0], 2)
	})

	t.Run("Empty file yields no rows", func(t *testing.T) {
		rows := collectRows(t, NewDelimitedSource(strings.NewReader("")))
		assert.Empty(t, rows)
	})

	t.Run("Header only yields no rows", func(t *testing.T) {
		rows := collectRows(t, NewDelimitedSource(strings.NewReader("identification_number,name\n")))
		assert.Empty(t, rows)
	})

	t.Run("Unparseable row is skipped", func(t *testing.T) {
		input := "identification_number,name\n900123,\"Mar\"ia\n900456,Pedro\n"
		rows := collectRows(t, NewDelimitedSource(strings.NewReader(input)))

		require.Len(t, rows, 1)
		assert.Equal(t, "900456", rows[0]["identification_number"])
	})

	t.Run("Visitor error aborts iteration", func(t *testing.T) {
		input := "identification_number\n111\n222\n333\n"
		seen := 0
		err := NewDelimitedSource(strings.NewReader(input)).ForEach(func(row usecase.Row) error {
			seen++
			if seen == 2 {
				return errs.ErrConstraintViolation
			}
			return nil
		})

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.Equal(t, 2, seen)
	})
}

func TestLineSource(t *testing.T) {
	t.Run("Each line becomes one record", func(t *testing.T) {
		src, err := NewLineSource(strings.NewReader("900123\n900456\n"))
		require.NoError(t, err)

		rows := collectRows(t, src)
		require.Len(t, rows, 2)
		assert.Equal(t, "900123", rows[0][LineField])
		assert.Equal(t, "900456", rows[1][LineField])
	})

	t.Run("Blank lines and whitespace are dropped", func(t *testing.T) {
		src, err := NewLineSource(strings.NewReader("  900123  \n\n\r\n 900456\n"))
		require.NoError(t, err)

		rows := collectRows(t, src)
		require.Len(t, rows, 2)
		assert.Equal(t, "900123", rows[0][LineField])
	})

	t.Run("Windows line endings", func(t *testing.T) {
		src, err := NewLineSource(strings.NewReader("900123\r\n900456\r\n"))
		require.NoError(t, err)

		rows := collectRows(t, src)
		require.Len(t, rows, 2)
		assert.Equal(t, "900456", rows[1][LineField])
	})

	t.Run("Empty input", func(t *testing.T) {
		src, err := NewLineSource(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, collectRows(t, src))
	})
}

func TestSourceForExtension(t *testing.T) {
	t.Run("CSV dispatches to delimited", func(t *testing.T) {
		src, err := SourceForExtension(strings.NewReader("a,b\n1,2\n"), ".csv")
		require.NoError(t, err)
		assert.IsType(t, &DelimitedSource{}, src)
	})

	t.Run("TXT dispatches to lines", func(t *testing.T) {
		src, err := SourceForExtension(strings.NewReader("900123\n"), ".txt")
		require.NoError(t, err)
		assert.IsType(t, &LineSource{}, src)
	})

	t.Run("Extension matching is case insensitive", func(t *testing.T) {
		_, err := SourceForExtension(strings.NewReader(""), ".CSV")
		assert.NoError(t, err)
	})

	t.Run("Other extensions are rejected", func(t *testing.T) {
		for _, ext := range []string{".xlsx", ".json", ""} {
			_, err := SourceForExtension(strings.NewReader(""), ext)
			assert.ErrorIs(t, err, errs.ErrUnsupportedFileType)
		}
	})
}
