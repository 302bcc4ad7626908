package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBillingPeriod(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Year-month gets day appended", "2024-05", "2024-05-01"},
		{"Full date passes through", "2024-05-15", "2024-05-15"},
		{"Empty passes through", "", ""},
		{"Short value passes through", "2024", "2024"},
		{"Seven chars always get suffix", "garbage", "garbage-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeBillingPeriod(tc.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100"},
			{"0.01", "0.01"},
			{"1234567.89", "1234567.89"},
			{"-5.50", "-5.5"},
			{"0", "0"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				got, err := ParseAmount(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			})
		}
	})

	t.Run("Empty is zero", func(t *testing.T) {
		got, err := ParseAmount("")
		assert.NoError(t, err)
		assert.Equal(t, "0", got)
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		for _, input := range []string{"abc", "1.2.3", "$100"} {
			t.Run(input, func(t *testing.T) {
				_, err := ParseAmount(input)
				assert.Error(t, err)
			})
		}
	})
}
