package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	// Time of day is dropped; year/month/day survive the textual form
	original := time.Date(2024, time.March, 7, 15, 42, 9, 0, time.Local)

	formatted := FormatDate(original)
	assert.Equal(t, "2024-03-07", formatted)

	parsed, err := ParseDate(formatted)
	require.NoError(t, err)

	assert.Equal(t, original.Year(), parsed.Year())
	assert.Equal(t, original.Month(), parsed.Month())
	assert.Equal(t, original.Day(), parsed.Day())
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "3-7-2024", "2024/03/07", "not a date"} {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseExpenseType(t *testing.T) {
	income, err := ParseExpenseType("INCOME")
	require.NoError(t, err)
	assert.Equal(t, Income, income)

	expense, err := ParseExpenseType("EXPENSE")
	require.NoError(t, err)
	assert.Equal(t, Expense, expense)

	for _, input := range []string{"", "income", "REFUND", "EXPENSE "} {
		_, err := ParseExpenseType(input)
		assert.Error(t, err, "input %q", input)
	}
}
