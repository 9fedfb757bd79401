package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func balance(t *testing.T, r model.LedgerRow) string {
	t.Helper()
	require.True(t, r.Balance.Valid)
	return r.Balance.Decimal.StringFixed(2)
}

func TestReconstructSameDayRows(t *testing.T) {
	led := model.Ledger{
		{OpeningBalance: true, Value: dec("100")},
		{Date: day(2024, 1, 2), Value: dec("50")},
		{Date: day(2024, 1, 2), Value: dec("-20")},
		{Date: day(2024, 1, 2), Value: dec("10")},
	}

	got := Reconstruct(led)
	require.Len(t, got, 4)

	assert.Equal(t, "100.00", balance(t, got[0]))
	assert.Equal(t, "140.00", balance(t, got[1]))
	assert.Equal(t, "140.00", balance(t, got[2]))
	assert.Equal(t, "140.00", balance(t, got[3]))

	assert.False(t, got[0].Emphasize)
	assert.False(t, got[1].Emphasize)
	assert.False(t, got[2].Emphasize)
	assert.True(t, got[3].Emphasize)
}

func TestReconstructAcrossDays(t *testing.T) {
	led := model.Ledger{
		{OpeningBalance: true, Value: dec("100")},
		{Date: day(2024, 1, 2), Value: dec("50")},
		{Date: day(2024, 1, 3), Value: dec("-30")},
		{Date: day(2024, 1, 5), Value: dec("5")},
	}

	got := Reconstruct(led)
	assert.Equal(t, "150.00", balance(t, got[1]))
	assert.Equal(t, "120.00", balance(t, got[2]))
	assert.Equal(t, "125.00", balance(t, got[3]))

	// Single-row days are still emphasized.
	assert.True(t, got[1].Emphasize)
	assert.True(t, got[2].Emphasize)
	assert.True(t, got[3].Emphasize)
}

func TestReconstructWithoutOpeningBalance(t *testing.T) {
	led := model.Ledger{
		{Date: day(2024, 1, 2), Value: dec("50")},
	}
	got := Reconstruct(led)
	assert.Equal(t, "50.00", balance(t, got[0]))
}

func TestReconstructAbsentValuesContributeZero(t *testing.T) {
	led := model.Ledger{
		{Date: day(2024, 1, 2), Value: dec("50")},
		{Date: day(2024, 1, 2)}, // unparseable source cell
	}
	got := Reconstruct(led)
	assert.Equal(t, "50.00", balance(t, got[0]))
	assert.Equal(t, "50.00", balance(t, got[1]))
}

func TestReconstructOpeningRowOnly(t *testing.T) {
	led := model.Ledger{
		{OpeningBalance: true, Value: dec("100")},
	}
	got := Reconstruct(led)
	require.Len(t, got, 1)
	assert.Equal(t, "100.00", balance(t, got[0]))
}

func TestReconstructMonthEndOverride(t *testing.T) {
	// The last row of January carries the statement's own terminal
	// balance (905.00); the computed running total would be 900.00.
	led := model.Ledger{
		{Date: day(2024, 1, 10), Value: dec("400")},
		{Date: day(2024, 1, 31), Value: dec("500"), Balance: dec("905")},
		{Date: day(2024, 2, 1), Value: dec("50")},
	}

	got := Reconstruct(led)
	assert.Equal(t, "400.00", balance(t, got[0]))
	assert.Equal(t, "905.00", balance(t, got[1]))
	// February continues from the computed total, not the override.
	assert.Equal(t, "950.00", balance(t, got[2]))
}

func TestReconstructMonthEndWithoutSourceBalance(t *testing.T) {
	led := model.Ledger{
		{Date: day(2024, 1, 10), Value: dec("400")},
		{Date: day(2024, 1, 31), Value: dec("500")},
	}
	got := Reconstruct(led)
	// No statement figure to defer to: the computed total stands.
	assert.Equal(t, "900.00", balance(t, got[1]))
}

func TestReconstructDoesNotMutateInput(t *testing.T) {
	led := model.Ledger{
		{Date: day(2024, 1, 2), Value: dec("50")},
	}
	_ = Reconstruct(led)
	assert.False(t, led[0].Balance.Valid)
	assert.False(t, led[0].Emphasize)
}
