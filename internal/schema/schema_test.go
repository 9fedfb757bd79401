package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
)

var testSynonyms = Synonyms{
	RoleDate:    {"data", "dataocorrencia", "data da ocorrencia"},
	RoleValue:   {"valor", "valores", "vlr", "val"},
	RoleBalance: {"saldo", "saldos", "sld"},
}

func TestDetectFindsHeaderRow(t *testing.T) {
	grid := model.Grid{
		{"Extrato de Conta Corrente"},
		{},
		{"Período", "01/01/2024 a 31/01/2024"},
		{"Data", "Histórico", "Valor", "Saldo"},
		{"02/01/2024", "TED recebida", "1.000,00", "1.000,00"},
	}

	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.NoError(t, err)
	assert.Equal(t, 3, det.HeaderRow)
	assert.Equal(t, 0, det.Column(RoleDate, false))
	assert.Equal(t, 2, det.Column(RoleValue, false))
	assert.Equal(t, 3, det.Column(RoleBalance, false))
}

func TestDetectFirstQualifyingRowWins(t *testing.T) {
	grid := model.Grid{
		{"Data", "Valor"},
		{"Data", "Valor", "Saldo"},
	}
	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.NoError(t, err)
	assert.Equal(t, 0, det.HeaderRow)
}

func TestDetectRequiresAllRoles(t *testing.T) {
	grid := model.Grid{
		{"Data", "Histórico"}, // no value column here
		{"Data", "Histórico", "Valor", "Saldo"},
	}
	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue, RoleBalance})
	require.NoError(t, err)
	assert.Equal(t, 1, det.HeaderRow)
}

func TestDetectNotFound(t *testing.T) {
	grid := model.Grid{
		{"linha um"},
		{"linha dois"},
	}
	_, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Len(t, nf.Preview, 2)
}

func TestColumnExactBeatsSubstring(t *testing.T) {
	grid := model.Grid{
		{"Data da Ocorrência", "Valor do Documento", "Valor"},
	}
	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.NoError(t, err)

	// "Valor" is an exact synonym match, "Valor do Documento" only a
	// substring match; exact wins even with preferSecond set.
	assert.Equal(t, 2, det.Column(RoleValue, false))
	assert.Equal(t, 2, det.Column(RoleValue, true))
}

func TestColumnExactMatchOnMultiWordSynonym(t *testing.T) {
	// "Data da Ocorrência" equals a synonym listed after "data"; the
	// exact match must not be downgraded by the earlier substring hit.
	grid := model.Grid{
		{"Data Mov", "Data da Ocorrência", "Valor"},
	}
	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.NoError(t, err)

	assert.Equal(t, 1, det.Column(RoleDate, false))
}

func TestColumnPrefersSecondOccurrence(t *testing.T) {
	grid := model.Grid{
		{"Data", "Vlr Documento", "Vlr Lançamento"},
	}
	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.NoError(t, err)

	assert.Equal(t, 1, det.Column(RoleValue, false))
	assert.Equal(t, 2, det.Column(RoleValue, true))
}

func TestColumnUnmatched(t *testing.T) {
	grid := model.Grid{{"Data", "Valor"}}
	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.NoError(t, err)
	assert.Equal(t, -1, det.Column(RoleSide, false))
}

func TestHeaderMap(t *testing.T) {
	grid := model.Grid{{"Data", "Valor", "Saldo"}}
	det, err := Detect(grid, testSynonyms, []Role{RoleDate, RoleValue})
	require.NoError(t, err)

	hm := det.Header()
	assert.Equal(t, []int{0}, hm[RoleDate])
	assert.Equal(t, []int{1}, hm[RoleValue])
	assert.Equal(t, []int{2}, hm[RoleBalance])
}

func TestFindOpeningBalance(t *testing.T) {
	grid := model.Grid{
		{"Data", "Histórico", "Valor"},
		{"", "SALDO ANTERIOR", "100,00"},
		{"02/01/2024", "TED", "50,00"},
	}
	v, row := FindOpeningBalance(grid)
	require.True(t, v.Valid)
	assert.Equal(t, "100.00", v.Decimal.StringFixed(2))
	assert.Equal(t, 1, row)
}

func TestFindOpeningBalanceVariants(t *testing.T) {
	grid := model.Grid{
		{"Saldo Inicial", "R$ 2.500,00"},
	}
	v, row := FindOpeningBalance(grid)
	require.True(t, v.Valid)
	assert.Equal(t, "2500.00", v.Decimal.StringFixed(2))
	assert.Equal(t, 0, row)
}

func TestFindOpeningBalanceAbsent(t *testing.T) {
	grid := model.Grid{
		{"Data", "Valor"},
		{"02/01/2024", "50,00"},
	}
	v, row := FindOpeningBalance(grid)
	assert.False(t, v.Valid)
	assert.Equal(t, -1, row)
}
