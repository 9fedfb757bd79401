package pipeline

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/profile"
)

func testEngine() *Engine {
	return New(log.New(io.Discard))
}

func findProfile(t *testing.T, name string) profile.Profile {
	t.Helper()
	p, err := profile.Find(profile.Builtin(), name)
	require.NoError(t, err)
	return p
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestProcessFileBanestesCSV(t *testing.T) {
	content := strings.Join([]string{
		"Extrato Banestes",
		"Data da Ocorrência;Histórico;Valor",
		";SALDO ANTERIOR;100,00",
		"02/01/2024;TED recebida;50,00",
		"02/01/2024;Tarifa;-20,00",
		"02/01/2024;Depósito;10,00",
		"",
	}, "\n")
	path := filepath.Join(t.TempDir(), "extrato.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	results, err := testEngine().ProcessFile(path, findProfile(t, "banestes"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].Rows)

	records := readCSV(t, results[0].Output)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"Data_da_Ocorrencia", "Valor", "Saldo_Total"}, records[0])

	// Synthetic opening-balance row sits first, with no date.
	assert.Equal(t, []string{"", "100,00", "100,00"}, records[1])

	// All rows of the day share the reconstructed balance of 140,00.
	assert.Equal(t, []string{"02/01/2024", "50,00", "140,00"}, records[2])
	assert.Equal(t, []string{"02/01/2024", "-20,00", "140,00"}, records[3])
	assert.Equal(t, []string{"02/01/2024", "10,00", "140,00"}, records[4])
}

func TestProcessFileItauPassthrough(t *testing.T) {
	content := strings.Join([]string{
		"Data;Histórico;Valor;Saldo",
		"02/01/2024;TED;1.000,00;1.000,00",
		"03/01/2024;Pagamento;-250,50;749,50",
		"",
	}, "\n")
	path := filepath.Join(t.TempDir(), "extrato.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	results, err := testEngine().ProcessFile(path, findProfile(t, "itau"))
	require.NoError(t, err)
	require.Len(t, results, 1)

	records := readCSV(t, results[0].Output)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"02/01/2024", "1.000,00", "1.000,00"}, records[1])
	assert.Equal(t, []string{"03/01/2024", "-250,50", "749,50"}, records[2])
}

func TestProcessFileSchemaNotFound(t *testing.T) {
	content := "isto;não;é\num;extrato;válido\n"
	path := filepath.Join(t.TempDir(), "extrato.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	results, err := testEngine().ProcessFile(path, findProfile(t, "banestes"))
	// The sheet is skipped, not fatal for the file.
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessFileUnsupportedFormat(t *testing.T) {
	_, err := testEngine().ProcessFile("extrato.pdf", findProfile(t, "banestes"))
	assert.Error(t, err)
}

func TestProcessFilesAreIndependent(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "bom.csv")
	bad := filepath.Join(dir, "ruim.csv")
	require.NoError(t, os.WriteFile(good, []byte("Data;Valor\n02/01/2024;10,00\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("sem;cabecalho\n1;2\n"), 0o644))

	e := testEngine()
	p := findProfile(t, "banestes")

	badResults, err := e.ProcessFile(bad, p)
	require.NoError(t, err)
	assert.Empty(t, badResults)

	goodResults, err := e.ProcessFile(good, p)
	require.NoError(t, err)
	require.Len(t, goodResults, 1)
	assert.FileExists(t, goodResults[0].Output)
}
