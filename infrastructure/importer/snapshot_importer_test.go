package importer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, header []interface{}, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	require.NoError(t, file.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	buf, err := file.WriteToBuffer()
	require.NoError(t, err)

	return bytes.NewReader(buf.Bytes())
}

func defaultHeader() []interface{} {
	return []interface{}{"Quarter", "Entity", "Revenue", "COGS", "Receivables", "Inventory", "Payables"}
}

func TestImport(t *testing.T) {
	reader := buildWorkbook(t, defaultHeader(), [][]interface{}{
		{"25.1Q", "DOMESTIC", "350000", "210000", "152793", "98000", "76000"},
		{"25.2Q", "DOMESTIC", "380000", "", "160000", "101000", "80000"},
	})

	result, err := NewSnapshotImporter().Import(reader)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.ValidRows)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "25.2Q", result.LatestQuarter)
	assert.Equal(t, []string{"25.1Q", "25.2Q"}, result.AllQuarters)

	first := result.Snapshots[0]
	assert.Equal(t, "25.1Q", first.Quarter)
	assert.Equal(t, domain.EntityDomestic, first.Entity)
	assert.Equal(t, 350000.0, first.QuarterlyRevenue)
	require.NotNil(t, first.QuarterlyCOGS)
	assert.Equal(t, 210000.0, *first.QuarterlyCOGS)

	// custo ausente vira ponteiro nulo, não zero
	assert.Nil(t, result.Snapshots[1].QuarterlyCOGS)
}

func TestImport_BlankAndDashBecomeZero(t *testing.T) {
	reader := buildWorkbook(t, defaultHeader(), [][]interface{}{
		{"25.1Q", "CHINA", "-", "", "", "-", "0"},
	})

	result, err := NewSnapshotImporter().Import(reader)
	require.NoError(t, err)

	snap := result.Snapshots[0]
	assert.Zero(t, snap.QuarterlyRevenue)
	assert.Nil(t, snap.QuarterlyCOGS)
	assert.Zero(t, snap.ReceivablesBalance)
	assert.Zero(t, snap.InventoryBalance)
	assert.Zero(t, snap.PayablesBalance)
}

func TestImport_ThousandSeparatorsAreAccepted(t *testing.T) {
	reader := buildWorkbook(t, defaultHeader(), [][]interface{}{
		{"25.1Q", "USA", "1,358,744", "800,000", "152,793", "98,000", "76,000"},
	})

	result, err := NewSnapshotImporter().Import(reader)
	require.NoError(t, err)

	assert.Equal(t, 1358744.0, result.Snapshots[0].QuarterlyRevenue)
}

func TestImport_CollectsRowErrorsWithoutAborting(t *testing.T) {
	reader := buildWorkbook(t, defaultHeader(), [][]interface{}{
		{"25.1Q", "DOMESTIC", "350000", "", "152793", "98000", "76000"},
		{"25-1Q", "DOMESTIC", "350000", "", "1", "1", "1"},     // trimestre malformado
		{"25.1Q", "EUROPA", "350000", "", "1", "1", "1"},       // entidade desconhecida
		{"25.1Q", "CHINA", "abc", "", "1", "1", "1"},           // receita não numérica
		{"25.1Q", "USA", "350000", "", "-500", "1", "1"},       // saldo negativo
	})

	result, err := NewSnapshotImporter().Import(reader)
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalRows)
	assert.Equal(t, 1, result.ValidRows)
	require.Len(t, result.Errors, 4)

	// cada erro aponta a linha da planilha
	assert.Contains(t, result.Errors[0], "linha 3")
	assert.Contains(t, result.Errors[1], "linha 4")
	assert.Contains(t, result.Errors[2], "linha 5")
	assert.Contains(t, result.Errors[3], "linha 6")
}

func TestImport_DuplicateKeyInSameFileIsRowError(t *testing.T) {
	reader := buildWorkbook(t, defaultHeader(), [][]interface{}{
		{"25.1Q", "DOMESTIC", "350000", "", "152793", "98000", "76000"},
		{"25.1Q", "CHINA", "120000", "", "40000", "30000", "20000"},
		{"25.1Q", "DOMESTIC", "999999", "", "1", "1", "1"}, // chave repetida
	})

	result, err := NewSnapshotImporter().Import(reader)
	require.NoError(t, err)

	// a primeira ocorrência da chave é mantida, a repetição vira erro de linha
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.ValidRows)
	require.Len(t, result.Snapshots, 2)
	assert.Equal(t, 350000.0, result.Snapshots[0].QuarterlyRevenue)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "linha 4")
	assert.Contains(t, result.Errors[0], domain.ErrDuplicateSnapshot.Error())
	assert.Contains(t, result.Errors[0], "linha 2")
}

func TestImport_AllRowsInvalidFails(t *testing.T) {
	reader := buildWorkbook(t, defaultHeader(), [][]interface{}{
		{"ruim", "DOMESTIC", "1", "", "1", "1", "1"},
	})

	_, err := NewSnapshotImporter().Import(reader)
	assert.Error(t, err)
}

func TestImport_HeaderColumnsInAnyOrder(t *testing.T) {
	header := []interface{}{"Payables", "Entity", "Inventory", "Quarter", "Receivables", "COGS", "Revenue"}
	reader := buildWorkbook(t, header, [][]interface{}{
		{"76000", "HONG_KONG", "98000", "25.3Q", "152793", "", "350000"},
	})

	result, err := NewSnapshotImporter().Import(reader)
	require.NoError(t, err)

	snap := result.Snapshots[0]
	assert.Equal(t, "25.3Q", snap.Quarter)
	assert.Equal(t, domain.EntityHongKong, snap.Entity)
	assert.Equal(t, 350000.0, snap.QuarterlyRevenue)
	assert.Equal(t, 76000.0, snap.PayablesBalance)
}

func TestImport_PortugueseHeaders(t *testing.T) {
	header := []interface{}{"Trimestre", "Entidade", "Receita", "Custo", "Recebiveis", "Estoque", "Fornecedores"}
	reader := buildWorkbook(t, header, [][]interface{}{
		{"25.1Q", "OTHER", "100000", "60000", "40000", "30000", "20000"},
	})

	result, err := NewSnapshotImporter().Import(reader)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ValidRows)
}

func TestImport_MissingHeaderColumn(t *testing.T) {
	header := []interface{}{"Quarter", "Entity", "Revenue"}
	reader := buildWorkbook(t, header, [][]interface{}{
		{"25.1Q", "DOMESTIC", "100000"},
	})

	_, err := NewSnapshotImporter().Import(reader)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cabeçalho incompleto")
}

func TestImport_NotASpreadsheet(t *testing.T) {
	_, err := NewSnapshotImporter().Import(bytes.NewReader([]byte("isso não é uma planilha")))
	assert.Error(t, err)
}
