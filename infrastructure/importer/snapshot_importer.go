package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ImportResult carrega as linhas aceitas e os erros linha a linha de
// uma planilha. Linhas inválidas não derrubam a carga: são reportadas
// com o número da linha e o motivo.
type ImportResult struct {
	Snapshots     []*domain.EntitySnapshot `json:"-"`
	TotalRows     int                      `json:"total_rows"`
	ValidRows     int                      `json:"valid_rows"`
	Errors        []string                 `json:"errors,omitempty"`
	LatestQuarter string                   `json:"latest_quarter"`
	AllQuarters   []string                 `json:"all_quarters"`
}

// SnapshotImporter converte uma planilha de capital de giro em
// snapshots do domínio
type SnapshotImporter struct{}

func NewSnapshotImporter() *SnapshotImporter {
	return &SnapshotImporter{}
}

// Import lê a primeira aba da planilha. Espera um cabeçalho com as
// colunas quarter, entity, revenue, cogs, receivables, inventory e
// payables, em qualquer ordem.
func (p *SnapshotImporter) Import(reader io.Reader) (*ImportResult, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a aba %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("planilha sem linhas de dados")
	}

	index, err := buildColumnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	result := &ImportResult{TotalRows: len(rows) - 1}
	seenKeys := map[domain.SnapshotKey]int{}

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 // numeração da planilha, cabeçalho incluso

		snapshot, rowErr := parseRow(row, index)
		if rowErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("linha %d: %v", rowNum, rowErr))
			continue
		}

		// Chave (trimestre, entidade) repetida dentro da mesma planilha
		// é erro de carga; a política de sobrescrita vale entre cargas,
		// nunca dentro de uma
		if firstRow, exists := seenKeys[snapshot.Key()]; exists {
			result.Errors = append(result.Errors, fmt.Sprintf("linha %d: %v: já definida na linha %d",
				rowNum, domain.ErrDuplicateSnapshot, firstRow))
			continue
		}
		seenKeys[snapshot.Key()] = rowNum

		result.Snapshots = append(result.Snapshots, snapshot)
	}

	if len(result.Snapshots) == 0 {
		return nil, fmt.Errorf("nenhuma linha válida na planilha: %s", strings.Join(result.Errors, "; "))
	}

	dataset, err := domain.NewDataset(result.Snapshots)
	if err != nil {
		return nil, err
	}

	result.Snapshots = dataset.Snapshots()
	result.ValidRows = dataset.Len()
	result.AllQuarters = domain.SortQuartersAscending(dataset.Quarters())
	if latest, ok := domain.LatestQuarter(result.AllQuarters); ok {
		result.LatestQuarter = latest
	}

	return result, nil
}

type columnIndex struct {
	quarter     int
	entity      int
	revenue     int
	cogs        int
	receivables int
	inventory   int
	payables    int
}

func buildColumnIndex(headers []string) (columnIndex, error) {
	idx := columnIndex{
		quarter:     -1,
		entity:      -1,
		revenue:     -1,
		cogs:        -1,
		receivables: -1,
		inventory:   -1,
		payables:    -1,
	}

	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "quarter", "trimestre":
			idx.quarter = i
		case "entity", "entidade":
			idx.entity = i
		case "revenue", "receita":
			idx.revenue = i
		case "cogs", "custo":
			idx.cogs = i
		case "receivables", "recebiveis":
			idx.receivables = i
		case "inventory", "estoque":
			idx.inventory = i
		case "payables", "fornecedores":
			idx.payables = i
		}
	}

	if idx.quarter < 0 || idx.entity < 0 || idx.revenue < 0 ||
		idx.receivables < 0 || idx.inventory < 0 || idx.payables < 0 {
		return idx, fmt.Errorf("cabeçalho incompleto: esperadas as colunas quarter, entity, revenue, cogs, receivables, inventory e payables")
	}

	return idx, nil
}

func parseRow(row []string, idx columnIndex) (*domain.EntitySnapshot, error) {
	quarter := cellValue(row, idx.quarter)
	if _, err := domain.ParseQuarter(quarter); err != nil {
		return nil, err
	}

	entity, err := domain.ParseEntity(cellValue(row, idx.entity))
	if err != nil {
		return nil, err
	}

	revenue, err := parseAmount(cellValue(row, idx.revenue), "revenue")
	if err != nil {
		return nil, err
	}
	cogs, err := parseAmount(cellValue(row, idx.cogs), "cogs")
	if err != nil {
		return nil, err
	}
	receivables, err := parseAmount(cellValue(row, idx.receivables), "receivables")
	if err != nil {
		return nil, err
	}
	inventory, err := parseAmount(cellValue(row, idx.inventory), "inventory")
	if err != nil {
		return nil, err
	}
	payables, err := parseAmount(cellValue(row, idx.payables), "payables")
	if err != nil {
		return nil, err
	}

	snapshot := &domain.EntitySnapshot{
		Quarter:            quarter,
		Entity:             entity,
		QuarterlyRevenue:   revenue,
		ReceivablesBalance: receivables,
		InventoryBalance:   inventory,
		PayablesBalance:    payables,
	}

	// custo zerado ou ausente vira ponteiro nulo: o cálculo de
	// rotatividade decide o fallback, não a carga
	if cogs > 0 {
		snapshot.QuarterlyCOGS = &cogs
	}

	return snapshot, nil
}

func cellValue(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseAmount aceita vazio e "-" como zero; rejeita não numéricos e
// negativos
func parseAmount(value, fieldName string) (float64, error) {
	if value == "" || value == "-" {
		return 0, nil
	}

	// planilhas costumam trazer separador de milhar
	normalized := strings.ReplaceAll(value, ",", "")

	num, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser numérico, veio %q", fieldName, value)
	}
	if num < 0 {
		return 0, fmt.Errorf("%s não pode ser negativo, veio %q", fieldName, value)
	}

	return num, nil
}
