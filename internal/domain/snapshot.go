package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Entity identifica uma unidade de negócio do grupo. Conjunto fechado:
// valores fora da enumeração são rejeitados na borda de entrada.
type Entity string

const (
	EntityDomestic     Entity = "DOMESTIC"
	EntityChina        Entity = "CHINA"
	EntityHongKong     Entity = "HONG_KONG"
	EntityUSA          Entity = "USA"
	EntityOther        Entity = "OTHER"
	EntityConsolidated Entity = "CONSOLIDATED" // pseudo-entidade agregada
)

// AllEntities lista todas as entidades válidas, incluindo a consolidada
var AllEntities = []Entity{
	EntityDomestic,
	EntityChina,
	EntityHongKong,
	EntityUSA,
	EntityOther,
	EntityConsolidated,
}

// ErrUnknownEntity indica um identificador de entidade fora da enumeração
var ErrUnknownEntity = errors.New("entidade desconhecida")

// ParseEntity valida um identificador de entidade contra a enumeração fixa
func ParseEntity(value string) (Entity, error) {
	for _, e := range AllEntities {
		if string(e) == value {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntity, value)
}

// IsConsolidated indica se a entidade é a pseudo-entidade consolidada,
// excluída dos cálculos de composição
func (e Entity) IsConsolidated() bool {
	return e == EntityConsolidated
}

// TurnoverMetrics reúne os indicadores de rotatividade derivados de um
// snapshot. Dias inteiros arredondados; CCC pode ser negativo quando o
// giro de pagamentos é anormalmente rápido (valor válido, não erro).
type TurnoverMetrics struct {
	DSO int `json:"dso"` // Days Sales Outstanding
	DIO int `json:"dio"` // Days Inventory Outstanding
	DPO int `json:"dpo"` // Days Payables Outstanding
	CCC int `json:"ccc"` // Cash Conversion Cycle = DSO + DIO - DPO
}

// EntitySnapshot é o estado financeiro de uma entidade em um trimestre.
// Campos opcionais usam ponteiros: nil significa "sem dado", que é
// diferente de zero (convenção vinda da ingestão de planilha/warehouse).
type EntitySnapshot struct {
	Quarter string `json:"quarter"`
	Entity  Entity `json:"entity"`

	QuarterlyRevenue float64  `json:"quarterly_revenue"`
	QuarterlyCOGS    *float64 `json:"quarterly_cogs,omitempty"`
	YTDRevenue       *float64 `json:"ytd_revenue,omitempty"`
	YTDCOGS          *float64 `json:"ytd_cogs,omitempty"`

	ReceivablesBalance float64 `json:"receivables"`
	InventoryBalance   float64 `json:"inventory"`
	PayablesBalance    float64 `json:"payables"`

	// Metrics é preenchido sob demanda pelo cálculo de rotatividade;
	// nunca persiste separado do snapshot de origem
	Metrics *TurnoverMetrics `json:"metrics,omitempty"`
}

// WorkingCapital é sempre derivado dos três saldos patrimoniais; nunca é
// um valor informado de forma independente
func (s *EntitySnapshot) WorkingCapital() float64 {
	return s.ReceivablesBalance + s.InventoryBalance - s.PayablesBalance
}

// Key devolve a identidade composta (trimestre, entidade) do snapshot
func (s *EntitySnapshot) Key() SnapshotKey {
	return SnapshotKey{Quarter: s.Quarter, Entity: s.Entity}
}

// SnapshotKey é a chave composta que identifica um snapshot no dataset
type SnapshotKey struct {
	Quarter string
	Entity  Entity
}

// ErrDuplicateSnapshot indica duas linhas com a mesma chave (trimestre,
// entidade) em uma carga; duplicatas são erro de carga, nunca mescladas
// silenciosamente
var ErrDuplicateSnapshot = errors.New("snapshot duplicado para (trimestre, entidade)")

// Dataset é uma coleção ordenada de snapshots, única por chave composta.
// O índice por chave dá a busca O(1) exigida pela mesclagem de uploads.
type Dataset struct {
	snapshots []*EntitySnapshot
	index     map[SnapshotKey]int
}

// NewDataset monta um dataset a partir de snapshots, rejeitando chaves
// duplicadas
func NewDataset(snapshots []*EntitySnapshot) (*Dataset, error) {
	ds := &Dataset{
		snapshots: make([]*EntitySnapshot, 0, len(snapshots)),
		index:     make(map[SnapshotKey]int, len(snapshots)),
	}

	for _, snap := range snapshots {
		key := snap.Key()
		if _, exists := ds.index[key]; exists {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateSnapshot, key.Quarter, key.Entity)
		}
		ds.index[key] = len(ds.snapshots)
		ds.snapshots = append(ds.snapshots, snap)
	}

	return ds, nil
}

// Snapshots devolve os snapshots na ordem de inserção
func (d *Dataset) Snapshots() []*EntitySnapshot {
	return d.snapshots
}

// Len retorna a quantidade de snapshots do dataset
func (d *Dataset) Len() int {
	return len(d.snapshots)
}

// Lookup busca um snapshot pela chave composta
func (d *Dataset) Lookup(quarter string, entity Entity) (*EntitySnapshot, bool) {
	idx, ok := d.index[SnapshotKey{Quarter: quarter, Entity: entity}]
	if !ok {
		return nil, false
	}
	return d.snapshots[idx], true
}

// Merge aplica a política de sobrescrita por chave da carga de uploads:
// chaves existentes são substituídas, novas são anexadas. Após a
// mesclagem o dataset é reordenado por trimestre crescente.
func (d *Dataset) Merge(incoming []*EntitySnapshot) {
	for _, snap := range incoming {
		key := snap.Key()
		if idx, exists := d.index[key]; exists {
			d.snapshots[idx] = snap
			continue
		}
		d.index[key] = len(d.snapshots)
		d.snapshots = append(d.snapshots, snap)
	}

	d.sortAscending()
}

// Quarters devolve os rótulos de trimestre distintos presentes no dataset
func (d *Dataset) Quarters() []string {
	seen := make(map[string]bool)
	quarters := []string{}

	for _, snap := range d.snapshots {
		if !seen[snap.Quarter] {
			seen[snap.Quarter] = true
			quarters = append(quarters, snap.Quarter)
		}
	}

	return quarters
}

func (d *Dataset) sortAscending() {
	ordered := make([]*EntitySnapshot, len(d.snapshots))
	copy(ordered, d.snapshots)

	// Ordenação estável por trimestre; a ordem relativa das entidades
	// dentro do mesmo trimestre é preservada
	sortSnapshotsByQuarter(ordered)

	d.snapshots = ordered
	for i, snap := range ordered {
		d.index[snap.Key()] = i
	}
}

func sortSnapshotsByQuarter(snapshots []*EntitySnapshot) {
	sort.SliceStable(snapshots, func(i, j int) bool {
		return CompareQuarters(snapshots[i].Quarter, snapshots[j].Quarter) < 0
	})
}
