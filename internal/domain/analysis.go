package domain

// CompositionItem é a participação de uma entidade no capital de giro
// consolidado de um trimestre (a pseudo-entidade consolidada fica fora
// do denominador)
type CompositionItem struct {
	Entity         Entity  `json:"entity"`
	WorkingCapital float64 `json:"working_capital"`
	SharePercent   float64 `json:"share_percent"`
}

// YoYDelta compara o valor atual com o do mesmo trimestre do ano
// anterior. Sem base anterior (entidade nova, trimestre ausente) o
// percentual é 0 por política: percentual sobre base zero não tem
// significado de negócio; quem precisa da semântica de "apareceu agora"
// deve olhar os valores absolutos.
type YoYDelta struct {
	CurrentQuarter string  `json:"current_quarter"`
	PriorQuarter   string  `json:"prior_quarter,omitempty"`
	CurrentValue   float64 `json:"current_value"`
	PriorValue     float64 `json:"prior_value"`
	PercentChange  float64 `json:"percent_change"`
}

// TrendPoint é um ponto da série de tendência de uma entidade. Trimestres
// sem dado entram como placeholders zerados para preservar o alinhamento
// posicional dos gráficos.
type TrendPoint struct {
	Quarter        string          `json:"quarter"`
	WorkingCapital float64         `json:"working_capital"`
	Metrics        TurnoverMetrics `json:"metrics"`
	Missing        bool            `json:"missing,omitempty"`
}

// TurnoverItem é a linha de rotatividade exposta pela API de turnover
type TurnoverItem struct {
	Quarter string `json:"quarter"`
	Entity  Entity `json:"entity"`
	DSO     int    `json:"dso"`
	DIO     int    `json:"dio"`
	DPO     int    `json:"dpo"`
	CCC     int    `json:"ccc"`
}

// ReportMeta descreve o recorte aplicado a um relatório de capital de giro
type ReportMeta struct {
	StartQuarter  string   `json:"start_quarter"`
	EndQuarter    string   `json:"end_quarter"`
	LatestQuarter string   `json:"latest_quarter"`
	AllQuarters   []string `json:"all_quarters"`
	Entity        string   `json:"entity,omitempty"`
	Count         int      `json:"count"`
	Cached        bool     `json:"cached"`
}

// WorkingCapitalReport é o dataset enriquecido e filtrado devolvido pela API
type WorkingCapitalReport struct {
	Data []*EntitySnapshot `json:"data"`
	Meta ReportMeta        `json:"meta"`
}

// PriorityBucket discretiza o score composto em faixas de prioridade
type PriorityBucket string

const (
	PriorityHigh   PriorityBucket = "HIGH"
	PriorityMedium PriorityBucket = "MEDIUM"
	PriorityLow    PriorityBucket = "LOW"
)

// IssueCategory indica a origem do problema apontado
type IssueCategory string

const (
	IssueInventory   IssueCategory = "inventory"
	IssueReceivables IssueCategory = "receivables"
)

// PriorityIssue é um problema pontuado para a geração de narrativa.
// Efêmero: construído por análise, pontuado, ordenado e descartado.
type PriorityIssue struct {
	Entity              Entity         `json:"entity"`
	Category            IssueCategory  `json:"category"`
	ChangeRatePercent   float64        `json:"change_rate_percent"`
	DaysImpact          float64        `json:"days_impact"`
	EntityWeightPercent float64        `json:"entity_weight_percent"`
	Score               int            `json:"score"`
	Priority            PriorityBucket `json:"priority"`
}
