package domain

import "time"

// NarrativeSection identifica o tipo de análise narrativa gerada
type NarrativeSection string

const (
	SectionOverview NarrativeSection = "overview"
	SectionTurnover NarrativeSection = "turnover"
	SectionTrend    NarrativeSection = "trend"
	SectionAction   NarrativeSection = "action"
)

// ValidNarrativeSection informa se o valor pertence à enumeração de seções
func ValidNarrativeSection(value string) bool {
	switch NarrativeSection(value) {
	case SectionOverview, SectionTurnover, SectionTrend, SectionAction:
		return true
	}
	return false
}

// NarrativeEntry é uma análise narrativa cacheada, chaveada por
// (trimestre, entidade, seção). Entidade vazia cobre as seções
// consolidadas (overview, action).
type NarrativeEntry struct {
	Quarter     string           `json:"quarter"`
	Entity      string           `json:"entity,omitempty"`
	Section     NarrativeSection `json:"section"`
	Content     string           `json:"content"`
	GeneratedAt time.Time        `json:"generated_at"`
}
