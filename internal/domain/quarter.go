package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// ErrInvalidQuarterFormat indica que o rótulo de trimestre não segue a
// gramática AA.NQ (ex: "25.3Q")
var ErrInvalidQuarterFormat = errors.New("formato de trimestre inválido, esperado AA.NQ (ex: 25.3Q)")

var quarterPattern = regexp.MustCompile(`^(\d{2})\.(\d)Q$`)

// FiscalQuarter representa um trimestre fiscal no formato AA.NQ.
// Imutável após o parse; a ordenação total é por (ano, trimestre).
type FiscalQuarter struct {
	label   string
	year    int
	quarter int
}

// ParseQuarter valida e converte um rótulo AA.NQ em FiscalQuarter.
// Rótulos inválidos são rejeitados, nunca corrigidos silenciosamente.
func ParseQuarter(label string) (FiscalQuarter, error) {
	match := quarterPattern.FindStringSubmatch(label)
	if match == nil {
		return FiscalQuarter{}, fmt.Errorf("%w: %q", ErrInvalidQuarterFormat, label)
	}

	yy, _ := strconv.Atoi(match[1])
	q, _ := strconv.Atoi(match[2])

	if q < 1 || q > 4 {
		return FiscalQuarter{}, fmt.Errorf("%w: %q", ErrInvalidQuarterFormat, label)
	}

	return FiscalQuarter{
		label:   label,
		year:    2000 + yy,
		quarter: q,
	}, nil
}

// String devolve o rótulo original (round-trip garantido)
func (f FiscalQuarter) String() string {
	return f.label
}

// Year retorna o ano completo de quatro dígitos
func (f FiscalQuarter) Year() int {
	return f.year
}

// Number retorna o número do trimestre dentro do ano (1-4)
func (f FiscalQuarter) Number() int {
	return f.quarter
}

// Compare compara dois trimestres: negativo se f < other, zero se iguais,
// positivo se f > other
func (f FiscalQuarter) Compare(other FiscalQuarter) int {
	if f.year != other.year {
		return f.year - other.year
	}
	return f.quarter - other.quarter
}

// CompareQuarters compara dois rótulos de trimestre. Rótulos malformados
// comparam como iguais; os caminhos estritos devem usar ParseQuarter antes.
func CompareQuarters(a, b string) int {
	qa, errA := ParseQuarter(a)
	qb, errB := ParseQuarter(b)

	if errA != nil || errB != nil {
		return 0
	}

	return qa.Compare(qb)
}

// LatestQuarter encontra o trimestre mais recente da lista.
// Retorna ok=false para lista vazia, nunca gera pânico.
func LatestQuarter(labels []string) (string, bool) {
	if len(labels) == 0 {
		return "", false
	}

	latest := labels[0]
	for _, label := range labels[1:] {
		if CompareQuarters(label, latest) > 0 {
			latest = label
		}
	}

	return latest, true
}

// YearAgoQuarter calcula o trimestre do ano anterior (mesmo número de
// trimestre, ano-1). Operação de melhor esforço: rótulo malformado
// retorna ok=false em vez de erro, pois os consumidores toleram a
// ausência do comparativo.
func YearAgoQuarter(label string) (string, bool) {
	fq, err := ParseQuarter(label)
	if err != nil {
		return "", false
	}

	prevYY := (fq.year - 1) % 100

	return fmt.Sprintf("%02d.%dQ", prevYY, fq.quarter), true
}

// SortQuartersAscending ordena rótulos de trimestre em ordem crescente.
// Ordenação estável; não modifica a lista de entrada.
func SortQuartersAscending(labels []string) []string {
	sorted := make([]string, len(labels))
	copy(sorted, labels)

	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareQuarters(sorted[i], sorted[j]) < 0
	})

	return sorted
}
