package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuarter(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		year    int
		quarter int
		wantErr bool
	}{
		{name: "Rótulo válido do terceiro trimestre", label: "25.3Q", year: 2025, quarter: 3},
		{name: "Rótulo válido do primeiro trimestre", label: "24.1Q", year: 2024, quarter: 1},
		{name: "Rótulo válido do quarto trimestre", label: "23.4Q", year: 2023, quarter: 4},
		{name: "Trimestre zero é rejeitado", label: "25.0Q", wantErr: true},
		{name: "Trimestre cinco é rejeitado", label: "25.5Q", wantErr: true},
		{name: "Ano com um dígito é rejeitado", label: "5.3Q", wantErr: true},
		{name: "Ano com quatro dígitos é rejeitado", label: "2025.3Q", wantErr: true},
		{name: "Sem o sufixo Q é rejeitado", label: "25.3", wantErr: true},
		{name: "Minúsculo é rejeitado", label: "25.3q", wantErr: true},
		{name: "Separador errado é rejeitado", label: "25-3Q", wantErr: true},
		{name: "Vazio é rejeitado", label: "", wantErr: true},
		{name: "Lixo não vira trimestre padrão", label: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fq, err := ParseQuarter(tt.label)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidQuarterFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.year, fq.Year())
			assert.Equal(t, tt.quarter, fq.Number())
			assert.Equal(t, tt.label, fq.String())
		})
	}
}

func TestCompareQuarters(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int // sinal esperado
	}{
		{name: "Mesmo ano, trimestre menor", a: "25.1Q", b: "25.3Q", want: -1},
		{name: "Mesmo ano, trimestre maior", a: "25.4Q", b: "25.2Q", want: 1},
		{name: "Ano menor domina o trimestre", a: "24.4Q", b: "25.1Q", want: -1},
		{name: "Iguais", a: "25.2Q", b: "25.2Q", want: 0},
		{name: "Rótulo malformado compara como igual", a: "xx.9Q", b: "25.2Q", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareQuarters(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestLatestQuarter(t *testing.T) {
	latest, ok := LatestQuarter([]string{"24.3Q", "25.2Q", "24.1Q", "25.1Q"})
	assert.True(t, ok)
	assert.Equal(t, "25.2Q", latest)

	_, ok = LatestQuarter(nil)
	assert.False(t, ok)
}

func TestYearAgoQuarter(t *testing.T) {
	prior, ok := YearAgoQuarter("25.3Q")
	assert.True(t, ok)
	assert.Equal(t, "24.3Q", prior)

	// virada de século fica em dois dígitos
	prior, ok = YearAgoQuarter("00.1Q")
	assert.True(t, ok)
	assert.Equal(t, "99.1Q", prior)

	_, ok = YearAgoQuarter("invalido")
	assert.False(t, ok)
}

func TestSortQuartersAscending(t *testing.T) {
	input := []string{"25.2Q", "24.4Q", "25.1Q", "24.1Q"}

	sorted := SortQuartersAscending(input)

	assert.Equal(t, []string{"24.1Q", "24.4Q", "25.1Q", "25.2Q"}, sorted)
	// a lista original não é modificada
	assert.Equal(t, []string{"25.2Q", "24.4Q", "25.1Q", "24.1Q"}, input)
}
