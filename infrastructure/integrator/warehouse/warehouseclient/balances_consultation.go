package warehouseclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

type BalancesConsultationParams struct {
	Quarters []string
}

// BalanceRow é uma linha do extrato trimestral do warehouse. Campos
// acumulados ausentes chegam como null e viram ponteiros nulos.
type BalanceRow struct {
	Quarter            string   `json:"quarter"`
	Entity             string   `json:"entity"`
	Revenue            float64  `json:"revenue"`
	COGS               *float64 `json:"cogs"`
	YTDRevenue         *float64 `json:"ytd_revenue"`
	YTDCOGS            *float64 `json:"ytd_cogs"`
	ReceivablesBalance float64  `json:"receivables_balance"`
	InventoryBalance   float64  `json:"inventory_balance"`
	PayablesBalance    float64  `json:"payables_balance"`
}

type BalancesConsultationResponse []BalanceRow

func (c *WarehouseClient) GetQuarterBalances(params BalancesConsultationParams) (BalancesConsultationResponse, error) {
	var response BalancesConsultationResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Warehouse.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/financeiro/saldos/trimestres")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("trimestres", strings.Join(params.Quarters, ","))
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+c.config.Warehouse.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
