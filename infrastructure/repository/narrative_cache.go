package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/working-capital-api/infrastructure/database/postgres"
	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/pkg/utils"
)

const (
	narrativeCacheTable  = "narrative_cache nc"
	narrativeCacheUpsert = "narrative_cache"
)

// NarrativeCacheRepository é o armazenamento chave-valor das análises
// narrativas geradas: (trimestre, entidade, seção) -> conteúdo com
// carimbo de geração. A interface isola o backend (Postgres aqui) do
// serviço de narrativa, que só conhece o contrato.
type NarrativeCacheRepository interface {
	Get(quarter, entity string, section domain.NarrativeSection) (*domain.NarrativeEntry, error)
	Save(entry *domain.NarrativeEntry) error
	DeleteByQuarter(quarter string) (int64, error)
	ListQuarters() ([]string, error)
}

type narrativeCacheRepository struct {
	conn *postgres.Connection
}

func NewNarrativeCacheRepository(conn *postgres.Connection) NarrativeCacheRepository {
	return &narrativeCacheRepository{
		conn: conn,
	}
}

func (r *narrativeCacheRepository) Get(quarter, entity string, section domain.NarrativeSection) (*domain.NarrativeEntry, error) {
	query, args, err := squirrel.
		Select("nc.quarter, nc.entity, nc.section, nc.content, nc.generated_at").
		From(narrativeCacheTable).
		Where(squirrel.Eq{"nc.quarter": quarter, "nc.entity": entity, "nc.section": string(section)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	entry := &domain.NarrativeEntry{}
	var sectionValue string
	err = row.Scan(&entry.Quarter, &entry.Entity, &sectionValue, &entry.Content, &entry.GeneratedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear narrativa cacheada: %w", err)
	}
	entry.Section = domain.NarrativeSection(sectionValue)

	return entry, nil
}

func (r *narrativeCacheRepository) Save(entry *domain.NarrativeEntry) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar o ID da narrativa: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(narrativeCacheUpsert).
		Columns("id", "quarter", "entity", "section", "content", "generated_at").
		Values(id, entry.Quarter, entry.Entity, string(entry.Section), entry.Content, entry.GeneratedAt).
		Suffix(`
			ON CONFLICT (quarter, entity, section) DO UPDATE SET
				content = EXCLUDED.content,
				generated_at = EXCLUDED.generated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar narrativa no cache: %w", err)
	}

	return nil
}

func (r *narrativeCacheRepository) DeleteByQuarter(quarter string) (int64, error) {
	query := squirrel.Delete(narrativeCacheUpsert).
		PlaceholderFormat(squirrel.Dollar)

	// trimestre vazio limpa o cache inteiro
	if quarter != "" {
		query = query.Where(squirrel.Eq{"quarter": quarter})
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *narrativeCacheRepository) ListQuarters() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT nc.quarter").
		From(narrativeCacheTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	quarters := []string{}
	for rows.Next() {
		var quarter string
		if err := rows.Scan(&quarter); err != nil {
			return nil, fmt.Errorf("erro ao escanear trimestre: %w", err)
		}
		quarters = append(quarters, quarter)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return domain.SortQuartersAscending(quarters), nil
}
