package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/working-capital-api/infrastructure/database/postgres"
	"github.com/vfg2006/working-capital-api/internal/domain"
)

const (
	snapshotsTable   = "wc_snapshots ws"
	snapshotColumns  = "ws.quarter, ws.entity, ws.revenue_q, ws.cogs_q, ws.revenue_ytd, ws.cogs_ytd, ws.receivables, ws.inventory, ws.payables"
	snapshotsUpsert  = "wc_snapshots"
	snapshotConflict = `
		ON CONFLICT (quarter, entity) DO UPDATE SET
			revenue_q = EXCLUDED.revenue_q,
			cogs_q = EXCLUDED.cogs_q,
			revenue_ytd = EXCLUDED.revenue_ytd,
			cogs_ytd = EXCLUDED.cogs_ytd,
			receivables = EXCLUDED.receivables,
			inventory = EXCLUDED.inventory,
			payables = EXCLUDED.payables,
			updated_at = NOW()
	`
)

// SnapshotRepository armazena os snapshots de capital de giro por
// (trimestre, entidade). A restrição única da tabela sustenta a
// política de mesclagem por sobrescrita das cargas de planilha.
type SnapshotRepository interface {
	GetAll() ([]*domain.EntitySnapshot, error)
	GetByQuarter(quarter string) ([]*domain.EntitySnapshot, error)
	SaveOrUpdate(snapshot *domain.EntitySnapshot) error
	SaveOrUpdateBatch(snapshots []*domain.EntitySnapshot) error
	GetAllQuarters() ([]string, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) GetAll() ([]*domain.EntitySnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(snapshotsTable).
		OrderBy("ws.quarter ASC, ws.entity ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(query, args...)
}

func (r *snapshotRepository) GetByQuarter(quarter string) ([]*domain.EntitySnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(snapshotsTable).
		Where(squirrel.Eq{"ws.quarter": quarter}).
		OrderBy("ws.entity ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySnapshots(query, args...)
}

func (r *snapshotRepository) SaveOrUpdate(snapshot *domain.EntitySnapshot) error {
	query := squirrel.StatementBuilder.
		Insert(snapshotsUpsert).
		Columns("quarter", "entity", "revenue_q", "cogs_q", "revenue_ytd", "cogs_ytd", "receivables", "inventory", "payables").
		Values(
			snapshot.Quarter,
			string(snapshot.Entity),
			snapshot.QuarterlyRevenue,
			snapshot.QuarterlyCOGS,
			snapshot.YTDRevenue,
			snapshot.YTDCOGS,
			snapshot.ReceivablesBalance,
			snapshot.InventoryBalance,
			snapshot.PayablesBalance,
		).
		Suffix(snapshotConflict).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SaveOrUpdateBatch grava uma carga inteira em transação: ou todas as
// linhas válidas entram, ou nenhuma
func (r *snapshotRepository) SaveOrUpdateBatch(snapshots []*domain.EntitySnapshot) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, snapshot := range snapshots {
			query := squirrel.StatementBuilder.
				Insert(snapshotsUpsert).
				Columns("quarter", "entity", "revenue_q", "cogs_q", "revenue_ytd", "cogs_ytd", "receivables", "inventory", "payables").
				Values(
					snapshot.Quarter,
					string(snapshot.Entity),
					snapshot.QuarterlyRevenue,
					snapshot.QuarterlyCOGS,
					snapshot.YTDRevenue,
					snapshot.YTDCOGS,
					snapshot.ReceivablesBalance,
					snapshot.InventoryBalance,
					snapshot.PayablesBalance,
				).
				Suffix(snapshotConflict).
				PlaceholderFormat(squirrel.Dollar)

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao gravar snapshot %s/%s: %w", snapshot.Quarter, snapshot.Entity, err)
			}
		}

		return nil
	})
}

func (r *snapshotRepository) GetAllQuarters() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ws.quarter").
		From(snapshotsTable).
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

func (r *snapshotRepository) querySnapshots(query string, args ...interface{}) ([]*domain.EntitySnapshot, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.EntitySnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func scanSnapshot(rows *sql.Rows) (*domain.EntitySnapshot, error) {
	snapshot := &domain.EntitySnapshot{}
	var entity string
	var cogsQ, revenueYTD, cogsYTD sql.NullFloat64

	err := rows.Scan(
		&snapshot.Quarter,
		&entity,
		&snapshot.QuarterlyRevenue,
		&cogsQ,
		&revenueYTD,
		&cogsYTD,
		&snapshot.ReceivablesBalance,
		&snapshot.InventoryBalance,
		&snapshot.PayablesBalance,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := domain.ParseEntity(entity)
	if err != nil {
		return nil, err
	}
	snapshot.Entity = parsed

	// NULL no banco significa "sem dado", que é diferente de zero
	if cogsQ.Valid {
		snapshot.QuarterlyCOGS = &cogsQ.Float64
	}
	if revenueYTD.Valid {
		snapshot.YTDRevenue = &revenueYTD.Float64
	}
	if cogsYTD.Valid {
		snapshot.YTDCOGS = &cogsYTD.Float64
	}

	return snapshot, nil
}
