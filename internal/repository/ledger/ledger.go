package ledger

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"partner/internal/entities"
	"partner/internal/repository"
	"partner/internal/service/ledger"
)

const orderUniqueConstraint = "cash_ledger_order_id_key"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Insert(ctx context.Context, entry entities.CashLedgerEntry) (int64, error) {
	entryDB := FromDomain(&entry)

	query, args, err := qb.
		Insert("cash_ledger").
		Columns("order_id", "due", "collected", "tip", "shortfall", "confirmed_at").
		Values(entryDB.OrderID, entryDB.Due, entryDB.Collected, entryDB.Tip, entryDB.Shortfall, entryDB.ConfirmedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build ledger insert: %w", err)
	}

	var id int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		switch {
		case repository.IsConstraintViolation(err, repository.PgErrUniqueViolation, orderUniqueConstraint):
			return 0, ledger.ErrEntryExists
		case repository.IsConstraintViolation(err, repository.PgErrCheckViolation, ""):
			return 0, fmt.Errorf("%w: ledger entry rejected by database: %w", entities.ErrValidation, err)
		}
		return 0, fmt.Errorf("unexpected ledger repository insert error: %w", err)
	}

	return id, nil
}

func (r *Repository) AddToDay(ctx context.Context, entry entities.CashLedgerEntry) error {
	entryDB := FromDomain(&entry)

	query, args, err := qb.
		Insert("cash_days").
		Columns("day", "orders", "collected", "tips", "shortfall").
		Values(sq.Expr("?::date", dayOf(entryDB)), 1, entryDB.Collected, entryDB.Tip, entryDB.Shortfall).
		Suffix(`ON CONFLICT (day) DO UPDATE SET
			orders = cash_days.orders + EXCLUDED.orders,
			collected = cash_days.collected + EXCLUDED.collected,
			tips = cash_days.tips + EXCLUDED.tips,
			shortfall = cash_days.shortfall + EXCLUDED.shortfall,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cash day upsert: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("unexpected ledger repository add to day error: %w", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context, from, to time.Time) ([]entities.CashLedgerEntry, error) {
	query, args, err := qb.
		Select("id", "order_id", "due", "collected", "tip", "shortfall", "confirmed_at").
		From("cash_ledger").
		Where(sq.GtOrEq{"confirmed_at": from}).
		Where(sq.Lt{"confirmed_at": to}).
		OrderBy("confirmed_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ledger list: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository list error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.CashLedgerEntry, 0)
	for rows.Next() {
		var entryDB EntryDB
		if err := rows.Scan(
			&entryDB.ID,
			&entryDB.OrderID,
			&entryDB.Due,
			&entryDB.Collected,
			&entryDB.Tip,
			&entryDB.Shortfall,
			&entryDB.ConfirmedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, *ToDomain(&entryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger rows: %w", err)
	}

	return entries, nil
}

func (r *Repository) Days(ctx context.Context, from, to time.Time) ([]entities.CashDay, error) {
	query, args, err := qb.
		Select("day", "orders", "collected", "tips", "shortfall").
		From("cash_days").
		Where(sq.Expr("day >= ?::date", from.UTC().Format(time.DateOnly))).
		Where(sq.Expr("day < ?::date", to.UTC().Format(time.DateOnly))).
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cash days: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected ledger repository days error: %w", err)
	}
	defer rows.Close()

	days := make([]entities.CashDay, 0)
	for rows.Next() {
		var dayDB DayDB
		if err := rows.Scan(
			&dayDB.Day,
			&dayDB.Orders,
			&dayDB.Collected,
			&dayDB.Tips,
			&dayDB.Shortfall,
		); err != nil {
			return nil, fmt.Errorf("scan cash day: %w", err)
		}
		days = append(days, *ToDayDomain(&dayDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cash days rows: %w", err)
	}

	return days, nil
}
