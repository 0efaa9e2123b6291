package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"partner/internal/entities"
	"partner/pkg/logger"
)

// Service кассовый журнал партнёра: наличные по заказам и итог по дням.
type Service struct {
	repository Repository
	txManager  TxManager
	log        handlerLogger
}

func New(repository Repository, txManager TxManager, log handlerLogger) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		log:        log,
	}
}

// Record записывает наличные по заказу и добавляет их в итог дня одной
// транзакцией. Повторная запись того же заказа возвращает ErrEntryExists.
func (s *Service) Record(ctx context.Context, entry entities.CashLedgerEntry) error {
	if !isValidEntry(entry) {
		return ErrInvalidEntry
	}
	entry.ConfirmedAt = entry.ConfirmedAt.UTC()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.Insert(ctx, entry)
		if err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
		entry.ID = id

		if err := s.repository.AddToDay(ctx, entry); err != nil {
			return fmt.Errorf("add to day: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("cash recorded",
		logger.NewField("order_id", entry.OrderID),
		logger.NewField("collected", entry.Collected.StringFixed(2)),
	)
	return nil
}

// Entries записи журнала за [from, to).
func (s *Service) Entries(ctx context.Context, from, to time.Time) ([]entities.CashLedgerEntry, error) {
	if !isValidRange(from, to) {
		return nil, ErrInvalidRange
	}

	entries, err := s.repository.List(ctx, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Report записи, итоги по дням и общий итог за [from, to) из одного снимка.
func (s *Service) Report(ctx context.Context, from, to time.Time) (*entities.CashReport, error) {
	if !isValidRange(from, to) {
		return nil, ErrInvalidRange
	}
	from, to = from.UTC(), to.UTC()

	var report entities.CashReport
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		entries, err := s.repository.List(ctx, from, to)
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		days, err := s.repository.Days(ctx, from, to)
		if err != nil {
			return fmt.Errorf("cash days: %w", err)
		}
		report.Entries, report.Days = entries, days
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Total = sumDays(report.Days)
	return &report, nil
}

func sumDays(days []entities.CashDay) entities.CashDay {
	total := entities.CashDay{
		Collected: decimal.Zero,
		Tips:      decimal.Zero,
		Shortfall: decimal.Zero,
	}
	for _, d := range days {
		total.Orders += d.Orders
		total.Collected = total.Collected.Add(d.Collected)
		total.Tips = total.Tips.Add(d.Tips)
		total.Shortfall = total.Shortfall.Add(d.Shortfall)
	}
	return total
}
