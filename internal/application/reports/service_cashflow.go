package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/cache"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

// InflowSeries entradas diarias del rango [from, to].
func (s *Service) InflowSeries(ctx context.Context, from, to time.Time) ([]dto.InflowDayDTO, error) {
	key := KindInflowSeries.Key(DayString(from), DayString(to))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindInflowSeries), func(ctx context.Context) ([]dto.InflowDayDTO, error) {
		payments, err := s.gw.Payments.ListCompleted(ctx, repository.PaymentFilter{From: from, To: to})
		if err != nil {
			return nil, fmt.Errorf("inflow series: %w", err)
		}
		return AggregateInflowSeries(payments), nil
	})
}

// OutflowSeries salidas diarias del rango [from, to], por la porción de fecha
// de processed_at.
func (s *Service) OutflowSeries(ctx context.Context, from, to time.Time) ([]dto.OutflowDayDTO, error) {
	key := KindOutflowSeries.Key(DayString(from), DayString(to))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindOutflowSeries), func(ctx context.Context) ([]dto.OutflowDayDTO, error) {
		withdrawals, err := s.gw.Withdrawals.ListProcessedBetween(ctx, startOfDay(from), endOfDay(to))
		if err != nil {
			return nil, fmt.Errorf("outflow series: %w", err)
		}
		return AggregateOutflowSeries(withdrawals), nil
	})
}

// CashFlowSeries flujo neto diario del rango [from, to]: mezcla de las dos
// series, con cero en el lado que no tenga movimientos ese día.
func (s *Service) CashFlowSeries(ctx context.Context, from, to time.Time) ([]dto.CashFlowDayDTO, error) {
	key := KindCashFlowSeries.Key(DayString(from), DayString(to))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindCashFlowSeries), func(ctx context.Context) ([]dto.CashFlowDayDTO, error) {
		var (
			payments    []entity.Payment
			withdrawals []entity.Withdrawal
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			payments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{From: from, To: to})
			return err
		})
		g.Go(func() (err error) {
			withdrawals, err = s.gw.Withdrawals.ListProcessedBetween(gctx, startOfDay(from), endOfDay(to))
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("cashflow series: %w", err)
		}
		return AggregateCashFlowSeries(AggregateInflowSeries(payments), AggregateOutflowSeries(withdrawals)), nil
	})
}
