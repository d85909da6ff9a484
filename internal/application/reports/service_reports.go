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

// DailyReport desglose completo del recaudo de una fecha.
func (s *Service) DailyReport(ctx context.Context, date time.Time) (dto.DailyReportDTO, error) {
	key := KindDailyReport.Key(DayString(date))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindDailyReport), func(ctx context.Context) (dto.DailyReportDTO, error) {
		payments, err := s.gw.Payments.ListCompleted(ctx, repository.PaymentFilter{From: date, To: date})
		if err != nil {
			return dto.DailyReportDTO{}, fmt.Errorf("daily report: %w", err)
		}

		in := DailyReportInput{Date: date, Payments: payments}
		customerIDs := distinct(payments, func(p entity.Payment) string { return p.CustomerID })
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			in.Customers, err = s.gw.Customers.ListByIDs(gctx, customerIDs)
			return err
		})
		g.Go(func() (err error) {
			in.Staff, err = s.gw.Staff.ListProfiles(gctx)
			return err
		})
		g.Go(func() (err error) {
			in.Metadata, err = s.gw.Staff.ListMetadata(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return dto.DailyReportDTO{}, fmt.Errorf("daily report: %w", err)
		}
		return AggregateDailyReport(in), nil
	})
}

// DailyReportPDF versión imprimible del reporte diario.
func (s *Service) DailyReportPDF(ctx context.Context, date time.Time) ([]byte, error) {
	report, err := s.DailyReport(ctx, date)
	if err != nil {
		return nil, err
	}
	pdf, err := s.pdf.DailyReport(report)
	if err != nil {
		return nil, fmt.Errorf("daily report PDF: %w", err)
	}
	return pdf, nil
}

// CustomerPayments reporte de pagos por (cliente, inscripción) en el rango.
func (s *Service) CustomerPayments(ctx context.Context, from, to time.Time) ([]dto.CustomerPaymentRowDTO, error) {
	key := KindCustomerPayments.Key(DayString(from), DayString(to))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindCustomerPayments), func(ctx context.Context) ([]dto.CustomerPaymentRowDTO, error) {
		payments, err := s.gw.Payments.ListCompleted(ctx, repository.PaymentFilter{From: from, To: to})
		if err != nil {
			return nil, fmt.Errorf("customer payments: %w", err)
		}

		customerIDs := distinct(payments, func(p entity.Payment) string { return p.CustomerID })
		enrollmentIDs := distinct(payments, func(p entity.Payment) string { return p.UserSchemeID })
		var (
			customers   []entity.Customer
			enrollments []entity.UserScheme
			schemes     []entity.Scheme
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			customers, err = s.gw.Customers.ListByIDs(gctx, customerIDs)
			return err
		})
		g.Go(func() (err error) {
			enrollments, err = s.gw.Schemes.ListEnrollmentsByIDs(gctx, enrollmentIDs)
			return err
		})
		g.Go(func() (err error) {
			schemes, err = s.gw.Schemes.List(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("customer payments: %w", err)
		}
		return AggregateCustomerPayments(payments, customers, enrollments, schemes), nil
	})
}

// AccessControl lista blanca de teléfonos enriquecida con los perfiles.
func (s *Service) AccessControl(ctx context.Context) ([]dto.AccessEntryDTO, error) {
	key := KindAccessControl.Key()
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindAccessControl), func(ctx context.Context) ([]dto.AccessEntryDTO, error) {
		entries, err := s.gw.Whitelist.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("access control: %w", err)
		}
		phones := distinct(entries, func(e entity.WhitelistEntry) string { return e.Phone })
		profiles, err := s.gw.Whitelist.ListProfilesByPhones(ctx, phones)
		if err != nil {
			return nil, fmt.Errorf("access control: %w", err)
		}
		return AggregateAccessControl(entries, profiles), nil
	})
}
