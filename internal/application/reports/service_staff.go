package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/cache"
	"github.com/tu-usuario/oroplan-admin/internal/domain"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
	"github.com/tu-usuario/oroplan-admin/internal/domain/repository"
)

// StaffRoster listado de cobradores con estadísticas del día de referencia.
func (s *Service) StaffRoster(ctx context.Context, today time.Time) ([]dto.StaffRosterItemDTO, error) {
	key := KindStaffRoster.Key(DayString(today))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindStaffRoster), func(ctx context.Context) ([]dto.StaffRosterItemDTO, error) {
		var (
			profiles []entity.StaffProfile
			metadata []entity.StaffMetadata
			counts   map[string]int
			payments []entity.Payment
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			profiles, err = s.gw.Staff.ListProfiles(gctx)
			return err
		})
		g.Go(func() (err error) {
			metadata, err = s.gw.Staff.ListMetadata(gctx)
			return err
		})
		g.Go(func() (err error) {
			counts, err = s.gw.Staff.CountActiveAssignments(gctx)
			return err
		})
		g.Go(func() (err error) {
			payments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{From: today, To: today})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("staff roster: %w", err)
		}
		return AggregateStaffRoster(profiles, metadata, counts, payments), nil
	})
}

// StaffDetail vista profunda de un cobrador respecto a la fecha de
// referencia. Devuelve domain.ErrNotFound si el cobrador no existe.
func (s *Service) StaffDetail(ctx context.Context, staffID string, today time.Time) (dto.StaffDetailDTO, error) {
	key := KindStaffDetail.Key(staffID, DayString(today))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindStaffDetail), func(ctx context.Context) (dto.StaffDetailDTO, error) {
		profile, err := s.gw.Staff.GetProfile(ctx, staffID)
		if err != nil {
			return dto.StaffDetailDTO{}, fmt.Errorf("staff detail: %w", err)
		}
		if profile == nil {
			return dto.StaffDetailDTO{}, fmt.Errorf("staff detail %s: %w", staffID, domain.ErrNotFound)
		}

		in := StaffDetailInput{Profile: *profile}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			in.Metadata, err = s.gw.Staff.GetMetadata(gctx, staffID)
			return err
		})
		g.Go(func() (err error) {
			in.Assignments, err = s.gw.Staff.ListActiveAssignments(gctx, staffID)
			return err
		})
		g.Go(func() (err error) {
			in.TodayPayments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{
				StaffID: staffID, From: today, To: today,
			})
			return err
		})
		g.Go(func() (err error) {
			in.AllPayments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{StaffID: staffID})
			return err
		})
		g.Go(func() (err error) {
			in.RecentPayments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{
				StaffID: staffID, OrderDesc: true, Limit: recentPaymentsLimit,
			})
			return err
		})
		if err := g.Wait(); err != nil {
			return dto.StaffDetailDTO{}, fmt.Errorf("staff detail: %w", err)
		}

		// Resolver nombres de cliente y plan de los pagos recientes.
		customerIDs := distinct(in.RecentPayments, func(p entity.Payment) string { return p.CustomerID })
		enrollmentIDs := distinct(in.RecentPayments, func(p entity.Payment) string { return p.UserSchemeID })
		g2, g2ctx := errgroup.WithContext(ctx)
		g2.Go(func() (err error) {
			in.Customers, err = s.gw.Customers.ListByIDs(g2ctx, customerIDs)
			return err
		})
		g2.Go(func() (err error) {
			in.Enrollments, err = s.gw.Schemes.ListEnrollmentsByIDs(g2ctx, enrollmentIDs)
			return err
		})
		g2.Go(func() (err error) {
			in.Schemes, err = s.gw.Schemes.List(g2ctx)
			return err
		})
		if err := g2.Wait(); err != nil {
			return dto.StaffDetailDTO{}, fmt.Errorf("staff detail: %w", err)
		}
		return AggregateStaffDetail(in), nil
	})
}

// StaffPerformance reporte de desempeño por cobrador en el rango [from, to].
func (s *Service) StaffPerformance(ctx context.Context, from, to time.Time) ([]dto.StaffPerformanceDTO, error) {
	key := KindStaffPerformance.Key(DayString(from), DayString(to))
	return cache.Fetch(ctx, s.cache, key, s.ttlFor(KindStaffPerformance), func(ctx context.Context) ([]dto.StaffPerformanceDTO, error) {
		var (
			profiles []entity.StaffProfile
			metadata []entity.StaffMetadata
			counts   map[string]int
			payments []entity.Payment
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			profiles, err = s.gw.Staff.ListProfiles(gctx)
			return err
		})
		g.Go(func() (err error) {
			metadata, err = s.gw.Staff.ListMetadata(gctx)
			return err
		})
		g.Go(func() (err error) {
			counts, err = s.gw.Staff.CountActiveAssignments(gctx)
			return err
		})
		g.Go(func() (err error) {
			payments, err = s.gw.Payments.ListCompleted(gctx, repository.PaymentFilter{From: from, To: to})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("staff performance: %w", err)
		}
		return AggregateStaffPerformance(from, to, profiles, metadata, counts, payments), nil
	})
}

// distinct proyecta y deduplica preservando el orden de aparición.
func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, it := range items {
		k := key(it)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
