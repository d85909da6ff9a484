package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// rosterBase arma los campos comunes de una fila de cobrador a partir de su
// perfil y metadatos. Sin metadatos se aplican los valores por defecto.
func rosterBase(p entity.StaffProfile, meta *entity.StaffMetadata) dto.StaffRosterItemDTO {
	item := dto.StaffRosterItemDTO{
		ID:               p.ID,
		Name:             p.Name,
		Phone:            p.Phone,
		Email:            p.Email,
		Active:           p.Active,
		StaffCode:        "N/A",
		StaffType:        "collection",
		DailyTarget:      decimal.Zero,
		TodayCollections: decimal.Zero,
	}
	if meta != nil {
		if meta.StaffCode != "" {
			item.StaffCode = meta.StaffCode
		}
		if meta.StaffType != "" {
			item.StaffType = meta.StaffType
		}
		item.DailyTarget = meta.DailyTargetAmount
		item.IsActive = meta.IsActive
	}
	return item
}

// indexMetadata indexa metadatos por staff_id.
func indexMetadata(metadata []entity.StaffMetadata) map[string]*entity.StaffMetadata {
	idx := make(map[string]*entity.StaffMetadata, len(metadata))
	for i := range metadata {
		idx[metadata[i].StaffID] = &metadata[i]
	}
	return idx
}

// sumByStaff agrupa montos de pagos por staff_id.
func sumByStaff(payments []entity.Payment) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, p := range payments {
		if p.StaffID == "" {
			continue
		}
		sums[p.StaffID] = sums[p.StaffID].Add(p.Amount)
	}
	return sums
}

// AggregateStaffRoster arma el listado de cobradores con conteo de clientes
// asignados y recaudo de hoy. Las asignaciones llegan ya agrupadas por
// staff_id (una consulta agrupada, no una por cobrador); todayPayments son
// los pagos completados de la fecha de referencia.
func AggregateStaffRoster(
	profiles []entity.StaffProfile,
	metadata []entity.StaffMetadata,
	assignmentCounts map[string]int,
	todayPayments []entity.Payment,
) []dto.StaffRosterItemDTO {
	metaIdx := indexMetadata(metadata)
	todaySums := sumByStaff(todayPayments)

	items := make([]dto.StaffRosterItemDTO, 0, len(profiles))
	for _, p := range profiles {
		item := rosterBase(p, metaIdx[p.ID])
		item.AssignedCustomers = assignmentCounts[p.ID]
		if s, ok := todaySums[p.ID]; ok {
			item.TodayCollections = s
		}
		items = append(items, item)
	}
	return items
}

// StaffDetailInput registros crudos de la vista de detalle de un cobrador,
// reunidos por el servicio en paralelo.
type StaffDetailInput struct {
	Profile        entity.StaffProfile
	Metadata       *entity.StaffMetadata
	Assignments    []entity.StaffAssignment // asignaciones activas, con cliente resuelto
	TodayPayments  []entity.Payment         // pagos completados de hoy del cobrador
	AllPayments    []entity.Payment         // pagos completados históricos del cobrador
	RecentPayments []entity.Payment         // los 10 más recientes, descendente
	Customers      []entity.Customer        // clientes referidos por RecentPayments
	Enrollments    []entity.UserScheme      // inscripciones referidas por RecentPayments
	Schemes        []entity.Scheme          // catálogo de planes, para resolver nombres
}

// AggregateStaffDetail arma la vista profunda de un cobrador: recaudo de hoy
// e histórico, clientes visitados hoy (customer_id distintos), asignaciones
// activas y los pagos recientes con cliente y plan resueltos.
func AggregateStaffDetail(in StaffDetailInput) dto.StaffDetailDTO {
	detail := dto.StaffDetailDTO{
		StaffRosterItemDTO:    rosterBase(in.Profile, in.Metadata),
		TotalCollections:      decimal.Zero,
		AssignedCustomersList: []dto.AssignedCustomerDTO{},
		RecentPayments:        []dto.RecentPaymentDTO{},
	}
	detail.AssignedCustomers = len(in.Assignments)

	visited := make(map[string]struct{})
	for _, p := range in.TodayPayments {
		detail.TodayCollections = detail.TodayCollections.Add(p.Amount)
		visited[p.CustomerID] = struct{}{}
	}
	detail.CustomersVisitedToday = len(visited)

	for _, p := range in.AllPayments {
		detail.TotalCollections = detail.TotalCollections.Add(p.Amount)
	}

	for _, a := range in.Assignments {
		detail.AssignedCustomersList = append(detail.AssignedCustomersList, dto.AssignedCustomerDTO{
			ID:           a.CustomerID,
			Name:         a.CustomerName,
			Phone:        a.Phone,
			AssignedDate: DayString(a.AssignedDate),
		})
	}

	customerNames := make(map[string]string, len(in.Customers))
	for _, c := range in.Customers {
		customerNames[c.ID] = c.Name
	}
	schemeNames := make(map[string]string, len(in.Schemes))
	for _, s := range in.Schemes {
		schemeNames[s.ID] = s.Name
	}
	enrollmentScheme := make(map[string]string, len(in.Enrollments))
	for _, us := range in.Enrollments {
		enrollmentScheme[us.ID] = us.SchemeID
	}

	for _, p := range in.RecentPayments {
		name, ok := customerNames[p.CustomerID]
		if !ok {
			name = "N/A"
		}
		scheme, ok := schemeNames[enrollmentScheme[p.UserSchemeID]]
		if !ok {
			scheme = "N/A"
		}
		detail.RecentPayments = append(detail.RecentPayments, dto.RecentPaymentDTO{
			ID:           p.ID,
			CustomerName: name,
			SchemeName:   scheme,
			Amount:       p.Amount,
			Date:         DayString(p.PaymentDate),
		})
	}
	return detail
}

// AggregateStaffPerformance arma el reporte de desempeño por cobrador en un
// rango. El logro de meta es (recaudo / días del rango) / meta diaria × 100,
// redondeado al entero más cercano; con meta cero el logro se define como 0.
func AggregateStaffPerformance(
	from, to time.Time,
	profiles []entity.StaffProfile,
	metadata []entity.StaffMetadata,
	assignmentCounts map[string]int,
	payments []entity.Payment, // pagos completados del rango
) []dto.StaffPerformanceDTO {
	metaIdx := indexMetadata(metadata)
	days := rangeDays(from, to)

	type acc struct {
		count   int
		total   decimal.Decimal
		visited map[string]struct{}
	}
	byStaff := make(map[string]*acc)
	for _, p := range payments {
		if p.StaffID == "" {
			continue
		}
		a, ok := byStaff[p.StaffID]
		if !ok {
			a = &acc{visited: make(map[string]struct{})}
			byStaff[p.StaffID] = a
		}
		a.count++
		a.total = a.total.Add(p.Amount)
		a.visited[p.CustomerID] = struct{}{}
	}

	rows := make([]dto.StaffPerformanceDTO, 0, len(profiles))
	for _, p := range profiles {
		base := rosterBase(p, metaIdx[p.ID])
		row := dto.StaffPerformanceDTO{
			StaffName:         p.Name,
			StaffCode:         base.StaffCode,
			DailyTarget:       base.DailyTarget,
			TotalCollected:    decimal.Zero,
			AssignedCustomers: assignmentCounts[p.ID],
		}
		if a, ok := byStaff[p.ID]; ok {
			row.TotalPayments = a.count
			row.TotalCollected = a.total
			row.CustomersVisited = len(a.visited)
		}
		row.TargetAchievement = targetAchievement(row.TotalCollected, days, base.DailyTarget)
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TotalCollected.GreaterThan(rows[j].TotalCollected)
	})
	return rows
}

// targetAchievement porcentaje de logro de meta: promedio diario del recaudo
// sobre la meta diaria. Determinista y nunca negativo; meta cero o rango sin
// días da 0 en lugar de dividir por cero.
func targetAchievement(total decimal.Decimal, days int, dailyTarget decimal.Decimal) int {
	if days <= 0 || dailyTarget.IsZero() || !dailyTarget.IsPositive() {
		return 0
	}
	avg := total.Div(decimal.NewFromInt(int64(days)))
	pct := avg.Div(dailyTarget).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}
