package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oroplan-admin/internal/application/dto"
	"github.com/tu-usuario/oroplan-admin/internal/domain/entity"
)

// DailyReportInput registros crudos del reporte diario: los pagos completados
// de la fecha más los catálogos para resolver nombres.
type DailyReportInput struct {
	Date      time.Time
	Payments  []entity.Payment
	Customers []entity.Customer
	Staff     []entity.StaffProfile
	Metadata  []entity.StaffMetadata
}

// AggregateDailyReport arma el desglose completo del recaudo de una fecha:
// totales, clientes y cobradores distintos, desglose por método y por
// cobrador, y el listado de pagos con nombres resueltos.
func AggregateDailyReport(in DailyReportInput) dto.DailyReportDTO {
	out := dto.DailyReportDTO{
		Date:           DayString(in.Date),
		TotalAmount:    decimal.Zero,
		AveragePayment: decimal.Zero,
		ByMethod:       AggregateMethodDistribution(in.Payments),
		ByStaff:        []dto.DailyStaffGroupDTO{},
		Payments:       []dto.DailyPaymentDTO{},
	}

	customerNames := make(map[string]string, len(in.Customers))
	for _, c := range in.Customers {
		customerNames[c.ID] = c.Name
	}
	staffNames := make(map[string]string, len(in.Staff))
	for _, s := range in.Staff {
		staffNames[s.ID] = s.Name
	}
	staffCodes := make(map[string]string, len(in.Metadata))
	for _, m := range in.Metadata {
		staffCodes[m.StaffID] = m.StaffCode
	}
	nameOf := func(idx map[string]string, id string) string {
		if name, ok := idx[id]; ok && name != "" {
			return name
		}
		return "Unknown"
	}

	customers := make(map[string]struct{})
	type acc struct {
		count   int
		total   decimal.Decimal
		visited map[string]struct{}
	}
	byStaff := make(map[string]*acc)

	for _, p := range in.Payments {
		out.TotalPayments++
		out.TotalAmount = out.TotalAmount.Add(p.Amount)
		customers[p.CustomerID] = struct{}{}

		if p.StaffID != "" {
			a, ok := byStaff[p.StaffID]
			if !ok {
				a = &acc{visited: make(map[string]struct{})}
				byStaff[p.StaffID] = a
			}
			a.count++
			a.total = a.total.Add(p.Amount)
			a.visited[p.CustomerID] = struct{}{}
		}

		out.Payments = append(out.Payments, dto.DailyPaymentDTO{
			ID:           p.ID,
			CustomerName: nameOf(customerNames, p.CustomerID),
			StaffName:    nameOf(staffNames, p.StaffID),
			Method:       MethodLabel(p.PaymentMethod),
			Amount:       p.Amount,
		})
	}

	out.UniqueCustomers = len(customers)
	out.ActiveStaff = len(byStaff)
	if out.TotalPayments > 0 {
		out.AveragePayment = out.TotalAmount.Div(decimal.NewFromInt(int64(out.TotalPayments))).Round(2)
	}

	for staffID, a := range byStaff {
		code, ok := staffCodes[staffID]
		if !ok || code == "" {
			code = "N/A"
		}
		out.ByStaff = append(out.ByStaff, dto.DailyStaffGroupDTO{
			StaffID:          staffID,
			StaffName:        nameOf(staffNames, staffID),
			StaffCode:        code,
			PaymentCount:     a.count,
			TotalCollected:   a.total,
			CustomersVisited: len(a.visited),
		})
	}
	sort.Slice(out.ByStaff, func(i, j int) bool {
		return out.ByStaff[i].TotalCollected.GreaterThan(out.ByStaff[j].TotalCollected)
	})
	return out
}

// AggregateCustomerPayments agrupa pagos de un rango por el par
// (cliente, inscripción). Los gramos son el acumulado vigente de la
// inscripción (última foto, no una suma) y la última fecha de pago es el
// máximo lexicográfico, válido porque las fechas son ISO YYYY-MM-DD.
func AggregateCustomerPayments(
	payments []entity.Payment,
	customers []entity.Customer,
	enrollments []entity.UserScheme,
	schemes []entity.Scheme,
) []dto.CustomerPaymentRowDTO {
	customerIdx := make(map[string]entity.Customer, len(customers))
	for _, c := range customers {
		customerIdx[c.ID] = c
	}
	schemeNames := make(map[string]string, len(schemes))
	for _, s := range schemes {
		schemeNames[s.ID] = s.Name
	}
	enrollmentIdx := make(map[string]entity.UserScheme, len(enrollments))
	for _, us := range enrollments {
		enrollmentIdx[us.ID] = us
	}

	type pairKey struct{ customerID, enrollmentID string }
	rows := make(map[pairKey]*dto.CustomerPaymentRowDTO)
	var order []pairKey

	for _, p := range payments {
		k := pairKey{p.CustomerID, p.UserSchemeID}
		row, ok := rows[k]
		if !ok {
			row = &dto.CustomerPaymentRowDTO{
				CustomerName: "Unknown",
				Phone:        "N/A",
				SchemeName:   "Unknown",
				DueAmount:    decimal.Zero, // reservado, ver DTO
			}
			if c, found := customerIdx[p.CustomerID]; found {
				row.CustomerName = c.Name
				row.Phone = c.Phone
			}
			if us, found := enrollmentIdx[p.UserSchemeID]; found {
				row.MetalGrams = us.AccumulatedMetalGrams
				if name, named := schemeNames[us.SchemeID]; named {
					row.SchemeName = name
				}
			}
			rows[k] = row
			order = append(order, k)
		}
		row.TotalPayments++
		row.TotalPaid = row.TotalPaid.Add(p.Amount)
		if d := DayString(p.PaymentDate); d > row.LastPaymentDate {
			row.LastPaymentDate = d
		}
	}

	out := make([]dto.CustomerPaymentRowDTO, 0, len(order))
	for _, k := range order {
		out = append(out, *rows[k])
	}
	return out
}
