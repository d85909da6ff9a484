package reports

import "time"

// dateLayout formato de fecha de todos los reportes (ISO, solo fecha).
const dateLayout = "2006-01-02"

// DayString formatea la porción de fecha de un instante.
func DayString(t time.Time) string {
	return t.Format(dateLayout)
}

// sameDay compara solo la porción de fecha de dos instantes.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay medianoche del día de t, conservando su zona.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay último instante del día de t, para acotar columnas timestamp
// (processed_at) con un parámetro que llega como fecha.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// rangeDays cuenta los días del rango [from, to], ambos inclusivos, ignorando
// la hora. Nunca devuelve menos de 1: la meta diaria se promedia al menos
// sobre un día.
func rangeDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	days := int(t.Sub(f).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
