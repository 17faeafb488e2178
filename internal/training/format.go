package training

import (
	"fmt"
	"strings"
	"time"

	"skatetrack/internal/domain"
)

// FormatExerciseDetails renders the sets/reps/duration summary shown next to
// an exercise, e.g. "3 séries, 10 reps, 45 segs".
func FormatExerciseDetails(ex domain.TrainingExercise) string {
	var parts []string
	if ex.Sets > 0 {
		parts = append(parts, fmt.Sprintf("%d séries", ex.Sets))
	}
	if ex.Reps > 0 {
		parts = append(parts, fmt.Sprintf("%d reps", ex.Reps))
	}
	if ex.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%d segs", ex.Duration))
	}
	return strings.Join(parts, ", ")
}

var weekdays = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}

var months = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}

// FormatDate renders a session date in the long pt-BR layout used by the
// session lists, e.g. "sábado, 14 de março de 2026". An unparseable date is
// returned as-is.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}
