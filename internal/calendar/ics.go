package calendar

import (
	"fmt"
	"strings"
	"time"

	"skatetrack/internal/domain"
)

// icsReminderMinutes is the alarm offset on exported events.
const icsReminderMinutes = 30

// ICS renders training sessions as an iCalendar document. Sessions
// whose date or time cannot be parsed are skipped.
func ICS(sessions []domain.TrainingSession, loc *time.Location) string {
	var sb strings.Builder

	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:-//SkateTrack//Training Calendar//PT\r\n")
	sb.WriteString("CALSCALE:GREGORIAN\r\n")
	sb.WriteString("METHOD:PUBLISH\r\n")
	sb.WriteString("X-WR-CALNAME:Treinos\r\n")

	for _, s := range sessions {
		start, end, err := sessionTimes(s, loc)
		if err != nil {
			continue
		}

		sb.WriteString("BEGIN:VEVENT\r\n")
		sb.WriteString(fmt.Sprintf("UID:%s@skatetrack\r\n", s.ID))
		sb.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(time.Now())))
		sb.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
		sb.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))
		sb.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(s.Title)))
		sb.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(fmt.Sprintf("Treino de %d minutos.", s.Duration))))

		sb.WriteString("BEGIN:VALARM\r\n")
		sb.WriteString("ACTION:DISPLAY\r\n")
		sb.WriteString(fmt.Sprintf("TRIGGER:-PT%dM\r\n", icsReminderMinutes))
		sb.WriteString("DESCRIPTION:Lembrete de treino\r\n")
		sb.WriteString("END:VALARM\r\n")

		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")

	return sb.String()
}

func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
