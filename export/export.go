// Package export renders question sets as downloadable JSON or CSV files.
package export

import (
	"strings"
	"time"

	"github.com/anjiri1684/faq_board/models"
)

// BOM makes spreadsheet tools detect UTF-8.
const BOM = "\uFEFF"

var csvHeader = []string{"ID", "Nom", "Email", "Question", "Statut", "Date Question", "Réponse", "Date Réponse"}

type Envelope struct {
	ExportDate     time.Time         `json:"exportDate"`
	TotalQuestions int               `json:"totalQuestions"`
	AnsweredCount  int               `json:"answeredCount"`
	PendingCount   int               `json:"pendingCount"`
	Questions      []models.Question `json:"questions"`
}

// ToJSON wraps questions with counts derived from the slice itself.
func ToJSON(questions []models.Question, now time.Time) Envelope {
	if questions == nil {
		questions = []models.Question{}
	}
	env := Envelope{
		ExportDate:     now.UTC(),
		TotalQuestions: len(questions),
		Questions:      questions,
	}
	for _, q := range questions {
		switch q.Status {
		case models.StatusAnswered:
			env.AnsweredCount++
		case models.StatusPending:
			env.PendingCount++
		}
	}
	return env
}

// ToCSV renders one row per question in input order. Text columns are always
// quoted; id, status and timestamps are written bare.
func ToCSV(questions []models.Question) []byte {
	var b strings.Builder
	b.WriteString(BOM)
	b.WriteString(strings.Join(csvHeader, ","))
	b.WriteByte('\n')

	for _, q := range questions {
		row := []string{
			q.ID,
			quote(q.Name),
			quote(deref(q.Email)),
			quote(q.Question),
			string(q.Status),
			formatTime(&q.CreatedAt),
			quote(deref(q.Answer)),
			formatTime(q.AnsweredAt),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func Filename(ext string, now time.Time) string {
	return "faq-export-" + now.UTC().Format("2006-01-02") + "." + ext
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(models.TimestampLayout)
}
