package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"

	"github.com/anjiri1684/faq_board/models"
)

const (
	subjectNewQuestion   = "📩 Nouvelle question FAQ"
	subjectAnswered      = "✅ Votre question FAQ a reçu une réponse"
	subjectPendingDigest = "⏳ Questions FAQ en attente"
)

var (
	newQuestionTmpl = template.Must(template.New("new_question").Parse(`
<h2>Nouvelle question reçue</h2>
<p><strong>De:</strong> {{.Name}}{{with .Email}} ({{.}}){{end}}</p>
<p><strong>Question:</strong></p>
<blockquote style="background: #f9f9f9; padding: 15px; border-left: 3px solid #2196F3;">
  {{.Question}}
</blockquote>
<p><a href="{{.Link}}">Répondre à la question</a></p>
`))

	answeredTmpl = template.Must(template.New("answered").Parse(`
<h2>Bonjour {{.Name}},</h2>
<p>Votre question a reçu une réponse.</p>
<p><strong>Question:</strong></p>
<blockquote style="background: #f9f9f9; padding: 15px; border-left: 3px solid #2196F3;">
  {{.Question}}
</blockquote>
<p><strong>Réponse:</strong></p>
<blockquote style="background: #f1f8e9; padding: 15px; border-left: 3px solid #4CAF50;">
  {{.Answer}}
</blockquote>
<p><a href="{{.Link}}">Voir toutes les questions</a></p>
`))

	pendingDigestTmpl = template.Must(template.New("pending_digest").Parse(`
<h2>{{len .Questions}} question(s) en attente</h2>
<ul>
{{range .Questions}}  <li><strong>{{.Name}}</strong>: {{.Question}}</li>
{{end}}</ul>
<p><a href="{{.Link}}">Ouvrir le panneau d'administration</a></p>
`))
)

type mailView struct {
	Name      string
	Email     string
	Question  string
	Answer    string
	Link      string
	Questions []models.Question
}

// Notifier renders the board's emails and hands them to a Mailer. A nil
// Mailer or a missing recipient means the message is skipped, not failed.
type Notifier struct {
	mailer     Mailer
	adminEmail string
	appURL     string
}

func NewNotifier(mailer Mailer, adminEmail, appURL string) *Notifier {
	return &Notifier{mailer: mailer, adminEmail: adminEmail, appURL: appURL}
}

func (n *Notifier) adminLink() string  { return n.appURL + "/admin.html" }
func (n *Notifier) publicLink() string { return n.appURL + "/" }

func (n *Notifier) NotifyAdmin(ctx context.Context, q models.Question) error {
	if n.mailer == nil || n.adminEmail == "" {
		log.Println("Email client or admin address not configured, skipping admin notification.")
		return nil
	}

	view := mailView{Name: q.Name, Question: q.Question, Link: n.adminLink()}
	if q.Email != nil {
		view.Email = *q.Email
	}
	html, err := render(newQuestionTmpl, view)
	if err != nil {
		return err
	}

	return n.mailer.Send(ctx, Message{
		ToEmail:     n.adminEmail,
		Subject:     subjectNewQuestion,
		HTMLContent: html,
	})
}

func (n *Notifier) NotifySubmitter(ctx context.Context, q models.Question) error {
	if q.Email == nil || *q.Email == "" {
		return nil
	}
	if q.Answer == nil {
		return errors.New("question has no answer to send")
	}
	if n.mailer == nil {
		log.Println("Email client not initialized, skipping submitter notification.")
		return nil
	}

	html, err := render(answeredTmpl, mailView{
		Name:     q.Name,
		Question: q.Question,
		Answer:   *q.Answer,
		Link:     n.publicLink(),
	})
	if err != nil {
		return err
	}

	return n.mailer.Send(ctx, Message{
		ToEmail:     *q.Email,
		ToName:      q.Name,
		Subject:     subjectAnswered,
		HTMLContent: html,
	})
}

func (n *Notifier) NotifyPendingDigest(ctx context.Context, pending []models.Question) error {
	if len(pending) == 0 {
		return nil
	}
	if n.mailer == nil || n.adminEmail == "" {
		log.Println("Email client or admin address not configured, skipping pending digest.")
		return nil
	}

	html, err := render(pendingDigestTmpl, mailView{Questions: pending, Link: n.adminLink()})
	if err != nil {
		return err
	}

	return n.mailer.Send(ctx, Message{
		ToEmail:     n.adminEmail,
		Subject:     fmt.Sprintf("%s (%d)", subjectPendingDigest, len(pending)),
		HTMLContent: html,
	})
}

func render(t *template.Template, view mailView) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render %s email: %w", t.Name(), err)
	}
	return buf.String(), nil
}
