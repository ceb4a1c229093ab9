package services

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"gorm.io/gorm"

	"idea-management-api/models"
)

// MailSender is the mail seam; *config.Mailer satisfies it.
type MailSender interface {
	Send(to []string, subject, html string) error
}

// DecisionNotifier emails the idea owner after a decision commits.
// It runs outside the transition transaction: a mail failure must never
// roll back a decision.
type DecisionNotifier struct {
	db     *gorm.DB
	mailer MailSender
}

func NewDecisionNotifier(db *gorm.DB, mailer MailSender) *DecisionNotifier {
	return &DecisionNotifier{db: db, mailer: mailer}
}

var decisionBody = template.Must(template.New("decision").Parse(
	`<p>Hi {{.Name}},</p>
<p>Your idea <strong>{{.Title}}</strong> has been <strong>{{.Decision}}</strong>.</p>
<p>Sign in to see the reviewer comments.</p>`))

// NotifyDecision sends the decision mail for a decided idea. Callers log
// the returned error; it is never surfaced to the API client.
func (n *DecisionNotifier) NotifyDecision(idea *models.Idea) error {
	if !idea.Decided() {
		return nil
	}

	var owner models.User
	if err := n.db.First(&owner, "user_id = ?", idea.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load idea owner: %w", err)
	}

	var body strings.Builder
	err := decisionBody.Execute(&body, map[string]string{
		"Name":     owner.Name,
		"Title":    idea.Title,
		"Decision": strings.ToLower(idea.Status),
	})
	if err != nil {
		return fmt.Errorf("render decision mail: %w", err)
	}

	subject := fmt.Sprintf("Your idea %q was %s", idea.Title, strings.ToLower(idea.Status))
	return n.mailer.Send([]string{owner.Email}, subject, body.String())
}
