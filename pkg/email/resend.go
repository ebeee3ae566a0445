package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"

	"github.com/mealbox/storefront-backend/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

type Config struct {
	APIKey        string
	FromAddress   string
	FromName      string
	FrontendURL   string
	PublicBaseURL string
}

type EmailService struct {
	send          func(*resend.SendEmailRequest) (string, error)
	from          string
	fromName      string
	frontendURL   string
	publicBaseURL string
	templates     *template.Template
	log           *zap.Logger
}

func NewEmailService(cfg Config, log *zap.Logger) (*EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	client := resend.NewClient(cfg.APIKey)
	return &EmailService{
		send: func(req *resend.SendEmailRequest) (string, error) {
			resp, err := client.Emails.Send(req)
			if err != nil {
				return "", err
			}
			return resp.Id, nil
		},
		from:          cfg.FromAddress,
		fromName:      cfg.FromName,
		frontendURL:   cfg.FrontendURL,
		publicBaseURL: cfg.PublicBaseURL,
		templates:     tmpl,
		log:           log,
	}, nil
}

func (s *EmailService) SendGiftCardEmail(card *models.GiftCard) error {
	log := s.log.With(zap.String("gift_card_id", card.ID.String()), zap.String("to", card.RecipientEmail))
	log.Info("sending gift card email")

	html, err := s.renderGiftCard(card)
	if err != nil {
		log.Error("gift card template failed", zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{card.RecipientEmail},
		Subject: "You've received a Mealbox gift!",
		Html:    html,
	}
	if card.PurchaserEmail != "" {
		params.ReplyTo = card.PurchaserEmail
	}

	id, err := s.send(params)
	if err != nil {
		log.Error("failed to send gift card email", zap.Error(err))
		return err
	}

	log.Info("sent gift card email", zap.String("email_id", id))
	return nil
}

func (s *EmailService) renderGiftCard(card *models.GiftCard) (string, error) {
	description := fmt.Sprintf("a $%.2f gift card", card.Amount)
	if card.Kind == models.GiftKindMealPlan {
		description = "a prepaid meal plan"
	}

	code := url.QueryEscape(card.Code)
	data := map[string]interface{}{
		"RecipientName":  card.RecipientName,
		"PurchaserEmail": card.PurchaserEmail,
		"Description":    description,
		"Message":        card.Message,
		"Code":           card.Code,
		"RedeemLink":     s.frontendURL + "/redeem?code=" + code,
		"QRCodeURL":      s.publicBaseURL + "/api/gift-cards/" + url.PathEscape(card.Code) + "/qr",
		"Year":           time.Now().Year(),
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "gift-card.html", data); err != nil {
		return "", err
	}
	return body.String(), nil
}
