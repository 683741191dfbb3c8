package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pobyzaarif/goshortcute"
)

type MailjetConfig struct {
	BaseURL           string
	BasicAuthUsername string
	BasicAuthPassword string
	SenderEmail       string
	SenderName        string
}

// MailjetRepository delivers transactional mail (verification links, account
// notices) through the Mailjet v3.1 send API.
type MailjetRepository struct {
	cfg    MailjetConfig
	client *http.Client
}

func NewMailjetRepository(cfg MailjetConfig) *MailjetRepository {
	return &MailjetRepository{
		cfg:    cfg,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type sendPayload struct {
	Messages []message `json:"Messages"`
}

type party struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type message struct {
	From     party   `json:"From"`
	To       []party `json:"To"`
	Subject  string  `json:"Subject"`
	TextPart string  `json:"TextPart"`
	HTMLPart string  `json:"HTMLPart"`
}

func (r *MailjetRepository) SendEmail(toName, toEmail, subject, body string) (err error) {
	payload := sendPayload{
		Messages: []message{{
			From: party{
				Email: r.cfg.SenderEmail,
				Name:  r.cfg.SenderName,
			},
			To:       []party{{Email: toEmail, Name: toName}},
			Subject:  subject,
			TextPart: body,
			HTMLPart: body,
		}},
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, r.cfg.BaseURL+"/v3.1/send", bytes.NewReader(payloadBytes))
	if err != nil {
		return err
	}

	basicAuth := goshortcute.StringtoBase64Encode(r.cfg.BasicAuthUsername + ":" + r.cfg.BasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+basicAuth)

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	resBody, _ := io.ReadAll(res.Body)

	return fmt.Errorf("mailer service returned %v: %s", res.StatusCode, string(resBody))
}
