package sms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const apiBase = "https://api.twilio.com/2010-04-01"

// Sender posts messages to the Twilio REST API. Without credentials it
// logs the code instead, same degraded mode as the mail sender.
type Sender struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewSender(accountSID, authToken, from string, logger *zap.Logger) *Sender {
	return &Sender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (s *Sender) configured() bool {
	return s.accountSID != "" && s.authToken != ""
}

func (s *Sender) SendOTP(ctx context.Context, phone, code string) error {
	body := fmt.Sprintf("Your VendorIQ verification code is: %s. Valid for 5 minutes. Do not share this code with anyone.", code)
	return s.send(ctx, phone, body)
}

func (s *Sender) send(ctx context.Context, to, body string) error {
	if !s.configured() {
		s.logger.Info("sms gateway not configured, logging message instead",
			zap.String("to", to), zap.String("body", body))
		return nil
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", apiBase, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
