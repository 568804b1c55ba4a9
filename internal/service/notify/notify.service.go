package notify

import (
	"context"
	"strings"

	"github.com/rajat8876/VendorIQ2/internal/service/email"
	"github.com/rajat8876/VendorIQ2/internal/service/sms"
)

// Router picks a delivery channel from the shape of the identifier: mail
// when it looks like an address, SMS otherwise. The passcode manager stays
// channel-agnostic.
type Router struct {
	email *email.Sender
	sms   *sms.Sender
}

func NewRouter(emailSender *email.Sender, smsSender *sms.Sender) *Router {
	return &Router{email: emailSender, sms: smsSender}
}

func (r *Router) Send(ctx context.Context, identifier, code string) error {
	if strings.Contains(identifier, "@") {
		return r.email.SendOTP(identifier, code)
	}
	return r.sms.SendOTP(ctx, identifier, code)
}
