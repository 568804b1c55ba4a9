package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rajat8876/VendorIQ2/internal/domain"
	"github.com/rajat8876/VendorIQ2/internal/service/email"
	"github.com/rajat8876/VendorIQ2/internal/service/payment"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

// Plan prices in rupees, keyed by plan then billing period.
var planPrices = map[string]map[string]int64{
	"basic":   {"monthly": 200, "yearly": 2000},
	"premium": {"monthly": 300, "yearly": 3000},
}

type SubscriptionStore interface {
	Create(ctx context.Context, s *domain.Subscription) error
}

// BillingUsecase drives the order-then-confirm subscription purchase
// flow against the payment gateway.
type BillingUsecase struct {
	subs    SubscriptionStore
	users   UserStore
	gateway *payment.Client
	email   *email.Sender
	logger  *zap.Logger
}

func NewBillingUsecase(subs SubscriptionStore, users UserStore, gateway *payment.Client, emailSender *email.Sender, logger *zap.Logger) *BillingUsecase {
	return &BillingUsecase{subs: subs, users: users, gateway: gateway, email: emailSender, logger: logger}
}

func planAmount(plan, duration string) (int64, error) {
	periods, ok := planPrices[plan]
	if !ok {
		return 0, xerrors.ErrUnknownPlan
	}
	amount, ok := periods[duration]
	if !ok {
		return 0, xerrors.ErrUnknownPlan
	}
	return amount, nil
}

// CreateOrder opens a gateway order for the chosen plan. The client
// completes checkout against the returned order and then calls Confirm.
func (uc *BillingUsecase) CreateOrder(ctx context.Context, userID, plan, duration string) (*payment.Order, error) {
	if !uc.gateway.Configured() {
		return nil, xerrors.ErrGatewayNotConfigured
	}
	amount, err := planAmount(plan, duration)
	if err != nil {
		return nil, err
	}

	receipt := "sub_" + uuid.New().String()
	order, err := uc.gateway.CreateOrder(ctx, amount, "INR", receipt, map[string]string{
		"user_id":  userID,
		"plan":     plan,
		"duration": duration,
	})
	if err != nil {
		return nil, err
	}
	uc.logger.Info("subscription order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.String("plan", plan))
	return order, nil
}

type ConfirmPaymentInput struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
	Plan      string `json:"plan"`
	Duration  string `json:"duration"`
}

// Confirm verifies the gateway signature, records the subscription and
// activates the account. The activation email goes out asynchronously.
func (uc *BillingUsecase) Confirm(ctx context.Context, userID string, in ConfirmPaymentInput) (*domain.Subscription, error) {
	if !uc.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		uc.logger.Warn("payment signature rejected",
			zap.String("order_id", in.OrderID),
			zap.String("user_id", userID))
		return nil, xerrors.ErrInvalidSignature
	}
	amount, err := planAmount(in.Plan, in.Duration)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	months := 1
	if in.Duration == "yearly" {
		months = 12
	}
	sub := &domain.Subscription{
		ID:            uuid.New().String(),
		UserID:        userID,
		PlanName:      in.Plan,
		Amount:        amount,
		Currency:      "INR",
		Status:        "active",
		StartsAt:      now,
		EndsAt:        now.AddDate(0, months, 0),
		PaymentMethod: "razorpay",
		PaymentID:     in.PaymentID,
	}
	if err := uc.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	if err := uc.users.SetSubscriptionStatus(ctx, userID, "active"); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err == nil && user.Email != "" {
		planTitle := cases.Title(language.English).String(in.Plan)
		go func() {
			msg := fmt.Sprintf("Your %s plan is now active until %s. Thank you for subscribing!",
				planTitle, sub.EndsAt.Format("2 January 2006"))
			if err := uc.email.SendNotification(user.Email, "Subscription Activated", msg); err != nil {
				uc.logger.Warn("failed to send activation email",
					zap.String("user_id", userID), zap.Error(err))
			}
		}()
	}

	uc.logger.Info("subscription activated",
		zap.String("subscription_id", sub.ID),
		zap.String("user_id", userID),
		zap.String("plan", in.Plan))
	return sub, nil
}
