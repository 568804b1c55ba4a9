package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajat8876/VendorIQ2/internal/domain"
	"github.com/rajat8876/VendorIQ2/internal/otp"
	"github.com/rajat8876/VendorIQ2/pkg/jwtutil"
	"github.com/rajat8876/VendorIQ2/pkg/xerrors"
)

const trialPeriod = 30 * 24 * time.Hour

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	MarkEmailVerified(ctx context.Context, id string, at time.Time) error
	MarkPhoneVerified(ctx context.Context, id string, at time.Time) error
	SetSubscriptionStatus(ctx context.Context, id, status string) error
}

// AuthUsecase glues the passcode manager to user lookup and session
// issuance. The token signer is opaque here.
type AuthUsecase struct {
	users  UserStore
	otp    *otp.Manager
	signer *jwtutil.Signer
	logger *zap.Logger
}

func NewAuthUsecase(users UserStore, manager *otp.Manager, signer *jwtutil.Signer, logger *zap.Logger) *AuthUsecase {
	return &AuthUsecase{users: users, otp: manager, signer: signer, logger: logger}
}

type RegisterInput struct {
	BusinessName  string   `json:"business_name"`
	ContactPerson string   `json:"contact_person"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Location      string   `json:"location"`
	Industries    []string `json:"industries"`
	Password      string   `json:"password"`
}

// Register creates a business account on a 30-day trial and sends a
// verification passcode to its email.
func (uc *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*domain.User, time.Time, error) {
	exists, err := uc.users.ExistsByEmailOrPhone(ctx, in.Email, in.Phone)
	if err != nil {
		return nil, time.Time{}, err
	}
	if exists {
		return nil, time.Time{}, xerrors.ErrUserAlreadyExists
	}

	var passwordHash *string
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, time.Time{}, err
		}
		s := string(hashed)
		passwordHash = &s
	}

	trialEnd := time.Now().Add(trialPeriod)
	user := &domain.User{
		ID:                 uuid.New().String(),
		BusinessName:       in.BusinessName,
		ContactPerson:      in.ContactPerson,
		Phone:              in.Phone,
		Email:              in.Email,
		Location:           in.Location,
		Industries:         in.Industries,
		PasswordHash:       passwordHash,
		SubscriptionStatus: "trial",
		TrialEndsAt:        &trialEnd,
		IsActive:           true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, time.Time{}, err
	}

	_, expiresAt, err := uc.otp.Issue(ctx, in.Email, user.ID)
	if err != nil {
		return nil, time.Time{}, err
	}
	return user, expiresAt, nil
}

// RequestOTP issues a passcode for an identifier. No account needs to
// exist yet; verification will fail later if there is none.
func (uc *AuthUsecase) RequestOTP(ctx context.Context, identifier string) (time.Time, error) {
	_, expiresAt, err := uc.otp.Issue(ctx, identifier, "")
	return expiresAt, err
}

// VerifyOTP checks the submitted code and, on success, marks the matching
// account verified and returns it with a fresh session token.
func (uc *AuthUsecase) VerifyOTP(ctx context.Context, identifier, code string) (*domain.User, string, error) {
	res := uc.otp.Verify(ctx, identifier, code)
	if !res.OK {
		switch res.Reason {
		case otp.ReasonMismatch:
			return nil, "", xerrors.ErrInvalidOTP
		case otp.ReasonExpired:
			return nil, "", xerrors.ErrExpiredOTP
		default:
			return nil, "", xerrors.ErrNoActiveOTP
		}
	}

	user, err := uc.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	if strings.Contains(identifier, "@") {
		err = uc.users.MarkEmailVerified(ctx, user.ID, now)
	} else {
		err = uc.users.MarkPhoneVerified(ctx, user.ID, now)
	}
	if err != nil {
		uc.logger.Warn("failed to record verification",
			zap.String("user_id", user.ID), zap.Error(err))
	}

	token, err := uc.signer.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// RequestLoginOTP issues a passcode for an existing account. Used by the
// login endpoint when no password is supplied.
func (uc *AuthUsecase) RequestLoginOTP(ctx context.Context, identifier string) (time.Time, error) {
	user, err := uc.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return time.Time{}, err
	}
	_, expiresAt, err := uc.otp.Issue(ctx, identifier, user.ID)
	return expiresAt, err
}

// PasswordLogin authenticates by phone or email plus password.
func (uc *AuthUsecase) PasswordLogin(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	user, err := uc.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, "", err
	}
	if user.PasswordHash == nil {
		return nil, "", xerrors.ErrPasswordNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, "", xerrors.ErrInvalidCredentials
	}

	token, err := uc.signer.Sign(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *AuthUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return uc.users.GetByID(ctx, id)
}

// RefreshToken reissues a session token for an active account.
func (uc *AuthUsecase) RefreshToken(ctx context.Context, userID string) (string, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !user.IsActive {
		return "", xerrors.ErrUserNotFound
	}
	return uc.signer.Sign(user.ID, user.Email)
}
