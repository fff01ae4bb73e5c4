package payments

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/meetspace/meetspace/pkg/email"
	"github.com/meetspace/meetspace/pkg/execctx"
	"github.com/meetspace/meetspace/pkg/logger"
	"github.com/meetspace/meetspace/pkg/problem"
	"github.com/meetspace/meetspace/pkg/secrets"
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Service implements the subscription payments ledger.
type Service struct {
	store   paymentStore
	cipher  *secrets.Cipher
	mailer  email.EmailSender
	execctx *execctx.Accessor
	log     *slog.Logger
}

// RecordParams carries one payment to record.
type RecordParams struct {
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	BillingRef   string `json:"billing_ref"`
	ReceiptEmail string `json:"receipt_email"`
}

// Record validates and stores a payment for the caller, then sends a
// confirmation email. The billing reference is encrypted before it touches
// the database. Email delivery failure does not fail the payment; the ledger
// entry is already durable at that point.
func (s *Service) Record(ctx context.Context, params RecordParams) (Payment, error) {
	payerID, ok := s.currentUser(ctx)
	if !ok {
		return Payment{}, problem.Unauthorized()
	}

	verr := problem.NewValidationErrors()
	if params.Amount <= 0 {
		verr.Add("amount", "Amount must be a positive number of cents.")
	}
	if !currencyRegex.MatchString(params.Currency) {
		verr.Add("currency", "Currency must be a three-letter ISO code.")
	}
	if params.BillingRef == "" {
		verr.Add("billing_ref", "Billing reference is required.")
	}
	if params.ReceiptEmail == "" {
		verr.Add("receipt_email", "Receipt email is required.")
	}
	if !verr.IsEmpty() {
		return Payment{}, verr
	}

	encryptedRef, err := s.cipher.EncryptString(params.BillingRef)
	if err != nil {
		return Payment{}, err
	}

	payment := Payment{
		ID:         uuid.New(),
		PayerID:    payerID,
		Amount:     params.Amount,
		Currency:   params.Currency,
		BillingRef: encryptedRef,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return Payment{}, err
	}

	s.log.InfoContext(ctx, "payment recorded",
		slog.String("payment_id", payment.ID.String()),
		logger.UserID(payerID.String()),
		slog.Int64("amount", payment.Amount),
		slog.String("currency", payment.Currency))

	if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   params.ReceiptEmail,
		Subject:  "Payment received",
		BodyHTML: confirmationBody(payment),
		Tag:      "payment-confirmation",
	}); err != nil {
		s.log.ErrorContext(ctx, "payment confirmation email failed",
			slog.String("payment_id", payment.ID.String()),
			logger.Error(err))
	}

	payment.BillingRef = params.BillingRef
	return payment, nil
}

// ListMine returns the caller's ledger entries with billing references
// decrypted.
func (s *Service) ListMine(ctx context.Context) ([]Payment, error) {
	payerID, ok := s.currentUser(ctx)
	if !ok {
		return nil, problem.Unauthorized()
	}

	payments, err := s.store.ListByPayer(ctx, payerID)
	if err != nil {
		return nil, err
	}

	for i := range payments {
		ref, err := s.cipher.DecryptString(payments[i].BillingRef)
		if err != nil {
			return nil, err
		}
		payments[i].BillingRef = ref
	}
	return payments, nil
}

func confirmationBody(p Payment) string {
	return fmt.Sprintf(
		"<p>We received your payment of %d.%02d %s.</p><p>Payment reference: %s</p>",
		p.Amount/100, p.Amount%100, p.Currency, p.ID)
}

func (s *Service) currentUser(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := s.execctx.CurrentUserID(ctx)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
