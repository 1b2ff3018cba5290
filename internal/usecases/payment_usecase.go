package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"homeconnect.backend/internal/domain/entities"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/internal/domain/repositories"
	"homeconnect.backend/internal/infrastructure/paystack"
	"homeconnect.backend/pkg/logger"
)

const unlockPurpose = "unlock_contact"

// minorUnitFactor converts between naira and kobo. Verify must apply the
// exact inverse of initialize or stored amounts drift.
const minorUnitFactor = 100

// PaymentProvider is the external payment processor surface the unlock
// workflow needs. Implemented by *paystack.Client.
type PaymentProvider interface {
	Initialize(ctx context.Context, input *paystack.InitializeRequest) (json.RawMessage, error)
	Verify(ctx context.Context, reference string) (*paystack.VerifyResponse, error)
}

// PaymentUsecase drives the contact-unlock workflow: initialize a provider
// transaction, verify it by reference, and record the unlock exactly once
// per (user, listing) pair.
type PaymentUsecase struct {
	unlockRepo repositories.UnlockRepository
	provider   PaymentProvider
	configured bool
}

// NewPaymentUsecase creates a new payment usecase. configured reports
// whether the provider secret is present; when false, initialize and verify
// refuse to run instead of sending unauthenticated provider calls.
func NewPaymentUsecase(unlockRepo repositories.UnlockRepository, provider PaymentProvider, configured bool) *PaymentUsecase {
	return &PaymentUsecase{
		unlockRepo: unlockRepo,
		provider:   provider,
		configured: configured,
	}
}

// InitializePayment starts a provider transaction for unlocking a listing's
// contact details and returns the provider's raw payload unchanged. No local
// state is written here: a crash at this step leaves nothing to clean up.
func (u *PaymentUsecase) InitializePayment(ctx context.Context, userID uuid.UUID, email string, input *entities.InitializePaymentInput) (json.RawMessage, error) {
	if input.ListingID == "" || input.Amount <= 0 {
		return nil, domainerrors.BadRequest("listingId and amount are required")
	}
	if !u.configured {
		return nil, domainerrors.ProviderNotConfigured("PAYSTACK_SECRET_KEY is not configured")
	}

	req := &paystack.InitializeRequest{
		Email:  email,
		Amount: int64(math.Round(input.Amount * minorUnitFactor)),
		Metadata: paystack.Metadata{
			ListingID: input.ListingID,
			UserID:    userID.String(),
			Purpose:   unlockPurpose,
		},
	}

	payload, err := u.provider.Initialize(ctx, req)
	if err != nil {
		logger.Error(ctx, "paystack initialize failed", zap.Error(err))
		return nil, domainerrors.InternalErrorWithMessage("Unable to initialize payment", err)
	}
	return payload, nil
}

// VerifyPayment confirms a transaction with the provider and records the
// unlock. Safe to call any number of times with the same reference: the
// first successful call creates the record, every later one finds it.
func (u *PaymentUsecase) VerifyPayment(ctx context.Context, userID uuid.UUID, reference string) (*entities.VerifyPaymentResult, error) {
	if reference == "" {
		return nil, domainerrors.BadRequest("reference is required")
	}
	if !u.configured {
		return nil, domainerrors.ProviderNotConfigured("PAYSTACK_SECRET_KEY is not configured")
	}

	resp, err := u.provider.Verify(ctx, reference)
	if err != nil {
		logger.Error(ctx, "paystack verify failed", zap.String("reference", reference), zap.Error(err))
		return nil, domainerrors.InternalErrorWithMessage("Unable to verify payment", err)
	}

	if !resp.Status {
		return nil, domainerrors.PaymentFailed("Payment verification failed")
	}
	if resp.Data.Status != "success" {
		return nil, domainerrors.PaymentFailed(fmt.Sprintf("Payment not successful: %s", resp.Data.Status))
	}

	if resp.Data.Metadata.ListingID == "" {
		return nil, domainerrors.BadRequest("Missing listingId in transaction metadata")
	}
	listingID, err := uuid.Parse(resp.Data.Metadata.ListingID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid listingId in transaction metadata")
	}

	result := &entities.VerifyPaymentResult{
		Message:   "Payment verified and contact unlocked",
		ListingID: resp.Data.Metadata.ListingID,
		Reference: reference,
	}

	// Find-or-create. Duplicate verifies (client retry, double click, poll
	// racing a webhook) must not produce a second record or an error.
	_, err = u.unlockRepo.GetByUserAndListing(ctx, userID, listingID)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	unlock := &entities.Unlock{
		ID:        uuid.New(),
		UserID:    userID,
		ListingID: listingID,
		Reference: reference,
		Amount:    float64(resp.Data.Amount) / minorUnitFactor,
		PaidAt:    time.Now(),
	}

	if err := u.unlockRepo.Create(ctx, unlock); err != nil {
		// A concurrent verify won the insert; that is still a success
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return result, nil
		}
		return nil, err
	}

	logger.Info(ctx, "contact unlocked",
		zap.String("user_id", userID.String()),
		zap.String("listing_id", listingID.String()),
		zap.String("reference", reference),
	)
	return result, nil
}

// IsUnlocked reports whether the caller has paid to see a listing's contact
// details. Pure read, no side effects.
func (u *PaymentUsecase) IsUnlocked(ctx context.Context, userID uuid.UUID, listingID string) (bool, error) {
	id, err := uuid.Parse(listingID)
	if err != nil {
		return false, nil
	}
	return u.unlockRepo.Exists(ctx, userID, id)
}
