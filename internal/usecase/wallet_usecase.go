package usecase

import (
	"context"

	"workbench/internal/domain/entity"
)

// PaymentInput describes an XRP payment to be signed by the sender.
type PaymentInput struct {
	Account     string
	Destination string
	Amount      string // Decimal XRP
}

// WalletUsecase defines the wallet signing use cases.
type WalletUsecase interface {
	// SignIn creates a sign-in request that proves account ownership.
	SignIn(ctx context.Context) (*entity.SignPayload, error)

	// RequestPayment creates a payment signing request.
	RequestPayment(ctx context.Context, input *PaymentInput) (*entity.SignPayload, error)

	// MintNFT creates a signing request minting a transferable token for uri.
	MintNFT(ctx context.Context, uri string) (*entity.SignPayload, error)

	// PayloadStatus reports whether a signing request was resolved and signed.
	PayloadStatus(ctx context.Context, uuid string) (*entity.PayloadStatus, error)
}
