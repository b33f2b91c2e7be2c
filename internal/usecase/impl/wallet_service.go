package impl

import (
	"context"
	"log/slog"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	"workbench/internal/domain/service"
	"workbench/internal/usecase"
)

const upstreamXaman = "xaman"

type walletService struct {
	gateway service.SigningGateway
	qrSvc   service.QRCodeService
	logger  *slog.Logger
}

// NewWalletService creates a new wallet service instance
func NewWalletService(gateway service.SigningGateway, qrSvc service.QRCodeService, logger *slog.Logger) usecase.WalletUsecase {
	return &walletService{
		gateway: gateway,
		qrSvc:   qrSvc,
		logger:  logger,
	}
}

// SignIn creates a sign-in request.
func (s *walletService) SignIn(ctx context.Context) (*entity.SignPayload, error) {
	return s.createPayload(ctx, entity.NewSignInTx())
}

// RequestPayment creates a payment request for the given amount in XRP.
func (s *walletService) RequestPayment(ctx context.Context, input *usecase.PaymentInput) (*entity.SignPayload, error) {
	if input == nil || input.Account == "" || input.Destination == "" || input.Amount == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("destination, amount and account are required")
	}

	tx, err := entity.NewPaymentTx(input.Account, input.Destination, input.Amount)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return s.createPayload(ctx, tx)
}

// MintNFT creates a mint request for a metadata URI.
func (s *walletService) MintNFT(ctx context.Context, uri string) (*entity.SignPayload, error) {
	if uri == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("uri is required")
	}

	return s.createPayload(ctx, entity.NewNFTokenMintTx(uri))
}

// PayloadStatus polls a signing request.
func (s *walletService) PayloadStatus(ctx context.Context, uuid string) (*entity.PayloadStatus, error) {
	if uuid == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("uuid is required")
	}

	if !s.gateway.Configured() {
		return nil, domainerrors.ErrServiceNotConfigured.WithDetails(upstreamXaman)
	}

	status, err := s.gateway.GetPayloadStatus(ctx, uuid)
	if err != nil {
		return nil, upstreamError(s.logger, upstreamXaman, err)
	}

	return status, nil
}

func (s *walletService) createPayload(ctx context.Context, tx entity.TxJSON) (*entity.SignPayload, error) {
	if !s.gateway.Configured() {
		return nil, domainerrors.ErrServiceNotConfigured.WithDetails(upstreamXaman)
	}

	payload, err := s.gateway.CreatePayload(ctx, tx)
	if err != nil {
		return nil, upstreamError(s.logger, upstreamXaman, err)
	}

	// A missing QR image only degrades the response.
	if payload.DeepLink != "" {
		dataURI, err := s.qrSvc.GenerateDataURI(payload.DeepLink)
		if err != nil {
			s.logger.Warn("Failed to render deep link QR code",
				slog.String("uuid", payload.UUID),
				slog.Any("error", err),
			)
		} else {
			payload.QRDataURI = dataURI
		}
	}

	return payload, nil
}
