package impl

import (
	"context"
	"log/slog"
	"testing"

	"workbench/internal/domain/entity"
	domainerrors "workbench/internal/domain/errors"
	mockSvc "workbench/internal/mocks/service"
	"workbench/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEvaluationService_EvaluateIdea(t *testing.T) {
	ctx := context.Background()

	t.Run("blank idea", func(t *testing.T) {
		evaluator := mockSvc.NewMockIdeaEvaluator(t)
		svc := NewEvaluationService(evaluator, newDiscardLogger())

		_, err := svc.EvaluateIdea(ctx, "   ")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("not configured", func(t *testing.T) {
		evaluator := mockSvc.NewMockIdeaEvaluator(t)
		evaluator.EXPECT().Configured().Return(false)
		svc := NewEvaluationService(evaluator, newDiscardLogger())

		_, err := svc.EvaluateIdea(ctx, "sell ice to penguins")
		assert.True(t, errors.Is(err, domainerrors.ErrServiceNotConfigured))
	})

	t.Run("trims and evaluates", func(t *testing.T) {
		evaluator := mockSvc.NewMockIdeaEvaluator(t)
		evaluator.EXPECT().Configured().Return(true)
		evaluator.EXPECT().Evaluate(ctx, "subscription socks").
			Return(&entity.IdeaEvaluation{Score: 7, Feedback: "Plausible."}, nil)
		svc := NewEvaluationService(evaluator, newDiscardLogger())

		got, err := svc.EvaluateIdea(ctx, "  subscription socks\n")
		require.NoError(t, err)
		assert.Equal(t, 7, got.Score)
		assert.Equal(t, "Plausible.", got.Feedback)
	})

	t.Run("provider failure hides cause", func(t *testing.T) {
		evaluator := mockSvc.NewMockIdeaEvaluator(t)
		evaluator.EXPECT().Configured().Return(true)
		evaluator.EXPECT().Evaluate(ctx, "idea").Return(nil, errors.New("status 429: rate limited sk-secret"))
		svc := NewEvaluationService(evaluator, newDiscardLogger())

		_, err := svc.EvaluateIdea(ctx, "idea")
		require.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
		assert.NotContains(t, err.Error(), "sk-secret")
	})
}

func TestWalletService_RequestPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("converts amount and renders qr", func(t *testing.T) {
		gateway := mockSvc.NewMockSigningGateway(t)
		qrSvc := mockSvc.NewMockQRCodeService(t)
		svc := NewWalletService(gateway, qrSvc, newDiscardLogger())

		gateway.EXPECT().Configured().Return(true)
		gateway.EXPECT().
			CreatePayload(ctx, mock.MatchedBy(func(tx entity.TxJSON) bool {
				return tx["TransactionType"] == entity.TxTypePayment &&
					tx["Amount"] == "1500000" &&
					tx["Account"] == "rSender" &&
					tx["Destination"] == "rDest"
			})).
			Return(&entity.SignPayload{UUID: "u-1", QRURL: "https://q/u-1.png", DeepLink: "https://xumm.app/sign/u-1"}, nil)
		qrSvc.EXPECT().GenerateDataURI("https://xumm.app/sign/u-1").Return("data:image/png;base64,AAAA", nil)

		payload, err := svc.RequestPayment(ctx, &usecase.PaymentInput{Account: "rSender", Destination: "rDest", Amount: "1.5"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", payload.UUID)
		assert.Equal(t, "data:image/png;base64,AAAA", payload.QRDataURI)
	})

	t.Run("qr failure degrades", func(t *testing.T) {
		gateway := mockSvc.NewMockSigningGateway(t)
		qrSvc := mockSvc.NewMockQRCodeService(t)
		svc := NewWalletService(gateway, qrSvc, newDiscardLogger())

		gateway.EXPECT().Configured().Return(true)
		gateway.EXPECT().CreatePayload(ctx, mock.Anything).
			Return(&entity.SignPayload{UUID: "u-2", DeepLink: "https://xumm.app/sign/u-2"}, nil)
		qrSvc.EXPECT().GenerateDataURI(mock.Anything).Return("", errors.New("too long"))

		payload, err := svc.RequestPayment(ctx, &usecase.PaymentInput{Account: "a", Destination: "b", Amount: "2"})
		require.NoError(t, err)
		assert.Empty(t, payload.QRDataURI)
	})

	t.Run("invalid amount", func(t *testing.T) {
		svc := NewWalletService(mockSvc.NewMockSigningGateway(t), mockSvc.NewMockQRCodeService(t), newDiscardLogger())

		_, err := svc.RequestPayment(ctx, &usecase.PaymentInput{Account: "a", Destination: "b", Amount: "-3"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("missing field", func(t *testing.T) {
		svc := NewWalletService(mockSvc.NewMockSigningGateway(t), mockSvc.NewMockQRCodeService(t), newDiscardLogger())

		_, err := svc.RequestPayment(ctx, &usecase.PaymentInput{Destination: "b", Amount: "1"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})
}

func TestWalletService_MintAndSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("mint hex-encodes uri", func(t *testing.T) {
		gateway := mockSvc.NewMockSigningGateway(t)
		qrSvc := mockSvc.NewMockQRCodeService(t)
		svc := NewWalletService(gateway, qrSvc, newDiscardLogger())

		gateway.EXPECT().Configured().Return(true)
		gateway.EXPECT().
			CreatePayload(ctx, mock.MatchedBy(func(tx entity.TxJSON) bool {
				return tx["URI"] == "697066733A2F2F516D" && tx["Flags"] == entity.NFTokenFlagTransferable
			})).
			Return(&entity.SignPayload{UUID: "m-1"}, nil)

		payload, err := svc.MintNFT(ctx, "ipfs://Qm")
		require.NoError(t, err)
		assert.Equal(t, "m-1", payload.UUID)
	})

	t.Run("mint requires uri", func(t *testing.T) {
		svc := NewWalletService(mockSvc.NewMockSigningGateway(t), mockSvc.NewMockQRCodeService(t), newDiscardLogger())

		_, err := svc.MintNFT(ctx, "")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("sign in unconfigured", func(t *testing.T) {
		gateway := mockSvc.NewMockSigningGateway(t)
		gateway.EXPECT().Configured().Return(false)
		svc := NewWalletService(gateway, mockSvc.NewMockQRCodeService(t), newDiscardLogger())

		_, err := svc.SignIn(ctx)
		assert.True(t, errors.Is(err, domainerrors.ErrServiceNotConfigured))
	})

	t.Run("sign in upstream failure", func(t *testing.T) {
		gateway := mockSvc.NewMockSigningGateway(t)
		gateway.EXPECT().Configured().Return(true)
		gateway.EXPECT().CreatePayload(ctx, entity.NewSignInTx()).Return(nil, errors.New("status 500"))
		svc := NewWalletService(gateway, mockSvc.NewMockQRCodeService(t), newDiscardLogger())

		_, err := svc.SignIn(ctx)
		assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
	})
}

func TestWalletService_PayloadStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("requires uuid", func(t *testing.T) {
		svc := NewWalletService(mockSvc.NewMockSigningGateway(t), mockSvc.NewMockQRCodeService(t), newDiscardLogger())

		_, err := svc.PayloadStatus(ctx, "")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("returns status", func(t *testing.T) {
		gateway := mockSvc.NewMockSigningGateway(t)
		gateway.EXPECT().Configured().Return(true)
		gateway.EXPECT().GetPayloadStatus(ctx, "u-1").
			Return(&entity.PayloadStatus{Resolved: true, Signed: true, Account: "rAcc", TxHash: "ABC"}, nil)
		svc := NewWalletService(gateway, mockSvc.NewMockQRCodeService(t), newDiscardLogger())

		status, err := svc.PayloadStatus(ctx, "u-1")
		require.NoError(t, err)
		assert.True(t, status.Signed)
		assert.Equal(t, "ABC", status.TxHash)
	})
}

type readablePinner struct {
	*mockSvc.MockPinningService
	*mockSvc.MockPinReader
}

func TestPinningService_PinFile(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults name", func(t *testing.T) {
		pinner := mockSvc.NewMockPinningService(t)
		svc := NewPinningService(pinner, newDiscardLogger())

		pinner.EXPECT().Configured().Return(true)
		pinner.EXPECT().
			Pin(ctx, mock.MatchedBy(func(u *entity.PinUpload) bool { return u.Name == entity.DefaultPinName })).
			Return(&entity.PinnedFile{Hash: "QmX", URL: "https://gateway.pinata.cloud/ipfs/QmX"}, nil)

		pinned, err := svc.PinFile(ctx, &entity.PinUpload{Content: []byte{0x89, 'P', 'N', 'G'}})
		require.NoError(t, err)
		assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmX", pinned.URL)
	})

	t.Run("empty file", func(t *testing.T) {
		svc := NewPinningService(mockSvc.NewMockPinningService(t), newDiscardLogger())

		_, err := svc.PinFile(ctx, &entity.PinUpload{Name: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("not configured", func(t *testing.T) {
		pinner := mockSvc.NewMockPinningService(t)
		pinner.EXPECT().Configured().Return(false)
		svc := NewPinningService(pinner, newDiscardLogger())

		_, err := svc.PinFile(ctx, &entity.PinUpload{Content: []byte("x")})
		assert.True(t, errors.Is(err, domainerrors.ErrServiceNotConfigured))
	})
}

func TestPinningService_ReadPin(t *testing.T) {
	ctx := context.Background()

	t.Run("provider without local content", func(t *testing.T) {
		svc := NewPinningService(mockSvc.NewMockPinningService(t), newDiscardLogger())

		_, _, err := svc.ReadPin(ctx, "abc")
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("local provider", func(t *testing.T) {
		reader := mockSvc.NewMockPinReader(t)
		reader.EXPECT().ReadPin(ctx, "abc").Return([]byte("png"), "image/png", nil)
		svc := NewPinningService(readablePinner{mockSvc.NewMockPinningService(t), reader}, newDiscardLogger())

		content, contentType, err := svc.ReadPin(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), content)
		assert.Equal(t, "image/png", contentType)
	})

	t.Run("unknown hash keeps not found", func(t *testing.T) {
		reader := mockSvc.NewMockPinReader(t)
		reader.EXPECT().ReadPin(ctx, "missing").Return(nil, "", domainerrors.ErrPinNotFound)
		svc := NewPinningService(readablePinner{mockSvc.NewMockPinningService(t), reader}, newDiscardLogger())

		_, _, err := svc.ReadPin(ctx, "missing")
		assert.True(t, errors.Is(err, domainerrors.ErrPinNotFound))
	})
}
