package entity

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Transaction types understood by the signing gateway.
const (
	TxTypeSignIn      = "SignIn"
	TxTypePayment     = "Payment"
	TxTypeNFTokenMint = "NFTokenMint"
)

const (
	// DropsPerXRP is the number of drops in one XRP.
	DropsPerXRP = 1_000_000

	// NFTokenFlagTransferable marks a minted token as transferable (tfTransferable).
	NFTokenFlagTransferable = 8
)

// ErrInvalidAmount is returned when an XRP amount is not a positive decimal.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// TxJSON is the transaction template submitted for signing.
type TxJSON map[string]any

// SignPayload is a created signing request awaiting the wallet holder.
type SignPayload struct {
	UUID      string `json:"uuid"`
	QRURL     string `json:"qrUrl"`
	DeepLink  string `json:"deepLink"`
	QRDataURI string `json:"qrDataUri,omitempty"`
}

// PayloadStatus is the resolution state of a signing request.
type PayloadStatus struct {
	Resolved bool   `json:"resolved"`
	Signed   bool   `json:"signed"`
	Account  string `json:"account,omitempty"`
	TxHash   string `json:"txHash,omitempty"`
}

// NewSignInTx returns a sign-in template carrying no transaction.
func NewSignInTx() TxJSON {
	return TxJSON{"TransactionType": TxTypeSignIn}
}

// NewPaymentTx returns a payment template with the amount converted to drops.
func NewPaymentTx(account, destination, amountXRP string) (TxJSON, error) {
	drops, err := XRPToDrops(amountXRP)
	if err != nil {
		return nil, err
	}

	return TxJSON{
		"TransactionType": TxTypePayment,
		"Account":         account,
		"Destination":     destination,
		"Amount":          drops,
	}, nil
}

// NewNFTokenMintTx returns a transferable mint template for the given metadata URI.
func NewNFTokenMintTx(uri string) TxJSON {
	return TxJSON{
		"TransactionType": TxTypeNFTokenMint,
		"URI":             strings.ToUpper(hex.EncodeToString([]byte(uri))),
		"Flags":           NFTokenFlagTransferable,
		"NFTokenTaxon":    0,
	}
}

// XRPToDrops converts a decimal XRP amount to an integer drops string.
func XRPToDrops(amountXRP string) (string, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountXRP), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return "", ErrInvalidAmount
	}

	drops := math.Round(amount * DropsPerXRP)
	if drops < 1 {
		return "", ErrInvalidAmount
	}

	return strconv.FormatFloat(drops, 'f', 0, 64), nil
}
