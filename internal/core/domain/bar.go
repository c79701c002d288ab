package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustodyStatus tracks where a physical bar currently is.
type CustodyStatus string

const (
	CustodyInVault   CustodyStatus = "in_vault"
	CustodyInTransit CustodyStatus = "in_transit"
	CustodyWithdrawn CustodyStatus = "withdrawn"
)

// BarLot is one serialized physical bar tied to exactly one order.
type BarLot struct {
	ID                uuid.UUID       `json:"id"`
	OrderID           uuid.UUID       `json:"order_id"`
	BarID             string          `json:"bar_id"`
	SerialNumber      string          `json:"serial_number"`
	WeightGrams       decimal.Decimal `json:"weight_grams"`
	Purity            decimal.Decimal `json:"purity"`
	Mint              string          `json:"mint"`
	VaultLocation     string          `json:"vault_location"`
	CustodyStatus     CustodyStatus   `json:"custody_status"`
	CustodyVerifiedAt *time.Time      `json:"custody_verified_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CertificateType distinguishes the documents the platform keeps.
type CertificateType string

const (
	CertificateBar              CertificateType = "bar"
	CertificateStorage          CertificateType = "storage"
	CertificateDigitalOwnership CertificateType = "digital_ownership"
	CertificateCustodian        CertificateType = "custodian"
)

// Valid reports whether t is a known certificate type.
func (t CertificateType) Valid() bool {
	switch t {
	case CertificateBar, CertificateStorage, CertificateDigitalOwnership, CertificateCustodian:
		return true
	}
	return false
}

func (t CertificateType) code() string {
	switch t {
	case CertificateBar:
		return "PB"
	case CertificateStorage:
		return "SR"
	case CertificateDigitalOwnership:
		return "DO"
	default:
		return "CU"
	}
}

// Certificate is an append-only signed document record.
type Certificate struct {
	ID                uuid.UUID       `json:"id"`
	CertificateNumber string          `json:"certificate_number"`
	Type              CertificateType `json:"type"`
	OrderID           uuid.UUID       `json:"order_id"`
	BarLotID          *uuid.UUID      `json:"bar_lot_id,omitempty"`
	Signature         string          `json:"signature"`
	Payload           json.RawMessage `json:"payload"`
	IssuedAt          time.Time       `json:"issued_at"`
}

// NewCertificateNumber builds e.g. CERT-PB-20261019-1A2B3C4D.
func NewCertificateNumber(t CertificateType, at time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("CERT-%s-%s-%s", t.code(), at.UTC().Format("20060102"), id[:8])
}

// VaultHolding is the internal custody record backing a digital balance.
// CreditTransactionID is set when the Settlement Guard credits the wallet.
type VaultHolding struct {
	ID                  uuid.UUID       `json:"id"`
	BarLotID            uuid.UUID       `json:"bar_lot_id"`
	OrderID             uuid.UUID       `json:"order_id"`
	UserID              uuid.UUID       `json:"user_id"`
	WeightGrams         decimal.Decimal `json:"weight_grams"`
	VaultLocation       string          `json:"vault_location"`
	CreditTransactionID *uuid.UUID      `json:"credit_transaction_id,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// BackingSummary is the live physical evidence for one order, recomputed
// at settlement time.
type BackingSummary struct {
	BarCount     int
	TotalGrams   decimal.Decimal
	BackedBars   int // bars with a certificate or a vault holding
	InVaultBars  int
	InVaultGrams decimal.Decimal
}

// SummarizeBacking computes the physical evidence for one order's bars.
func SummarizeBacking(bars []BarLot, certs []Certificate, holdings []VaultHolding) BackingSummary {
	certified := make(map[uuid.UUID]bool, len(certs))
	for _, c := range certs {
		if c.BarLotID != nil {
			certified[*c.BarLotID] = true
		}
	}
	held := make(map[uuid.UUID]bool, len(holdings))
	for _, h := range holdings {
		held[h.BarLotID] = true
	}

	s := BackingSummary{TotalGrams: decimal.Zero, InVaultGrams: decimal.Zero}
	for _, b := range bars {
		s.BarCount++
		s.TotalGrams = s.TotalGrams.Add(b.WeightGrams)
		if certified[b.ID] || held[b.ID] {
			s.BackedBars++
		}
		if b.CustodyStatus == CustodyInVault {
			s.InVaultBars++
			s.InVaultGrams = s.InVaultGrams.Add(b.WeightGrams)
		}
	}
	return s
}
