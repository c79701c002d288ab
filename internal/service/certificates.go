package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gold-settlement/internal/core/domain"
	"gold-settlement/internal/core/ports"
	"gold-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// issueCertificate numbers, signs and stores a platform certificate. The
// number is embedded in the signed payload.
func issueCertificate(
	ctx context.Context,
	tx pgx.Tx,
	bars ports.BarRepository,
	signer ports.CertificateSigner,
	certType domain.CertificateType,
	orderID uuid.UUID,
	barID *uuid.UUID,
	payload map[string]any,
	at time.Time,
) (*domain.Certificate, error) {
	number := domain.NewCertificateNumber(certType, at)
	payload["certificateNumber"] = number
	payload["certificateType"] = certType
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode certificate: %w", err))
	}
	sig, err := signer.Sign(certType, raw)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sign certificate: %w", err))
	}
	cert := &domain.Certificate{
		ID:                uuid.New(),
		CertificateNumber: number,
		Type:              certType,
		OrderID:           orderID,
		BarLotID:          barID,
		Signature:         sig,
		Payload:           raw,
		IssuedAt:          at,
	}
	if err := bars.CreateCertificate(ctx, tx, cert); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create certificate: %w", err))
	}
	return cert, nil
}
