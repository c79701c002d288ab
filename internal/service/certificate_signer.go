package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"gold-settlement/internal/core/domain"

	"golang.org/x/crypto/hkdf"
)

var certificateTypes = []domain.CertificateType{
	domain.CertificateBar,
	domain.CertificateStorage,
	domain.CertificateDigitalOwnership,
	domain.CertificateCustodian,
}

// HKDFCertificateSigner implements ports.CertificateSigner. Each certificate
// type gets its own HMAC key derived from the master secret, so a signature
// for one type never verifies as another.
type HKDFCertificateSigner struct {
	keys map[domain.CertificateType][]byte
}

// NewCertificateSigner derives the per-type keys from secret.
func NewCertificateSigner(secret string) (*HKDFCertificateSigner, error) {
	if secret == "" {
		return nil, errors.New("certificate secret must not be empty")
	}
	keys := make(map[domain.CertificateType][]byte, len(certificateTypes))
	for _, t := range certificateTypes {
		r := hkdf.New(sha256.New, []byte(secret), nil, []byte("gsc-certificate:"+string(t)))
		key := make([]byte, 32)
		if _, err := io.ReadFull(r, key); err != nil {
			return nil, fmt.Errorf("derive %s key: %w", t, err)
		}
		keys[t] = key
	}
	return &HKDFCertificateSigner{keys: keys}, nil
}

// Sign returns the hex HMAC-SHA256 of payload under the type's key.
func (s *HKDFCertificateSigner) Sign(certType domain.CertificateType, payload []byte) (string, error) {
	key, ok := s.keys[certType]
	if !ok {
		return "", fmt.Errorf("unknown certificate type %q", certType)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks a certificate signature in constant time.
func (s *HKDFCertificateSigner) Verify(certType domain.CertificateType, payload []byte, signature string) bool {
	expected, err := s.Sign(certType, payload)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}
