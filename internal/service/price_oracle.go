package service

import (
	"context"
	"errors"

	"gold-settlement/pkg/apperror"

	"github.com/shopspring/decimal"
)

// StaticPriceOracle implements ports.PriceOracle with a configured price.
// It stands in for a live market feed.
type StaticPriceOracle struct {
	pricePerGram decimal.Decimal
}

// NewStaticPriceOracle creates an oracle quoting usdPerGram.
func NewStaticPriceOracle(usdPerGram decimal.Decimal) *StaticPriceOracle {
	return &StaticPriceOracle{pricePerGram: usdPerGram}
}

// SpotPricePerGram returns the configured price.
func (o *StaticPriceOracle) SpotPricePerGram(_ context.Context) (decimal.Decimal, error) {
	if !o.pricePerGram.IsPositive() {
		return decimal.Zero, apperror.ErrPriceUnavailable(errors.New("no spot price configured"))
	}
	return o.pricePerGram, nil
}
