package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPriceOracle(t *testing.T) {
	price, err := NewStaticPriceOracle(decimal.RequireFromString("85.25")).SpotPricePerGram(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "85.25", price.String())

	_, err = NewStaticPriceOracle(decimal.Zero).SpotPricePerGram(context.Background())
	assertAppError(t, err, "EXT_002")
}
