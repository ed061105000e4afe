package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opwolken/facturatie-api/internal/domain/billing"
	"github.com/opwolken/facturatie-api/internal/domain/entity"
)

func TestCalculateTotals_SingleLine(t *testing.T) {
	regels := []entity.InvoiceLine{
		{Beschrijving: "Webdevelopment", Aantal: 8, Tarief: 95, BTWPercentage: 21},
	}

	sub, btw, totaal := billing.CalculateTotals(regels)

	assert.Equal(t, 760.0, sub)
	assert.Equal(t, 159.6, btw)
	assert.Equal(t, 919.6, totaal)
	assert.Equal(t, 760.0, regels[0].Totaal, "line totaal is stamped in place")
}

func TestCalculateTotals_MixedRates(t *testing.T) {
	regels := []entity.InvoiceLine{
		{Aantal: 1, Tarief: 100, BTWPercentage: 21},
		{Aantal: 2, Tarief: 25.5, BTWPercentage: 9},
		{Aantal: 1, Tarief: 40, BTWPercentage: 0},
	}

	sub, btw, totaal := billing.CalculateTotals(regels)

	assert.Equal(t, 191.0, sub)
	assert.Equal(t, 25.59, btw) // 21 + 4.59 + 0
	assert.Equal(t, 216.59, totaal)
}

func TestCalculateTotals_FractionalQuantityRounding(t *testing.T) {
	regels := []entity.InvoiceLine{
		{Aantal: 1.5, Tarief: 33.33, BTWPercentage: 21},
	}

	sub, btw, totaal := billing.CalculateTotals(regels)

	assert.Equal(t, 50.0, sub) // 49.995 rounds half-up on decimals, not on floats
	assert.Equal(t, 10.5, btw)
	assert.Equal(t, 60.49, totaal) // rounded from the unrounded 49.995+10.49895
}

func TestCalculateTotals_Empty(t *testing.T) {
	sub, btw, totaal := billing.CalculateTotals(nil)

	assert.Zero(t, sub)
	assert.Zero(t, btw)
	assert.Zero(t, totaal)
}
