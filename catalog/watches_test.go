package catalog

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"watch-price-converter/domain"
)

func TestWatches(t *testing.T) {
	table := Watches()

	assert.NoError(t, table.Validate())
	assert.Equal(t, domain.PriceTable{
		{Name: "Rolex Submariner", Price: 10000},
		{Name: "Omega Seamaster", Price: 5000},
		{Name: "Casio G-Shock", Price: 150},
		{Name: "Apple Watch Ultra", Price: 800},
	}, table)
}

func TestWatches_ReturnsCopy(t *testing.T) {
	table := Watches()
	table[0].Price = 1

	assert.Equal(t, domain.Amount(10000), Watches()[0].Price)
}
