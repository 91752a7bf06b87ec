package catalog

import "watch-price-converter/domain"

// watches prices in USD, in report order
var watches = domain.PriceTable{
	{Name: "Rolex Submariner", Price: 10000},
	{Name: "Omega Seamaster", Price: 5000},
	{Name: "Casio G-Shock", Price: 150},
	{Name: "Apple Watch Ultra", Price: 800},
}

// Watches returns a copy of the watch price table
func Watches() domain.PriceTable {
	table := make(domain.PriceTable, len(watches))
	copy(table, watches)
	return table
}
