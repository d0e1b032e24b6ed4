package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/varunhirthik/warehouse-management/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Utilidad de una venta: (selling_price − cost_price) × |quantity_change|.
// El quantity_change de una venta ya viene negativo del write path.
func TestTransaction_Profit_Venta(t *testing.T) {
	tx := &entity.InventoryTransaction{
		Type:           entity.TypeSale,
		QuantityChange: -3,
		SellingPrice:   dec("20.0"),
	}
	assert.True(t, dec("15").Equal(tx.Profit(dec("15.0"))),
		"(20−15)×3 = 15")
}

// Los imports no aportan utilidad, tengan el precio que tengan.
func TestTransaction_Profit_ImportCero(t *testing.T) {
	tx := &entity.InventoryTransaction{
		Type:           entity.TypeImport,
		QuantityChange: 10,
		SellingPrice:   dec("99.0"),
	}
	assert.True(t, tx.Profit(dec("1.0")).IsZero())
}

// Una venta por debajo del costo produce utilidad negativa, no cero.
func TestTransaction_Profit_Negativa(t *testing.T) {
	tx := &entity.InventoryTransaction{
		Type:           entity.TypeSale,
		QuantityChange: -2,
		SellingPrice:   dec("1.0"),
	}
	assert.True(t, dec("-4").Equal(tx.Profit(dec("3.0"))))
}

// La utilidad es lineal: la de un lote de ventas es la suma de la de cada
// venta calculada por separado.
func TestTransaction_Profit_Lineal(t *testing.T) {
	cost := dec("15.0")
	sales := []*entity.InventoryTransaction{
		{Type: entity.TypeSale, QuantityChange: -3, SellingPrice: dec("20.0")},
		{Type: entity.TypeSale, QuantityChange: -1, SellingPrice: dec("18.5")},
		{Type: entity.TypeSale, QuantityChange: -4, SellingPrice: dec("16.25")},
	}

	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Profit(cost))
	}

	// 15 + 3.5 + 5 = 23.5
	assert.True(t, dec("23.5").Equal(sum))
}

func TestValidType(t *testing.T) {
	assert.True(t, entity.ValidType(entity.TypeImport))
	assert.True(t, entity.ValidType(entity.TypeSale))
	assert.False(t, entity.ValidType("transfer"))
	assert.False(t, entity.ValidType(""))
}
