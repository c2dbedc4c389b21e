package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/seu-usuario/choperia-api/internal/domain"
	"github.com/seu-usuario/choperia-api/internal/domain/entity"
	"github.com/seu-usuario/choperia-api/internal/domain/stock"
)

var testNow = time.Date(2024, 7, 20, 15, 0, 0, 0, time.UTC)

// newTestLot lote padrão dos cenários: 10 barris de 50L a R$350 = 500L.
func newTestLot(t *testing.T) *entity.StockItem {
	t.Helper()
	lot, err := stock.NewLot(stock.LotInput{
		ProductName: "Barril Chopp Pilsen",
		Category:    entity.StockCategoryPilsen,
		EntryDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		ExpiryDate:  time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
		UnitLiters:  decimal.NewFromInt(50),
		UnitCount:   10,
		UnitPrice:   decimal.NewFromInt(350),
	}, testNow)
	require.NoError(t, err)
	return lot
}

func TestNewLot_CalculaQuantidadeInicial(t *testing.T) {
	lot := newTestLot(t)

	assert.True(t, lot.InitialQuantityLiters.Equal(decimal.NewFromInt(500)))
	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, entity.StockStatusActive, lot.Status)
	assert.Nil(t, lot.ClosureDate)
	assert.Empty(t, lot.Movements)
}

func TestNewLot_ValidaCampos(t *testing.T) {
	base := stock.LotInput{
		ProductName: "Barril Chopp IPA",
		Category:    entity.StockCategoryIPA,
		UnitLiters:  decimal.NewFromInt(30),
		UnitCount:   5,
		UnitPrice:   decimal.NewFromInt(450),
	}

	cases := []struct {
		name   string
		mutate func(*stock.LotInput)
	}{
		{"litragem zero", func(in *stock.LotInput) { in.UnitLiters = decimal.Zero }},
		{"litragem negativa", func(in *stock.LotInput) { in.UnitLiters = decimal.NewFromInt(-1) }},
		{"unidades zero", func(in *stock.LotInput) { in.UnitCount = 0 }},
		{"preço zero", func(in *stock.LotInput) { in.UnitPrice = decimal.Zero }},
		{"nome vazio", func(in *stock.LotInput) { in.ProductName = "" }},
		{"categoria desconhecida", func(in *stock.LotInput) { in.Category = "Stout" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := stock.NewLot(in, testNow)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestApplyConsumption_DecrementaERegistraMovimento(t *testing.T) {
	lot := newTestLot(t)

	mov, err := stock.ApplyConsumption(lot, decimal.NewFromInt(50), entity.ExitReasonEvent, testNow)
	require.NoError(t, err)

	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, entity.StockStatusActive, lot.Status)
	require.Len(t, lot.Movements, 1)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, entity.ExitReasonEvent, mov.Reason)
	assert.Equal(t, lot.ID, mov.StockItemID)
}

func TestApplyConsumption_EncerraAoZerar(t *testing.T) {
	lot := newTestLot(t)

	_, err := stock.ApplyConsumption(lot, decimal.NewFromInt(500), entity.ExitReasonEvent, testNow)
	require.NoError(t, err)

	assert.True(t, lot.AvailableQuantityLiters.IsZero())
	assert.Equal(t, entity.StockStatusClosed, lot.Status)
	require.NotNil(t, lot.ClosureDate)
	assert.Equal(t, testNow, *lot.ClosureDate)
}

func TestApplyConsumption_LoteEncerradoRejeitaNovasSaidas(t *testing.T) {
	lot := newTestLot(t)
	_, err := stock.ApplyConsumption(lot, decimal.NewFromInt(500), entity.ExitReasonLoss, testNow)
	require.NoError(t, err)

	_, err = stock.ApplyConsumption(lot, decimal.NewFromInt(1), entity.ExitReasonLoss, testNow)
	assert.ErrorIs(t, err, domain.ErrLotClosed)
	assert.Len(t, lot.Movements, 1)
}

func TestApplyConsumption_InsuficienteDeixaLoteIntacto(t *testing.T) {
	lot := newTestLot(t)

	_, err := stock.ApplyConsumption(lot, decimal.NewFromInt(501), entity.ExitReasonEvent, testNow)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, entity.StockStatusActive, lot.Status)
	assert.Empty(t, lot.Movements)
	assert.Nil(t, lot.ClosureDate)
}

func TestApplyConsumption_QuantidadeNaoPositiva(t *testing.T) {
	lot := newTestLot(t)

	_, err := stock.ApplyConsumption(lot, decimal.Zero, entity.ExitReasonEvent, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = stock.ApplyConsumption(lot, decimal.NewFromInt(-10), entity.ExitReasonEvent, testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Propriedade: após qualquer sequência de saídas válidas, o disponível é
// exatamente inicial - soma dos movimentos, e nunca negativo.
func TestApplyConsumption_DisponivelConsistenteComLog(t *testing.T) {
	lot := newTestLot(t)
	quantities := []int64{120, 80, 45, 200, 55}

	for _, q := range quantities {
		_, err := stock.ApplyConsumption(lot, decimal.NewFromInt(q), entity.ExitReasonInternal, testNow)
		require.NoError(t, err)
	}

	total := decimal.Zero
	for _, m := range lot.Movements {
		total = total.Add(m.Quantity)
	}
	assert.True(t, lot.AvailableQuantityLiters.Equal(lot.InitialQuantityLiters.Sub(total)))
	assert.False(t, lot.AvailableQuantityLiters.IsNegative())
	assert.Equal(t, entity.StockStatusClosed, lot.Status) // 500L consumidos
}

func TestConsumeFromEntry_ConsomeDiferenca(t *testing.T) {
	lot := newTestLot(t)

	mov, err := stock.ConsumeFromEntry(lot, decimal.NewFromInt(50), decimal.NewFromInt(10), testNow)
	require.NoError(t, err)

	require.NotNil(t, mov)
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, entity.ExitReasonEvent, mov.Reason)
	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(460)))
	assert.Equal(t, entity.StockStatusActive, lot.Status)
}

func TestConsumeFromEntry_DevolvidoMaiorQueRetirado(t *testing.T) {
	lot := newTestLot(t)

	_, err := stock.ConsumeFromEntry(lot, decimal.NewFromInt(10), decimal.NewFromInt(20), testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(500)))
}

func TestConsumeFromEntry_ConsumoZeroEhNoOp(t *testing.T) {
	lot := newTestLot(t)

	mov, err := stock.ConsumeFromEntry(lot, decimal.NewFromInt(30), decimal.NewFromInt(30), testNow)
	require.NoError(t, err)
	assert.Nil(t, mov)
	assert.Empty(t, lot.Movements)
	assert.True(t, lot.AvailableQuantityLiters.Equal(decimal.NewFromInt(500)))
}

func TestEditMetadata_NaoTocaCamposDeLote(t *testing.T) {
	lot := newTestLot(t)
	name := "Barril Chopp Pilsen Premium"
	price := decimal.NewFromInt(380)

	err := stock.EditMetadata(lot, stock.MetadataInput{
		ProductName: &name,
		UnitPrice:   &price,
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, "Barril Chopp Pilsen Premium", lot.ProductName)
	assert.True(t, lot.UnitPrice.Equal(decimal.NewFromInt(380)))
	// Campos definidores do lote permanecem imutáveis.
	assert.True(t, lot.UnitLiters.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 10, lot.UnitCount)
	assert.True(t, lot.InitialQuantityLiters.Equal(decimal.NewFromInt(500)))
}

func TestEditMetadata_ValidaValores(t *testing.T) {
	lot := newTestLot(t)
	empty := ""
	badCat := "Bock"
	badPrice := decimal.Zero

	assert.ErrorIs(t, stock.EditMetadata(lot, stock.MetadataInput{ProductName: &empty}, testNow), domain.ErrInvalidInput)
	assert.ErrorIs(t, stock.EditMetadata(lot, stock.MetadataInput{Category: &badCat}, testNow), domain.ErrInvalidInput)
	assert.ErrorIs(t, stock.EditMetadata(lot, stock.MetadataInput{UnitPrice: &badPrice}, testNow), domain.ErrInvalidInput)
}

func TestApplyConsumption_FracoesDecimais(t *testing.T) {
	lot, err := stock.NewLot(stock.LotInput{
		ProductName: "Barril Chopp Weiss",
		Category:    entity.StockCategoryWeiss,
		UnitLiters:  decimal.RequireFromString("30.5"),
		UnitCount:   2,
		UnitPrice:   decimal.NewFromInt(420),
	}, testNow)
	require.NoError(t, err)
	require.True(t, lot.InitialQuantityLiters.Equal(decimal.RequireFromString("61")))

	// Três saídas fracionárias que drenam o lote exatamente.
	for _, q := range []string{"20.3", "20.3", "20.4"} {
		_, err := stock.ApplyConsumption(lot, decimal.RequireFromString(q), entity.ExitReasonEvent, testNow)
		require.NoError(t, err)
	}
	assert.True(t, lot.AvailableQuantityLiters.IsZero())
	assert.Equal(t, entity.StockStatusClosed, lot.Status)
}
