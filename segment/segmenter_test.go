package segment

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aquinode91-creator/procesador-pdf/model"
)

func TestSegment_SameOrderLabelContinues(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nFletero: Juan\nNº 001-001\nTOTAL A PAGAR: 100\n",
		"Orden de Transporte: TRP-001\nNº 001-002\nTOTAL A PAGAR: 200\n",
	}

	result := New().Segment(pages)

	if len(result.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(result.Orders))
	}
	order := result.Orders[0]
	if order.OrderNumber != "TRP-001" {
		t.Errorf("OrderNumber = %q", order.OrderNumber)
	}
	if order.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", order.PageCount())
	}
	if order.InvoiceCount() != 2 {
		t.Errorf("InvoiceCount = %d, want 2", order.InvoiceCount())
	}
}

func TestSegment_NewOrderLabelFlushes(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\nTOTAL A PAGAR: 100\n",
		"Orden de Transporte: TRP-002\nFletero: Pedro\nNº 002-001\nTOTAL A PAGAR: 200\n",
	}

	result := New().Segment(pages)

	if len(result.Orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(result.Orders))
	}
	if result.Orders[0].OrderNumber != "TRP-001" || result.Orders[1].OrderNumber != "TRP-002" {
		t.Errorf("order numbers = %q, %q", result.Orders[0].OrderNumber, result.Orders[1].OrderNumber)
	}
	if result.Orders[0].Hauler != model.UnspecifiedHauler {
		t.Errorf("Hauler = %q, want default %q", result.Orders[0].Hauler, model.UnspecifiedHauler)
	}
	if result.Orders[1].Hauler != "Pedro" {
		t.Errorf("Hauler = %q, want %q", result.Orders[1].Hauler, "Pedro")
	}
}

func TestSegment_InvoiceNumberAndAmountCaptured(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 100-001\nTOTAL A PAGAR: 1.250.000\n",
	}

	result := New().Segment(pages)

	if len(result.Orders) != 1 || result.Orders[0].InvoiceCount() != 1 {
		t.Fatalf("unexpected result shape: %+v", result.Orders)
	}
	inv := result.Orders[0].Invoices[0]
	if inv.InvoiceNumber != "100-001" {
		t.Errorf("InvoiceNumber = %q, want %q", inv.InvoiceNumber, "100-001")
	}
	if !inv.AmountDue.Equal(decimal.NewFromInt(1250000)) {
		t.Errorf("AmountDue = %s, want 1250000", inv.AmountDue)
	}
}

func TestSegment_OrderLabelMarkerAddsNoPhantomInvoice(t *testing.T) {
	pages := []string{
		"Orden de Transporte Nº: 12345\nFletero: Juan\n",
		"Orden de Transporte Nº: 12345\nNº 001-001\nTOTAL A PAGAR: 150.000\n",
	}

	result := New().Segment(pages)

	if len(result.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(result.Orders))
	}
	order := result.Orders[0]
	if order.OrderNumber != "12345" {
		t.Errorf("OrderNumber = %q, want %q", order.OrderNumber, "12345")
	}
	if order.InvoiceCount() != 1 {
		t.Fatalf("InvoiceCount = %d, want 1: %+v", order.InvoiceCount(), order.Invoices)
	}
	if got := order.Invoices[0].InvoiceNumber; got != "001-001" {
		t.Errorf("InvoiceNumber = %q, want %q", got, "001-001")
	}
}

func TestSegment_NoChargePaymentOverridesAmount(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\nForma de Pago: Sin Cargo\nTOTAL A PAGAR: 500\n",
	}

	result := New().Segment(pages)

	inv := result.Orders[0].Invoices[0]
	if inv.SaleType != model.SaleTypeNoCharge {
		t.Errorf("SaleType = %q, want %q despite non-zero amount", inv.SaleType, model.SaleTypeNoCharge)
	}
	if !inv.AmountDue.Equal(decimal.NewFromInt(500)) {
		t.Errorf("AmountDue = %s, want 500", inv.AmountDue)
	}
}

func TestSegment_ZeroAmountIsNoCharge(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\nTOTAL A PAGAR: 0\nPlazo: Contado\n",
	}

	inv := New().Segment(pages).Orders[0].Invoices[0]
	if inv.SaleType != model.SaleTypeNoCharge {
		t.Errorf("SaleType = %q, want %q", inv.SaleType, model.SaleTypeNoCharge)
	}
	if inv.SaleCondition != model.SaleConditionCash {
		t.Errorf("SaleCondition = %q, want %q", inv.SaleCondition, model.SaleConditionCash)
	}
}

func TestSegment_ExplicitSaleTypeWins(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\nTipo de Venta: Reposición\nTOTAL A PAGAR: 900\n",
	}

	inv := New().Segment(pages).Orders[0].Invoices[0]
	if inv.SaleType != model.SaleTypeReplacement {
		t.Errorf("SaleType = %q, want %q", inv.SaleType, model.SaleTypeReplacement)
	}
}

func TestSegment_CreditIsDefaultCondition(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\nPlazo: 30 días\nTOTAL A PAGAR: 100\n",
	}

	inv := New().Segment(pages).Orders[0].Invoices[0]
	if inv.SaleCondition != model.SaleConditionCredit {
		t.Errorf("SaleCondition = %q, want %q", inv.SaleCondition, model.SaleConditionCredit)
	}
}

func TestSegment_EmptyDocument(t *testing.T) {
	result := New().Segment([]string{"texto cualquiera\n", "más texto\n"})

	if !result.Empty() {
		t.Fatal("expected empty result")
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Code != model.WarnNoOrders {
		t.Errorf("expected a single WarnNoOrders warning, got %v", result.Warnings)
	}
}

func TestSegment_NoInput(t *testing.T) {
	result := New().Segment(nil)
	if !result.Empty() {
		t.Fatal("expected empty result for nil input")
	}
}

func TestSegment_PagesBeforeFirstOrderDiscarded(t *testing.T) {
	pages := []string{
		"portada sin etiquetas\nNº 999-999\n",
		"Orden de Transporte: TRP-001\nNº 001-001\nTOTAL A PAGAR: 100\n",
	}

	result := New().Segment(pages)

	order := result.Orders[0]
	if order.PageCount() != 1 {
		t.Errorf("PageCount = %d, want 1 (leading page discarded)", order.PageCount())
	}
	if order.Pages[0].Index != 1 {
		t.Errorf("page index = %d, want 1", order.Pages[0].Index)
	}
	if order.InvoiceCount() != 1 || order.Invoices[0].InvoiceNumber != "001-001" {
		t.Errorf("unexpected invoices: %+v", order.Invoices)
	}
}

func TestSegment_DuplicateInvoiceNumberSkipped(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\nTOTAL A PAGAR: 100\n",
		"Nº 001-001\nTOTAL A PAGAR: 100\n",
	}

	order := New().Segment(pages).Orders[0]
	if order.InvoiceCount() != 1 {
		t.Errorf("InvoiceCount = %d, want 1", order.InvoiceCount())
	}
	if order.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", order.PageCount())
	}
}

func TestSegment_AmountParseFailureWarnsAndZeroes(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\nTOTAL A PAGAR: sin monto\n",
	}

	result := New().Segment(pages)

	inv := result.Orders[0].Invoices[0]
	if !inv.AmountDue.IsZero() {
		t.Errorf("AmountDue = %s, want zero", inv.AmountDue)
	}
	found := false
	for _, w := range result.Warnings {
		if w.Code == model.WarnAmountParse && w.Page == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected WarnAmountParse warning, got %v", result.Warnings)
	}
}

func TestSegment_MissingFieldsGetDefaults(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\nNº 001-001\n",
	}

	inv := New().Segment(pages).Orders[0].Invoices[0]
	if inv.ClientName != model.Unknown || inv.District != model.Unknown {
		t.Errorf("expected Unknown defaults, got %q / %q", inv.ClientName, inv.District)
	}
	if inv.SaleType != model.SaleTypeNoCharge {
		// No amount label at all resolves to zero, which is a no-charge sale.
		t.Errorf("SaleType = %q, want %q", inv.SaleType, model.SaleTypeNoCharge)
	}
}

func TestSegment_Idempotent(t *testing.T) {
	var pages []string
	for i := 0; i < 6; i++ {
		pages = append(pages, fmt.Sprintf(
			"Orden de Transporte: TRP-%03d\nFletero: F%d\nNº 00%d-001\nSeñor(es): Cliente %d\nTOTAL A PAGAR: %d00\n",
			i/2, i, i, i%3, i+1,
		))
	}

	first := New().Segment(pages)
	second := New().Segment(pages)

	if !reflect.DeepEqual(first, second) {
		t.Error("segmentation is not reproducible for identical input")
	}
}

func TestSegment_EveryOrderHasNumberAndPage(t *testing.T) {
	pages := []string{
		"Orden de Transporte: TRP-001\n",
		"Nº 001-001\nTOTAL A PAGAR: 10\n",
		"Orden de Transporte: TRP-002\nNº 002-001\n",
	}

	for _, order := range New().Segment(pages).Orders {
		if order.OrderNumber == "" {
			t.Error("order with empty number emitted")
		}
		if order.PageCount() == 0 {
			t.Errorf("order %s has no pages", order.OrderNumber)
		}
	}
}
