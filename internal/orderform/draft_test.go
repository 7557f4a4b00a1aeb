package orderform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor_shop/internal/models"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()

	require.Len(t, d.Lines, len(models.ItemTypes))
	for i, kind := range models.ItemTypes {
		assert.Equal(t, kind, d.Lines[i].Kind)
		assert.Equal(t, 0, d.Lines[i].Quantity)
		assert.Equal(t, models.ItemNotStarted, d.Lines[i].Status)
	}
	assert.Equal(t, models.PaymentUnpaid, d.PaymentStatus)
	assert.Equal(t, 0.0, d.AmountPaid)
	assert.Equal(t, 0.0, d.Total())

	// New orders default to a week out.
	expected := time.Now().AddDate(0, 0, 7)
	assert.WithinDuration(t, expected, d.DueDate, time.Minute)
}

func TestTotalRecomputesFromLines(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, 0.0, d.Total())

	d.SetItemQuantity(0, 2)
	d.SetItemPrice(0, 500)
	assert.Equal(t, 1000.0, d.Total())

	d.SetItemQuantity(1, 1)
	d.SetItemPrice(1, 700)
	assert.Equal(t, 1700.0, d.Total())

	// Zeroing a quantity removes its contribution entirely.
	d.SetItemQuantity(0, 0)
	assert.Equal(t, 700.0, d.Total())
}

func TestSetItemQuantityClampsNegative(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, -5)
	assert.Equal(t, 0, d.Lines[0].Quantity)
}

func TestAddItemQuantityClampsAtZero(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, 1)
	d.AddItemQuantity(0, -1)
	assert.Equal(t, 0, d.Lines[0].Quantity)
	d.AddItemQuantity(0, -1)
	assert.Equal(t, 0, d.Lines[0].Quantity)
	d.AddItemQuantity(0, 3)
	assert.Equal(t, 3, d.Lines[0].Quantity)
}

func TestSetItemPriceClampsNegative(t *testing.T) {
	d := NewDraft()
	d.SetItemPrice(0, -100)
	assert.Equal(t, 0.0, d.Lines[0].Price)
}

func TestSettersIgnoreOutOfRangeIndex(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(-1, 5)
	d.SetItemQuantity(len(d.Lines), 5)
	d.SetItemPrice(99, 10)
	d.SetItemStatus(99, models.ItemCompleted)
	assert.Equal(t, 0.0, d.Total())
}

func TestSetItemStatusAllowsAnyTransition(t *testing.T) {
	d := NewDraft()
	d.SetItemStatus(0, models.ItemDelivered)
	assert.Equal(t, models.ItemDelivered, d.Lines[0].Status)
	// Going backwards is legal too.
	d.SetItemStatus(0, models.ItemNotStarted)
	assert.Equal(t, models.ItemNotStarted, d.Lines[0].Status)
}

func TestSetAmountPaidClampsIntoRange(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, 2)
	d.SetItemPrice(0, 500)

	d.SetAmountPaid(-50)
	assert.Equal(t, 0.0, d.AmountPaid)
	assert.Equal(t, models.PaymentUnpaid, d.PaymentStatus)

	d.SetAmountPaid(5000)
	assert.Equal(t, 1000.0, d.AmountPaid)
	assert.Equal(t, models.PaymentPaid, d.PaymentStatus)
}

func TestSetAmountPaidDerivesStatus(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, 2)
	d.SetItemPrice(0, 500)

	d.SetAmountPaid(0)
	assert.Equal(t, models.PaymentUnpaid, d.PaymentStatus)

	d.SetAmountPaid(400)
	assert.Equal(t, models.PaymentPartial, d.PaymentStatus)

	d.SetAmountPaid(1000)
	assert.Equal(t, models.PaymentPaid, d.PaymentStatus)
}

func TestSetAmountPaidOnEmptyOrderStaysUnpaid(t *testing.T) {
	d := NewDraft()
	d.SetAmountPaid(250)
	assert.Equal(t, 0.0, d.AmountPaid)
	assert.Equal(t, models.PaymentUnpaid, d.PaymentStatus)
}

func TestSetPaymentStatusTransitions(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, 2)
	d.SetItemPrice(0, 500)
	d.SetAmountPaid(300)

	// partial_payment leaves the amount for the caller to adjust.
	d.SetPaymentStatus(models.PaymentPartial)
	assert.Equal(t, 300.0, d.AmountPaid)

	d.SetPaymentStatus(models.PaymentPaid)
	assert.Equal(t, 1000.0, d.AmountPaid)

	d.SetPaymentStatus(models.PaymentUnpaid)
	assert.Equal(t, 0.0, d.AmountPaid)
}

func TestSetPaymentStatusPaidIsIdempotent(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(1, 3)
	d.SetItemPrice(1, 700)

	d.SetPaymentStatus(models.PaymentPaid)
	first := d.AmountPaid
	d.SetPaymentStatus(models.PaymentPaid)
	assert.Equal(t, first, d.AmountPaid)
	assert.Equal(t, 2100.0, d.AmountPaid)
}

func TestItemEditsDoNotReclampAmountPaid(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, 2)
	d.SetItemPrice(0, 500)
	d.SetAmountPaid(1000)
	require.Equal(t, models.PaymentPaid, d.PaymentStatus)

	// Shrinking the order afterwards leaves the stale amount in place;
	// only the pending figure goes negative.
	d.SetItemQuantity(0, 1)
	assert.Equal(t, 1000.0, d.AmountPaid)
	assert.Equal(t, 500.0, d.Total())
	assert.Equal(t, -500.0, d.Pending())
}

func TestFinalizeDropsZeroQuantityLines(t *testing.T) {
	d := NewDraft()
	order, items := d.Finalize()
	assert.Empty(t, items)
	assert.Equal(t, 0.0, order.TotalAmount)
}

func TestFinalizeDoesNotMutateDraft(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, 1)
	d.SetItemPrice(0, 500)

	d.Finalize()
	assert.Equal(t, 1, d.Lines[0].Quantity)
	assert.Len(t, d.Lines, len(models.ItemTypes))
}

func TestFullOrderScenario(t *testing.T) {
	d := NewDraft()
	d.SetItemQuantity(0, 2) // shirts
	d.SetItemPrice(0, 500)
	d.SetItemQuantity(1, 1) // pants
	d.SetItemPrice(1, 700)
	d.SetItemQuantity(2, 0) // other stays empty
	d.SetItemPrice(2, 300)

	require.Equal(t, 1700.0, d.Total())

	d.SetAmountPaid(1700)
	assert.Equal(t, models.PaymentPaid, d.PaymentStatus)
	assert.Equal(t, 0.0, d.Pending())

	order, items := d.Finalize()
	require.Len(t, items, 2)
	assert.Equal(t, string(models.ItemShirt), items[0].ItemType)
	assert.Equal(t, string(models.ItemPants), items[1].ItemType)
	assert.Equal(t, 1700.0, order.TotalAmount)
	assert.Equal(t, 1700.0, order.AmountPaid)
	assert.Equal(t, string(models.PaymentPaid), order.PaymentStatus)
}

func TestFromOrderRebuildsSlots(t *testing.T) {
	notes := "rush job"
	due := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	order := &models.Order{
		DueDate:       due,
		TotalAmount:   700,
		AmountPaid:    200,
		PaymentStatus: string(models.PaymentPartial),
		Notes:         &notes,
		Items: []models.OrderItem{
			{ItemType: string(models.ItemPants), Quantity: 1, Price: 700, Status: string(models.ItemInProgress)},
		},
	}

	d := FromOrder(order)
	require.Len(t, d.Lines, len(models.ItemTypes))

	// Missing kinds get zero slots, present kinds carry over.
	assert.Equal(t, 0, d.Lines[0].Quantity)
	assert.Equal(t, 1, d.Lines[1].Quantity)
	assert.Equal(t, 700.0, d.Lines[1].Price)
	assert.Equal(t, models.ItemInProgress, d.Lines[1].Status)
	assert.Equal(t, 0, d.Lines[2].Quantity)

	assert.Equal(t, due, d.DueDate)
	assert.Equal(t, 200.0, d.AmountPaid)
	assert.Equal(t, models.PaymentPartial, d.PaymentStatus)
	assert.Equal(t, "rush job", d.Notes)
	assert.Equal(t, 700.0, d.Total())
}

func TestNewDraftWithKindsGeneralizes(t *testing.T) {
	kinds := []models.ItemType{"kurta", "sherwani"}
	d := NewDraftWithKinds(kinds)
	require.Len(t, d.Lines, 2)

	d.SetItemQuantity(0, 1)
	d.SetItemPrice(0, 1200)
	_, items := d.Finalize()
	require.Len(t, items, 1)
	assert.Equal(t, "kurta", items[0].ItemType)
}
