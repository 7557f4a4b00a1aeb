package orderform

import (
	"time"

	"tailor_shop/internal/models"
)

// Line is one editable row of the order form: a garment kind with its
// quantity, unit price and work status.
type Line struct {
	Kind     models.ItemType
	Quantity int
	Price    float64
	Status   models.OrderItemStatus
}

// Draft is an order being edited. It keeps TotalAmount, AmountPaid and
// PaymentStatus consistent no matter which field is edited next. The value
// is caller-owned and single-writer; every mutator is total and clamps bad
// numeric input instead of rejecting it, so malformed form input can never
// error out of a setter.
type Draft struct {
	Lines         []Line
	DueDate       time.Time
	PaymentStatus models.PaymentStatus
	AmountPaid    float64
	Notes         string
}

const defaultDueDays = 7

// NewDraft returns a fresh form: one zero-quantity line per kind in
// models.ItemTypes, due in a week, nothing paid.
func NewDraft() *Draft {
	return NewDraftWithKinds(models.ItemTypes)
}

// NewDraftWithKinds builds a form over an arbitrary ordered kind set.
func NewDraftWithKinds(kinds []models.ItemType) *Draft {
	lines := make([]Line, len(kinds))
	for i, kind := range kinds {
		lines[i] = Line{Kind: kind, Status: models.ItemNotStarted}
	}
	return &Draft{
		Lines:         lines,
		DueDate:       time.Now().AddDate(0, 0, defaultDueDays),
		PaymentStatus: models.PaymentUnpaid,
	}
}

// FromOrder rebuilds the form for an existing order. Kinds the order has
// no row for get a zero-quantity line, so the slot layout is stable.
func FromOrder(order *models.Order) *Draft {
	d := NewDraft()
	d.DueDate = order.DueDate
	d.PaymentStatus = models.PaymentStatus(order.PaymentStatus)
	d.AmountPaid = order.AmountPaid
	if order.Notes != nil {
		d.Notes = *order.Notes
	}
	for i := range d.Lines {
		for _, item := range order.Items {
			if item.ItemType == string(d.Lines[i].Kind) {
				d.Lines[i].Quantity = item.Quantity
				d.Lines[i].Price = item.Price
				d.Lines[i].Status = models.OrderItemStatus(item.Status)
				break
			}
		}
	}
	return d
}

// Total recomputes the order total from scratch on every call. It is never
// patched incrementally, so it cannot drift from the lines.
func (d *Draft) Total() float64 {
	var total float64
	for _, line := range d.Lines {
		total += float64(line.Quantity) * line.Price
	}
	return total
}

// Pending is the amount still owed. It goes negative when lines of an
// already-paid order are edited down: item edits deliberately do not
// re-clamp AmountPaid (see SetItemQuantity).
func (d *Draft) Pending() float64 {
	return d.Total() - d.AmountPaid
}

// SetItemQuantity replaces the quantity on line i. Negative input clamps
// to zero. AmountPaid is left alone even if the new total falls below it;
// only SetAmountPaid and SetPaymentStatus reconcile the payment side.
func (d *Draft) SetItemQuantity(i, quantity int) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	d.Lines[i].Quantity = quantity
}

// AddItemQuantity is the stepper variant: it applies a delta and clamps
// the running quantity at zero.
func (d *Draft) AddItemQuantity(i, delta int) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	d.SetItemQuantity(i, d.Lines[i].Quantity+delta)
}

// SetItemPrice replaces the unit price on line i, clamped at zero.
func (d *Draft) SetItemPrice(i int, price float64) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	if price < 0 {
		price = 0
	}
	d.Lines[i].Price = price
}

// SetItemStatus replaces the work status on line i. Statuses are an
// ordered lifecycle but no ordering is enforced between them.
func (d *Draft) SetItemStatus(i int, status models.OrderItemStatus) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	d.Lines[i].Status = status
}

// SetPaymentStatus is the status-first direction of the payment sync:
// paid pulls AmountPaid up to the total, unpaid drops it to zero, and
// partial_payment leaves the amount for the caller to adjust.
func (d *Draft) SetPaymentStatus(status models.PaymentStatus) {
	d.PaymentStatus = status
	switch status {
	case models.PaymentPaid:
		d.AmountPaid = d.Total()
	case models.PaymentUnpaid:
		d.AmountPaid = 0
	}
}

// SetAmountPaid is the amount-first direction: the raw input is clamped
// into [0, Total()] and the status is derived from the clamped value.
func (d *Draft) SetAmountPaid(amount float64) {
	total := d.Total()
	if amount < 0 {
		amount = 0
	}
	if amount > total {
		amount = total
	}
	d.AmountPaid = amount

	switch {
	case amount == 0:
		d.PaymentStatus = models.PaymentUnpaid
	case amount == total:
		d.PaymentStatus = models.PaymentPaid
	default:
		d.PaymentStatus = models.PaymentPartial
	}
}

// Finalize produces the persistable shape of the form: the order scalars
// plus the complete replacement item set with zero-quantity lines dropped.
// The draft itself is not mutated, so a failed save can be retried as-is.
func (d *Draft) Finalize() (models.Order, []models.OrderItem) {
	order := models.Order{
		DueDate:       d.DueDate,
		TotalAmount:   d.Total(),
		AmountPaid:    d.AmountPaid,
		PaymentStatus: string(d.PaymentStatus),
	}
	if d.Notes != "" {
		notes := d.Notes
		order.Notes = &notes
	}

	var items []models.OrderItem
	for _, line := range d.Lines {
		if line.Quantity == 0 {
			continue
		}
		items = append(items, models.OrderItem{
			ItemType: string(line.Kind),
			Quantity: line.Quantity,
			Status:   string(line.Status),
			Price:    line.Price,
		})
	}
	return order, items
}
