package order

import "time"

const (
	// MinProductionTime is the handling window applied when a product
	// needs no production at all (ready stock): picking and packing still
	// take a day.
	MinProductionTime = 24 * time.Hour

	// ShippingBuffer is the fixed transit window between production
	// completing and the order arriving.
	ShippingBuffer = 72 * time.Hour
)

// Fulfillment is the estimated production and delivery timeline for an
// order, computed once at placement from a single reference time.
type Fulfillment struct {
	ProductionComplete time.Time
	ExpectedDelivery   time.Time
}

// EstimateFulfillment computes the fulfillment timeline. Ready-stock
// products carry zero production hours, so their window collapses to the
// one-day floor plus shipping.
func EstimateFulfillment(now time.Time, productionHours, quantity int) Fulfillment {
	production := time.Duration(productionHours*quantity) * time.Hour
	if production == 0 {
		production = MinProductionTime
	}

	complete := now.Add(production)
	return Fulfillment{
		ProductionComplete: complete,
		ExpectedDelivery:   complete.Add(ShippingBuffer),
	}
}
