package services

import (
	"math"
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// StatusCounts is the per-status breakdown of a set of orders. Today counts
// orders whose updatedAt falls on the current local calendar day.
type StatusCounts struct {
	Total       int
	Pending     int
	Paid        int
	Shipped     int
	Delivered   int
	Undelivered int
	Cancelled   int
	Today       int
}

// RiderPerformance summarizes a rider's assigned orders.
type RiderPerformance struct {
	TotalAssigned int
	Delivered     int
	DeliveryRate  float64
}

// MonthlySales is one month of the revenue rollup. Month is 1..12.
type MonthlySales struct {
	Month int
	Total kernel.Money
	Count int
}

// Dashboard reduces order collections into the admin and rider projections.
// Calendar boundaries (today, months) are evaluated in location.
type Dashboard struct {
	location *time.Location
}

// NewDashboard uses UTC when location is nil.
func NewDashboard(location *time.Location) Dashboard {
	if location == nil {
		location = time.UTC
	}
	return Dashboard{location: location}
}

// Counts tallies orders by status.
func (d Dashboard) Counts(orders []*order.Order, now time.Time) StatusCounts {
	start, end := d.dayBounds(now)

	var c StatusCounts
	for _, o := range orders {
		c.Total++
		switch o.Status() {
		case order.Pending:
			c.Pending++
		case order.Paid:
			c.Paid++
		case order.Shipped:
			c.Shipped++
		case order.Delivered:
			c.Delivered++
		case order.Undelivered:
			c.Undelivered++
		case order.Cancelled:
			c.Cancelled++
		}

		if updated := o.UpdatedAt(); !updated.Before(start) && updated.Before(end) {
			c.Today++
		}
	}
	return c
}

// RiderPerformance computes the delivery rate over the orders assigned to a rider.
func (d Dashboard) RiderPerformance(assigned []*order.Order) RiderPerformance {
	delivered := 0
	for _, o := range assigned {
		if o.Status() == order.Delivered {
			delivered++
		}
	}
	return RiderPerformance{
		TotalAssigned: len(assigned),
		Delivered:     delivered,
		DeliveryRate:  DeliveryRate(delivered, len(assigned)),
	}
}

// DeliveryRate is delivered / totalAssigned * 100 rounded to two decimals,
// and 0 when nothing was assigned.
func DeliveryRate(delivered, totalAssigned int) float64 {
	if totalAssigned <= 0 {
		return 0
	}
	return math.Round(float64(delivered)*10000/float64(totalAssigned)) / 100
}

// MonthlySales rolls up revenue for year by creation month. Only paid,
// shipped and delivered orders count. The result always has 12 entries,
// January first, zero-filled.
func (d Dashboard) MonthlySales(orders []*order.Order, year int) []MonthlySales {
	months := make([]MonthlySales, 12)
	for i := range months {
		months[i] = MonthlySales{Month: i + 1, Total: kernel.ZeroMoney}
	}

	for _, o := range orders {
		if !o.Status().CountsAsRevenue() {
			continue
		}
		created := o.CreatedAt().In(d.location)
		if created.Year() != year {
			continue
		}
		m := &months[created.Month()-1]
		m.Total = m.Total.Add(o.Pricing().TotalPrice)
		m.Count++
	}
	return months
}

// RecentOrders returns up to limit orders, most recently updated first.
func RecentOrders(orders []*order.Order, limit int) []*order.Order {
	sorted := append([]*order.Order(nil), orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt().After(sorted[j].UpdatedAt())
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Year returns the calendar year of now in the dashboard location.
func (d Dashboard) Year(now time.Time) int {
	return now.In(d.location).Year()
}

// YearBounds is [January 1 of year, January 1 of year+1) in the dashboard location.
func (d Dashboard) YearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, d.location)
	return start, start.AddDate(1, 0, 0)
}

func (d Dashboard) dayBounds(now time.Time) (time.Time, time.Time) {
	local := now.In(d.location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, d.location)
	return start, start.AddDate(0, 0, 1)
}
