// Package sales builds the sales dashboards: per-rep totals, priority mix,
// daily and weekly series, product quantities and revenue by city.
package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"atelier/internal/city"
	"atelier/internal/domain"
	"atelier/internal/report/tally"
)

// Daily and weekly series are bucketed in Philippine time regardless of
// the configured location.
const seriesOffset = 8 * time.Hour

const (
	dailyLabelLayout = "Jan-02-2006"
	weeklyDayLayout  = "Jan 02"
)

type RepSales struct {
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Amount        float64 `json:"amount"`
	CustomerCount int     `json:"customerCount"`
}

type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DailySales struct {
	Date     string  `json:"date"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

type WeeklySales struct {
	Week     string  `json:"week"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

type ProductQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type CitySales struct {
	City   string  `json:"city"`
	Amount float64 `json:"amount"`
	Orders int     `json:"orders"`
}

type Report struct {
	Window               Window            `json:"window"`
	AvailableYears       []int             `json:"availableYears"`
	AvailableWeeks       []string          `json:"availableWeeks"`
	TotalSales           float64           `json:"totalSales"`
	SalesRepData         []RepSales        `json:"salesRepData"`
	PriorityData         []NameValue       `json:"priorityData"`
	DailySalesData       []DailySales      `json:"dailySalesData"`
	WeeklySalesData      []WeeklySales     `json:"weeklySalesData"`
	SoldQtyByProductType []ProductQuantity `json:"soldQtyByProductType"`
	SalesByCityData      []CitySales       `json:"salesByCityData"`
}

type Aggregator struct {
	loc *time.Location
}

func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{loc: loc}
}

// entry is a lead with its submission time parsed once.
type entry struct {
	lead      domain.Lead
	submitted time.Time
	dated     bool
}

func (a *Aggregator) Build(leads []domain.Lead, f Filter) Report {
	window := ResolveWindow(f, a.loc)
	entries := a.filter(leads, window)

	return Report{
		Window:               window,
		AvailableYears:       AvailableYears(leads, a.loc),
		AvailableWeeks:       AvailableWeeks(leads, f.Year, a.loc),
		TotalSales:           totalSales(entries),
		SalesRepData:         a.salesByRep(entries),
		PriorityData:         priorityMix(entries),
		DailySalesData:       dailySales(entries),
		WeeklySalesData:      weeklySales(entries),
		SoldQtyByProductType: soldByProductType(entries),
		SalesByCityData:      salesByCity(entries),
	}
}

// filter keeps leads submitted inside window. With no window at all,
// undated leads are kept for the totals but never bucketed by date.
func (a *Aggregator) filter(leads []domain.Lead, window Window) []entry {
	out := make([]entry, 0, len(leads))
	for _, l := range leads {
		t, err := domain.ParseTimestamp(l.SubmissionDateTime, a.loc)
		dated := err == nil
		if window.Kind != WindowAll && (!dated || !window.Contains(t)) {
			continue
		}
		out = append(out, entry{lead: l, submitted: t, dated: dated})
	}
	return out
}

func amountOf(l domain.Lead) decimal.Decimal {
	return decimal.NewFromFloat(l.Amount())
}

func totalSales(entries []entry) float64 {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(amountOf(e.lead))
	}
	return total.InexactFloat64()
}

type repAcc struct {
	quantity  int
	amount    decimal.Decimal
	customers map[string]struct{}
}

func (a *Aggregator) salesByRep(entries []entry) []RepSales {
	reps := tally.New[string, repAcc]()
	for _, e := range entries {
		qty := e.lead.SoldQuantity()
		amount := amountOf(e.lead)
		if qty <= 0 && !amount.IsPositive() {
			continue
		}

		day := ""
		if e.dated {
			day = e.submitted.In(a.loc).Format(time.DateOnly)
		}
		customer := e.lead.CustomerName + "|" + day

		reps.Update(e.lead.SalesRepresentative, func(acc *repAcc) {
			if acc.customers == nil {
				acc.customers = make(map[string]struct{})
			}
			acc.quantity += qty
			acc.amount = acc.amount.Add(amount)
			acc.customers[customer] = struct{}{}
		})
	}

	out := make([]RepSales, 0, reps.Len())
	reps.Each(func(name string, acc repAcc) {
		out = append(out, RepSales{
			Name:          name,
			Quantity:      acc.quantity,
			Amount:        acc.amount.InexactFloat64(),
			CustomerCount: len(acc.customers),
		})
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	return out
}

func priorityMix(entries []entry) []NameValue {
	sums := tally.New[string, int]()
	for _, e := range entries {
		qty := e.lead.SoldQuantity()
		sums.Update(e.lead.Priority(), func(v *int) { *v += qty })
	}

	out := []NameValue{}
	sums.Each(func(name string, v int) {
		if v > 0 {
			out = append(out, NameValue{Name: name, Value: v})
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}

type periodAcc struct {
	start    time.Time
	quantity int
	amount   decimal.Decimal
}

// shifted moves an instant to UTC+8 wall time, expressed in UTC.
func shifted(t time.Time) time.Time {
	return t.UTC().Add(seriesOffset)
}

func series(entries []entry, bucket func(time.Time) time.Time) []periodAcc {
	periods := tally.New[time.Time, periodAcc]()
	for _, e := range entries {
		if !e.dated {
			continue
		}
		start := bucket(shifted(e.submitted))
		qty := e.lead.SoldQuantity()
		amount := amountOf(e.lead)
		periods.Update(start, func(acc *periodAcc) {
			acc.start = start
			acc.quantity += qty
			acc.amount = acc.amount.Add(amount)
		})
	}

	out := make([]periodAcc, 0, periods.Len())
	periods.Each(func(_ time.Time, acc periodAcc) {
		if acc.quantity > 0 || acc.amount.IsPositive() {
			out = append(out, acc)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].start.Before(out[j].start) })
	return out
}

func dailySales(entries []entry) []DailySales {
	periods := series(entries, startOfDay)
	out := make([]DailySales, 0, len(periods))
	for _, p := range periods {
		out = append(out, DailySales{
			Date:     p.start.Format(dailyLabelLayout),
			Quantity: p.quantity,
			Amount:   p.amount.InexactFloat64(),
		})
	}
	return out
}

func weeklySales(entries []entry) []WeeklySales {
	periods := series(entries, WeekStart)
	out := make([]WeeklySales, 0, len(periods))
	for _, p := range periods {
		end := p.start.AddDate(0, 0, 6)
		out = append(out, WeeklySales{
			Week:     p.start.Format(weeklyDayLayout) + " - " + end.Format(weeklyDayLayout),
			Quantity: p.quantity,
			Amount:   p.amount.InexactFloat64(),
		})
	}
	return out
}

func soldByProductType(entries []entry) []ProductQuantity {
	sums := tally.New[string, int]()
	for _, e := range entries {
		for _, o := range e.lead.Orders {
			if o.ProductType == domain.ProductPatches {
				continue
			}
			qty := o.Quantity
			sums.Update(o.ProductType, func(v *int) { *v += qty })
		}
	}

	out := make([]ProductQuantity, 0, sums.Len())
	sums.Each(func(name string, v int) {
		out = append(out, ProductQuantity{Name: name, Quantity: v})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type cityAcc struct {
	amount decimal.Decimal
	orders int
}

func salesByCity(entries []entry) []CitySales {
	cities := tally.New[string, cityAcc]()
	for _, e := range entries {
		amount := amountOf(e.lead)
		if e.lead.City == "" || !amount.IsPositive() {
			continue
		}
		name := city.Normalize(e.lead.City)
		if name == "" {
			continue
		}
		cities.Update(name, func(acc *cityAcc) {
			acc.amount = acc.amount.Add(amount)
			acc.orders++
		})
	}

	out := make([]CitySales, 0, cities.Len())
	cities.Each(func(name string, acc cityAcc) {
		out = append(out, CitySales{City: name, Amount: acc.amount.InexactFloat64(), Orders: acc.orders})
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}
