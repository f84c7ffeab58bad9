package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"atelier/internal/commons"
)

const (
	programmingLogoFee     = 500
	programmingBackTextFee = 300
	programmingFeeMaxQty   = 3
)

type Resolver struct {
	config *Config
}

func NewResolver(config *Config) *Resolver {
	return &Resolver{config: config}
}

// ResolveGroup returns the price group of a product type, or false when
// the product is not priced.
func (r *Resolver) ResolveGroup(productType string) (Group, bool) {
	group, ok := r.config.ProductGroups[productType]
	return group, ok
}

func (r *Resolver) findTier(productType string, quantity int, embroidery Embroidery) (Tier, bool) {
	group, ok := r.ResolveGroup(productType)
	if !ok {
		return Tier{}, false
	}
	for _, t := range r.config.Tiers[group][embroidery] {
		if t.Contains(quantity) {
			return t, true
		}
	}
	return Tier{}, false
}

// ResolveUnitPrice returns the tier price for quantity, 0 for unknown
// products or quantities no tier covers.
func (r *Resolver) ResolveUnitPrice(productType string, quantity int, embroidery Embroidery) float64 {
	t, ok := r.findTier(productType, quantity, embroidery)
	if !ok {
		return 0
	}
	return t.Price
}

// ResolveTierLabel describes the tier quantity falls in, "" when none does.
func (r *Resolver) ResolveTierLabel(productType string, quantity int, embroidery Embroidery) string {
	t, ok := r.findTier(productType, quantity, embroidery)
	if !ok {
		return ""
	}
	return TierLabel(t)
}

func TierLabel(t Tier) string {
	switch {
	case t.Max == nil:
		return fmt.Sprintf("%d pcs & above", t.Min)
	case *t.Max == t.Min:
		return fmt.Sprintf("%d pc(s)", t.Min)
	default:
		return fmt.Sprintf("%d–%d pcs", t.Min, *t.Max)
	}
}

type ProgrammingFees struct {
	LogoFee     float64 `json:"logoFee"`
	BackTextFee float64 `json:"backTextFee"`
}

// ResolveProgrammingFees charges programming only for runs of 1 to 3 pieces.
func ResolveProgrammingFees(quantity int, embroidery Embroidery) ProgrammingFees {
	if quantity < 1 || quantity > programmingFeeMaxQty {
		return ProgrammingFees{}
	}
	fees := ProgrammingFees{LogoFee: programmingLogoFee}
	if embroidery == EmbroideryLogoAndText {
		fees.BackTextFee = programmingBackTextFee
	}
	return fees
}

type Quote struct {
	ProductType    string          `json:"productType"`
	Group          Group           `json:"group,omitempty"`
	Quantity       int             `json:"quantity"`
	Embroidery     Embroidery      `json:"embroidery"`
	UnitPrice      float64         `json:"unitPrice"`
	TierLabel      string          `json:"tierLabel"`
	Fees           ProgrammingFees `json:"fees"`
	Total          decimal.Decimal `json:"total"`
	FormattedTotal string          `json:"formattedTotal"`
}

// Quote prices a full run: unit price times quantity plus programming fees.
func (r *Resolver) Quote(productType string, quantity int, embroidery Embroidery) Quote {
	group, _ := r.ResolveGroup(productType)
	unit := r.ResolveUnitPrice(productType, quantity, embroidery)
	fees := ResolveProgrammingFees(quantity, embroidery)

	total := decimal.NewFromFloat(unit).
		Mul(decimal.NewFromInt(int64(quantity))).
		Add(decimal.NewFromFloat(fees.LogoFee)).
		Add(decimal.NewFromFloat(fees.BackTextFee))

	return Quote{
		ProductType:    productType,
		Group:          group,
		Quantity:       quantity,
		Embroidery:     embroidery,
		UnitPrice:      unit,
		TierLabel:      r.ResolveTierLabel(productType, quantity, embroidery),
		Fees:           fees,
		Total:          total,
		FormattedTotal: commons.FormatPeso(total),
	}
}
