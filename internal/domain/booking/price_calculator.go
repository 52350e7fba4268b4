package booking

type PriceBreakdown struct {
	Base     Money
	Taxes    Money
	Fees     Money
	Total    Money
	Discount Money
}

type PriceCalculator interface {
	Calculate(nights, rooms int, discount Money) PriceBreakdown
}

type DefaultPriceCalculator struct {
	RatePerNightCents int64
	TaxRateBps        int64
	ServiceFeeBps     int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		RatePerNightCents: 10000, // 100.00 per room per night
		TaxRateBps:        1000,  // 10%
		ServiceFeeBps:     500,   // 5%
	}
}

func NewPriceCalculator(ratePerNightCents, taxRateBps, serviceFeeBps int64) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		RatePerNightCents: ratePerNightCents,
		TaxRateBps:        taxRateBps,
		ServiceFeeBps:     serviceFeeBps,
	}
}

func (pc *DefaultPriceCalculator) Calculate(nights, rooms int, discount Money) PriceBreakdown {
	if discount.Cents() < 0 {
		discount = Money{}
	}
	gross := MoneyFromCents(pc.RatePerNightCents).Times(nights).Times(rooms)
	base := gross.Sub(discount)
	taxes := base.MulBasisPoints(pc.TaxRateBps)
	fees := base.MulBasisPoints(pc.ServiceFeeBps)

	return PriceBreakdown{
		Base:     base,
		Taxes:    taxes,
		Fees:     fees,
		Total:    base.Add(taxes).Add(fees),
		Discount: discount,
	}
}
