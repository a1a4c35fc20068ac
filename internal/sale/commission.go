package sale

// CommissionFor returns the agent commission for a sale price using the
// brokerage's tiered schedule. Upper bounds are inclusive except the first
// tier, so exactly 100,000 earns 7.5%, not 10%.
//
//	< 100,000      10%
//	<= 200,000     7.5%
//	<= 500,000     6%
//	<= 1,000,000   5%
//	> 1,000,000    4%
func CommissionFor(priceSold float64) float64 {
	switch {
	case priceSold < 100000:
		return priceSold * 0.10
	case priceSold <= 200000:
		return priceSold * 0.075
	case priceSold <= 500000:
		return priceSold * 0.06
	case priceSold <= 1000000:
		return priceSold * 0.05
	default:
		return priceSold * 0.04
	}
}
