package domain

// Promo code table. Case-sensitive exact match, no expiry or usage
// caps; codes are a fixed marketing set.
var discountCodes = map[string]int{
	"WELCOME10": 10,
	"RURAL20":   20,
	"FIRSTTIME": 15,
}

// LookupDiscount resolves a promo code to its percent off.
func LookupDiscount(code string) (int, error) {
	pct, ok := discountCodes[code]
	if !ok {
		return 0, DiscountNotFoundError{Code: code}
	}
	return pct, nil
}
