package currency

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PHP = "PHP"
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
	AUD = "AUD"
	CAD = "CAD"
	CHF = "CHF"
	CNY = "CNY"
	SGD = "SGD"
)

// Base is the currency all cached rates are expressed against.
const Base = USD

var Currencies = []string{PHP, USD, EUR, GBP, JPY, AUD, CAD, CHF, CNY, SGD}

var Names = map[string]string{
	PHP: "Philippine Peso",
	USD: "US Dollar",
	EUR: "Euro",
	GBP: "British Pound",
	JPY: "Japanese Yen",
	AUD: "Australian Dollar",
	CAD: "Canadian Dollar",
	CHF: "Swiss Franc",
	CNY: "Chinese Yuan",
	SGD: "Singapore Dollar",
}

// Rate is one row of the exchange-rate cache: how many units of the
// currency one unit of the base currency buys.
type Rate struct {
	Code      string
	Name      string
	BaseRate  decimal.Decimal
	UpdatedAt time.Time
}

// Conversion is the result of normalizing an amount into another currency.
type Conversion struct {
	Amount decimal.Decimal
	Rate   decimal.Decimal
}

// FallbackRates are approximate base-relative rates used when the rates API
// is unreachable and the cache is empty.
func FallbackRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		USD: decimal.RequireFromString("1.00"),
		PHP: decimal.RequireFromString("56.50"),
		EUR: decimal.RequireFromString("0.92"),
		GBP: decimal.RequireFromString("0.79"),
		JPY: decimal.RequireFromString("154.50"),
		AUD: decimal.RequireFromString("1.53"),
		CAD: decimal.RequireFromString("1.36"),
		CHF: decimal.RequireFromString("0.88"),
		CNY: decimal.RequireFromString("7.24"),
		SGD: decimal.RequireFromString("1.34"),
	}
}

func IsSupported(code string) bool {
	_, ok := Names[code]
	return ok
}
