package payment

// Currency a payment method is denominated in.
type Currency string

const (
	CurrencyTK  Currency = "TK"
	CurrencyUSD Currency = "USD"
)

type Method string

const (
	MethodBkash   Method = "Bkash"
	MethodNagad   Method = "Nagad"
	MethodBinance Method = "Binance"
)

// MethodConfig describes one payout method: its preset withdrawal amounts
// with their fixed gem costs (index-aligned, ascending) and the gem rate
// applied to custom amounts.
type MethodConfig struct {
	Currency      Currency
	PresetAmounts []float64
	PresetGems    []int
	CustomGemRate int
}

// TK custom amounts are charged per started block of this many taka.
const tkBlockSize = 500

var methodConfigs = map[Method]MethodConfig{
	MethodBkash: {
		Currency:      CurrencyTK,
		PresetAmounts: []float64{500, 1000, 1500},
		PresetGems:    []int{29, 49, 79},
		CustomGemRate: 50,
	},
	MethodNagad: {
		Currency:      CurrencyTK,
		PresetAmounts: []float64{500, 1000, 1500},
		PresetGems:    []int{29, 49, 79},
		CustomGemRate: 50,
	},
	MethodBinance: {
		Currency:      CurrencyUSD,
		PresetAmounts: []float64{5, 10, 15},
		PresetGems:    []int{58, 100, 150},
		CustomGemRate: 10,
	},
}

var methodOrder = []Method{MethodBkash, MethodNagad, MethodBinance}

func Lookup(m Method) (MethodConfig, bool) {
	cfg, ok := methodConfigs[m]
	return cfg, ok
}

// Methods returns the supported payout methods in display order.
func Methods() []Method {
	out := make([]Method, len(methodOrder))
	copy(out, methodOrder)
	return out
}

// AccountLabel is the display label of the destination field for a method.
func AccountLabel(m Method) string {
	if m == MethodBinance {
		return "Binance Pay ID"
	}
	return "Account Number"
}
