package payment

import (
	"math"

	"github.com/hubcoin/miniapp/internal/apperrors"
)

// PresetGems returns the fixed gem cost of a preset withdrawal amount.
// Amounts outside the method's preset list are invalid on this path; the UI
// never produces them, but anything else reaching here fails closed.
func PresetGems(m Method, amount float64) (int, error) {
	cfg, ok := Lookup(m)
	if !ok {
		return 0, apperrors.ErrUnknownMethod
	}

	for i, preset := range cfg.PresetAmounts {
		if preset == amount {
			return cfg.PresetGems[i], nil
		}
	}

	return 0, apperrors.ErrInvalidAmount
}

// CustomGems returns the gem cost of a custom withdrawal amount. Gems are
// charged per started 500-taka block for TK methods and per started dollar
// for USD methods; fractional amounts always round the cost up. Non-positive
// amounts cost nothing and are not a valid submission candidate.
func CustomGems(m Method, amount float64) (int, error) {
	cfg, ok := Lookup(m)
	if !ok {
		return 0, apperrors.ErrUnknownMethod
	}

	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, nil
	}

	if cfg.Currency == CurrencyTK {
		return int(math.Ceil(amount/tkBlockSize)) * cfg.CustomGemRate, nil
	}
	return int(math.Ceil(amount)) * cfg.CustomGemRate, nil
}
