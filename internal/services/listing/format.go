package listing

import "strconv"

// FormatCoins renders a coin amount the way the auction house shows it:
// millions as "2.5m", thousands as "1.5k", anything smaller as an integer.
func FormatCoins(amount int64) string {
	switch {
	case amount >= 1_000_000:
		return strconv.FormatFloat(float64(amount)/1e6, 'f', 1, 64) + "m"
	case amount >= 1_000:
		return strconv.FormatFloat(float64(amount)/1e3, 'f', 1, 64) + "k"
	default:
		return strconv.FormatInt(amount, 10)
	}
}
