package common

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount with a euro prefix and
// thousands separators, e.g. €12,345.67.
func FormatMoney(v float64) string {
	return "€" + groupThousands(v)
}

// FormatSignedMoney formats a currency amount with an explicit sign.
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return "+€" + groupThousands(v)
	}
	return "-€" + groupThousands(-v)
}

// FormatSignedPct formats a percentage with an explicit sign.
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatPct formats a percentage without a sign.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatOptionalPct renders a nullable percentage, "N/A" when absent.
func FormatOptionalPct(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return FormatPct(*v)
}

// PctChange computes (new-old)/old*100, returning 0 when old is not
// strictly positive so displays never show NaN or Inf.
func PctChange(oldVal, newVal float64) float64 {
	if oldVal > 0 {
		return (newVal - oldVal) / oldVal * 100
	}
	return 0
}

// Sign classifies a value for positive/negative display styling.
// Zero counts as positive, matching the dashboard's class toggle.
func Sign(v float64) string {
	if v >= 0 {
		return "positive"
	}
	return "negative"
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	if len(whole) <= 3 {
		return whole + frac
	}

	var sb strings.Builder
	lead := len(whole) % 3
	if lead > 0 {
		sb.WriteString(whole[:lead])
	}
	for i := lead; i < len(whole); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(whole[i : i+3])
	}
	sb.WriteString(frac)
	return sb.String()
}
