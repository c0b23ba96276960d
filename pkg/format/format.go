package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money renders a currency amount as "$1,234.50".
func Money(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	numStr := d.StringFixed(2)

	isNegative := strings.HasPrefix(numStr, "-")
	numStr = strings.TrimPrefix(numStr, "-")

	parts := strings.Split(numStr, ".")
	integerPart := parts[0]
	decimalPart := "." + parts[1]

	var out strings.Builder

	if isNegative {
		out.WriteString("-")
	}
	out.WriteString("$")

	length := len(integerPart)

	start := length % 3
	if start == 0 {
		start = 3
	}

	out.WriteString(integerPart[:start])

	for i := start; i < length; i += 3 {
		out.WriteString(",")
		out.WriteString(integerPart[i : i+3])
	}

	return out.String() + decimalPart
}

// Points renders a loyalty point count with its unit.
func Points(points int64) string {
	if points == 1 {
		return "1 point"
	}

	return strconv.FormatInt(points, 10) + " points"
}
