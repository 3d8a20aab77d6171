package cnnum

import (
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	upperDigits = [10]rune{'零', '壹', '贰', '叁', '肆', '伍', '陆', '柒', '捌', '玖'}
	plainDigits = [10]rune{'零', '一', '二', '三', '四', '五', '六', '七', '八', '九'}

	// Units within a 4-digit group, indexed by digit position (units, tens,
	// hundreds, thousands).
	upperUnits = [4]string{"", "拾", "佰", "仟"}
	plainUnits = [4]string{"", "十", "百", "千"}

	// Units between 4-digit groups, indexed by group number counted from the
	// least-significant group.
	// Five groups cover every integer the decimal type can hold.
	groupUnits = [5]string{"", "万", "亿", "万亿", "亿亿"}

	// Currency subunits for the first four fractional digits:
	// jiao, fen, li, hao.
	fracUnits = [4]string{"角", "分", "厘", "毫"}
)

// defaultSuffix marks an exact integer amount on financial documents.
const defaultSuffix = "整"

// parse converts a float to a decimal via its shortest round-trip form.
// It reports false for NaN, infinities, and magnitudes the decimal type
// cannot hold; formatters render those as an empty string.
func parse(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// splitParts splits a decimal's plain string form into its integer and
// fractional digit runs.
func splitParts(s string) (whole, frac string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// formatInt renders a run of integer digits (no sign, no leading zeros
// except a bare "0") as Chinese numeral text using the given digit and
// in-group unit tables.
// It returns "" when every digit is zero.
//
// Digits are consumed in 4-digit groups from the most-significant end.
// A single 零 placeholder is inserted when a nonzero digit follows one or
// more zero digits, within or across group boundaries; consecutive
// placeholders are never emitted.
// In a single-group number, a tens digit of exactly 1 renders as the bare
// tens unit (10 reads 拾, not 壹拾); multi-group numbers always spell the
// digit out.
func formatInt(digits string, dig *[10]rune, units *[4]string) string {
	n := len(digits)
	groups := (n + 3) / 4

	var b strings.Builder
	emitted := false
	pendingZero := false
	for g := groups - 1; g >= 0; g-- {
		start := n - (g+1)*4
		if start < 0 {
			start = 0
		}
		grp := digits[start : n-g*4]

		groupNonzero := false
		for i := 0; i < len(grp); i++ {
			d := int(grp[i] - '0')
			pos := len(grp) - 1 - i
			if d == 0 {
				if emitted {
					pendingZero = true
				}
				continue
			}
			if pendingZero {
				b.WriteRune(dig[0])
				pendingZero = false
			}
			if groups == 1 && pos == 1 && d == 1 {
				b.WriteString(units[1])
			} else {
				b.WriteRune(dig[d])
				b.WriteString(units[pos])
			}
			emitted = true
			groupNonzero = true
		}
		if groupNonzero && g > 0 {
			b.WriteString(groupUnits[g])
		}
	}
	return b.String()
}

// formatFrac renders the first four fractional digits with their currency
// subunits, skipping zero digits.
// Unlike the integer part, the fractional part never takes a 零 placeholder.
func formatFrac(frac string) string {
	var b strings.Builder
	for i := 0; i < len(frac) && i < len(fracUnits); i++ {
		d := int(frac[i] - '0')
		if d == 0 {
			continue
		}
		b.WriteRune(upperDigits[d])
		b.WriteString(fracUnits[i])
	}
	return b.String()
}

// Price renders an amount as uppercase Chinese numeral text for financial
// documents, with the customary 整 suffix on exact integer amounts:
//
//	Price(1234567) // 壹佰贰拾叁万肆仟伍佰陆拾柒元整
//	Price(0.05)    // 伍分
//
// See [PriceWithSuffix] for control over the suffix.
func Price(amount float64) string {
	return PriceWithSuffix(amount, defaultSuffix)
}

// PriceWithSuffix is like [Price] but appends the given suffix (which may be
// empty) instead of 整 when the amount has no fractional part.
//
// A zero amount always renders as 零元整.
// Negative amounts take a 负 prefix.
// The first four fractional digits map to 角, 分, 厘, and 毫; 元 is emitted
// only when the integer part is nonzero.
// Amounts that cannot be rendered (NaN, infinities, magnitudes beyond the
// underlying decimal precision) yield an empty string.
func PriceWithSuffix(amount float64, suffix string) string {
	d, ok := parse(amount)
	if !ok {
		return ""
	}
	if d.IsZero() {
		return "零元整"
	}
	neg := d.IsNeg()
	whole, frac := splitParts(d.Abs().String())

	intText := formatInt(whole, &upperDigits, &upperUnits)
	fracText := formatFrac(frac)
	if intText == "" && fracText == "" {
		return ""
	}

	var b strings.Builder
	if neg {
		b.WriteRune('负')
	}
	if intText != "" {
		b.WriteString(intText)
		b.WriteRune('元')
	}
	switch {
	case fracText != "":
		b.WriteString(fracText)
	case intText != "":
		b.WriteString(suffix)
	}
	return b.String()
}

// Number renders a number as plain Chinese numeral text:
//
//	Number(10005) // 一万零五
//	Number(1.5)   // 一点五
//
// NaN and infinities yield an empty string.
func Number(num float64) string {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return ""
	}
	return NumberString(strconv.FormatFloat(num, 'f', -1, 64))
}

// NumberString is like [Number] but accepts a numeric string, preserving
// fractional digits exactly as written (1.50 reads 一点五零).
// Unparseable input yields an empty string.
func NumberString(s string) string {
	d, err := decimal.Parse(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	neg := d.IsNeg()
	whole, frac := splitParts(d.Abs().String())

	intText := formatInt(whole, &plainDigits, &plainUnits)
	if intText == "" {
		intText = string(plainDigits[0])
	}

	var b strings.Builder
	if neg {
		b.WriteRune('负')
	}
	b.WriteString(intText)
	if frac != "" {
		b.WriteRune('点')
		for i := 0; i < len(frac); i++ {
			b.WriteRune(plainDigits[frac[i]-'0'])
		}
	}
	return b.String()
}
