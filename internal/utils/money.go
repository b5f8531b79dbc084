package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundRupees rounds an amount to whole currency units
func RoundRupees(amount float64) int64 {
	return int64(math.Round(amount))
}

// FormatAmount renders an amount without trailing decimals when it is whole
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return strconv.FormatInt(int64(amount), 10)
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatRupees renders an amount with the rupee sign and Indian digit grouping (12,34,567)
func FormatRupees(amount float64) string {
	return "₹" + GroupIndian(amount)
}

// GroupIndian groups the integer part as lakhs and crores
func GroupIndian(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	text := FormatAmount(amount)
	intPart, frac := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		intPart, frac = text[:i], text[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(groups, ",") + "," + tail + frac
}
