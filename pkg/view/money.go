package view

import "fmt"

// Money formats a catalog price the way the shop displays it,
// e.g. 129.5 -> "129.50 kr".
func Money(v float64) string {
	return fmt.Sprintf("%.2f kr", v)
}
