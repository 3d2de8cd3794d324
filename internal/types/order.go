// README: Order classification shared by pricing and quoting.
package types

import (
	"fmt"
	"strings"
)

// OrderClass selects the pricing tier for a delivery.
type OrderClass string

const (
	OrderClassRegular OrderClass = "regular"
	OrderClassBulk    OrderClass = "bulk"
)

// ParseOrderClass accepts the class case-insensitively. An empty value
// defaults to regular; anything else unknown is rejected.
func ParseOrderClass(s string) (OrderClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(OrderClassRegular):
		return OrderClassRegular, nil
	case string(OrderClassBulk):
		return OrderClassBulk, nil
	default:
		return "", fmt.Errorf("unknown order class %q", s)
	}
}

func (c OrderClass) Valid() bool {
	return c == OrderClassRegular || c == OrderClassBulk
}
