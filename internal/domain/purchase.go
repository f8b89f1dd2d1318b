package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	ID      uuid.UUID
	OwnerID string
	Items   []CartItem
	Total   Money
	Summary string

	CreatedAt time.Time
}

// OrderSummary renders the human readable order sent to the store over WhatsApp.
func OrderSummary(customer string, cart Cart) string {
	var b strings.Builder

	b.WriteString("Olá! Gostaria de fazer o seguinte pedido")
	if customer != "" {
		fmt.Fprintf(&b, " (%s)", customer)
	}
	b.WriteString(":\n\n")

	for _, item := range cart.Items {
		fmt.Fprintf(&b, "- %dx %s", item.Quantity, item.Name)
		if item.Category != "" {
			fmt.Fprintf(&b, " [%s]", item.Category)
		}
		fmt.Fprintf(&b, ": R$ %s\n", item.Price.Mul(item.Quantity).Amount.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nTotal: R$ %s", cart.Total().Amount.StringFixed(2))
	return b.String()
}
