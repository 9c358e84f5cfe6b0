package service

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"warung/internal/domain"
)

// ErrComposition возникает, когда из корзины не удалось собрать ни одной строки заказа
var ErrComposition = errors.New("failed to compose order message")

// OrderComposer детерминированно собирает текст исходящего заказа из данных
// покупателя и снимка корзины
type OrderComposer struct {
	printer *message.Printer
}

func NewOrderComposer() *OrderComposer {
	return &OrderComposer{printer: message.NewPrinter(language.Indonesian)}
}

// FormatPrice целое в рупиях с локальной группировкой разрядов
func (c *OrderComposer) FormatPrice(amount int64) string {
	return c.printer.Sprintf("Rp %d", amount)
}

// Compose строит сообщение заказа. Стоимость каждой строки пересчитывается
// из снимка цены и количества, итог — сумма этих пересчётов; позиции,
// нарушающие инвариант, пропускаются с предупреждением.
func (c *OrderComposer) Compose(info domain.CustomerInfo, items []domain.CartItem) (string, int64, error) {
	var b strings.Builder
	b.WriteString("*New Order*\n\n")
	b.WriteString("*Customer Details*\n")
	fmt.Fprintf(&b, "Name: %s\n", info.Name)
	fmt.Fprintf(&b, "Address: %s\n", info.Address)
	fmt.Fprintf(&b, "Phone: %s\n\n", info.Phone)

	b.WriteString("*Order Items*\n")

	var total int64
	var lines int
	for _, it := range items {
		if !it.Valid() {
			log.Printf("order: skipping malformed cart item (product_id=%d)", it.ProductID)
			continue
		}
		lineTotal := it.Price * it.Quantity
		fmt.Fprintf(&b, "%s x %d - %s\n", it.Name, it.Quantity, c.FormatPrice(lineTotal))
		total += lineTotal
		lines++
	}
	if lines == 0 {
		return "", 0, ErrComposition
	}

	fmt.Fprintf(&b, "\n*Total: %s*", c.FormatPrice(total))

	if notes := strings.TrimSpace(info.Notes); notes != "" {
		fmt.Fprintf(&b, "\n\n*Order Notes*\n%s", notes)
	}

	return b.String(), total, nil
}

// DeepLink собирает адрес передачи заказа внешнему мессенджеру
func (c *OrderComposer) DeepLink(number, msg string) string {
	q := url.Values{"text": {msg}}
	return "https://wa.me/" + number + "?" + q.Encode()
}
