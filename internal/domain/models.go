package domain

import "time"

// Product товар каталога. Каталог неизменяемый: записи создаются один раз
// при загрузке и дальше не мутируются.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // smallest currency unit (IDR)
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	IsNew       bool   `json:"is_new,omitempty"`
}

// Valid базовая проверка записи каталога
func (p Product) Valid() bool {
	return p.ID > 0 && p.Name != "" && p.Price >= 0
}

// Category именованная группа товаров, порядок товаров фиксирован
type Category struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// CartItem позиция корзины. Price — снимок цены на момент добавления,
// дальнейшие изменения каталога на него не влияют.
type CartItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int64  `json:"quantity"`
}

// Valid инвариант позиции: ссылка на товар, имя, цена, количество 1..999
func (it CartItem) Valid() bool {
	return it.ProductID > 0 && it.Name != "" && it.Price >= 0 &&
		it.Quantity >= 1 && it.Quantity <= 999
}

// Subtotal стоимость позиции с учётом количества
func (it CartItem) Subtotal() int64 {
	return it.Price * it.Quantity
}

// CustomerInfo данные покупателя на время оформления заказа
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes,omitempty"`
}

// Order запись об отправленном заказе
type Order struct {
	ID        int64        `json:"id"`
	Reference string       `json:"reference"`
	Customer  CustomerInfo `json:"customer"`
	Items     []CartItem   `json:"items"`
	Total     int64        `json:"total"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"created_at"`
}
