package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"warung/internal/domain"
	"warung/internal/ratelimit"
	"warung/internal/repository"
	"warung/internal/validate"
)

var (
	ErrRateLimited = errors.New("too many order attempts")
	ErrEmptyCart   = errors.New("cart is empty")
)

// ValidationError перечисляет все непрошедшие поля одной попытки
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// пределы полей формы заказа
const (
	maxNameLen    = 50
	maxAddressLen = 200
	maxPhoneLen   = 20
	maxNotesLen   = 500
	minAddressLen = 10
)

// ключ лимитера для отправки заказа
const submissionKey = "order_submission"

// CheckoutInput сырые значения полей формы
type CheckoutInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// CheckoutResult успешный исход: запись заказа, текст и deep link
type CheckoutResult struct {
	Order       *domain.Order `json:"order"`
	Message     string        `json:"message"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// CheckoutService оркестрирует одну попытку оформления: лимит попыток,
// валидация полей, проверка корзины, сборка сообщения, атомарная фиксация
type CheckoutService struct {
	cart     repository.CartRepository
	orders   repository.OrderRepository
	tx       repository.TxManager
	limiter  *ratelimit.Limiter
	composer *OrderComposer
	waNumber string
}

func NewCheckoutService(
	cart repository.CartRepository,
	orders repository.OrderRepository,
	tx repository.TxManager,
	limiter *ratelimit.Limiter,
	composer *OrderComposer,
	waNumber string,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		orders:   orders,
		tx:       tx,
		limiter:  limiter,
		composer: composer,
		waNumber: waNumber,
	}
}

// Submit проводит попытку оформления заказа. До успешного завершения
// последнего шага корзина и архив не меняются; отклонённая попытка оставляет
// всё состояние нетронутым.
func (s *CheckoutService) Submit(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if !s.limiter.Allow(submissionKey) {
		return nil, ErrRateLimited
	}

	fields := make(map[string]string)

	name := validate.Field(in.Name, validate.KindName, maxNameLen)
	if !name.Valid {
		fields["name"] = name.Err
	}

	address := validate.Field(in.Address, validate.KindNone, maxAddressLen)
	if address.Valid && utf8.RuneCountInString(address.Value) < minAddressLen {
		address = validate.Result{Err: "address must be at least 10 characters long"}
	}
	if !address.Valid {
		fields["address"] = address.Err
	}

	phone := validate.Field(in.Phone, validate.KindPhone, maxPhoneLen)
	if !phone.Valid {
		fields["phone"] = phone.Err
	}

	// notes optional: validated only when present
	var notes string
	if strings.TrimSpace(in.Notes) != "" {
		res := validate.Field(in.Notes, validate.KindNone, maxNotesLen)
		if !res.Valid {
			fields["notes"] = res.Err
		} else {
			notes = res.Value
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	info := domain.CustomerInfo{
		Name:    name.Value,
		Address: address.Value,
		Phone:   phone.Value,
		Notes:   notes,
	}

	var created *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		items, err := s.cart.List(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}
		for _, it := range items {
			if !it.Valid() {
				return &ValidationError{Fields: map[string]string{"cart": "invalid items found in cart"}}
			}
		}

		msg, total, err := s.composer.Compose(info, items)
		if err != nil {
			return err
		}

		o := domain.Order{
			Reference: uuid.NewString(),
			Customer:  info,
			Items:     items,
			Total:     total,
			Message:   msg,
		}
		if err := s.orders.Create(ctx, &o); err != nil {
			return err
		}
		if err := s.cart.Clear(ctx); err != nil {
			return err
		}
		created = &o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Order:       created,
		Message:     created.Message,
		WhatsAppURL: s.composer.DeepLink(s.waNumber, created.Message),
	}, nil
}

// RetryAfter сколько ждать после отказа лимитера
func (s *CheckoutService) RetryAfter() time.Duration {
	return s.limiter.Window()
}

// GetOrder возвращает запись архива по id
func (s *CheckoutService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}
