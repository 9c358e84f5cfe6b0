package service

import (
	"net/url"
	"strings"
	"testing"

	"warung/internal/domain"
)

func TestFormatPrice_IndonesianGrouping(t *testing.T) {
	c := NewOrderComposer()
	cases := map[int64]string{
		8000:    "Rp 8.000",
		90000:   "Rp 90.000",
		1000000: "Rp 1.000.000",
		500:     "Rp 500",
	}
	for amount, want := range cases {
		if got := c.FormatPrice(amount); got != want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", amount, got, want)
		}
	}
}

func TestCompose_Message(t *testing.T) {
	c := NewOrderComposer()
	info := domain.CustomerInfo{
		Name:    "Budi Santoso",
		Address: "Jl. Sudirman No. 10",
		Phone:   "081234567890",
	}
	items := []domain.CartItem{
		{ProductID: 1, Name: "Nasi Goreng Special", Price: 45000, Quantity: 2},
	}

	msg, total, err := c.Compose(info, items)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if total != 90000 {
		t.Fatalf("total expected 90000, got %d", total)
	}
	for _, want := range []string{
		"*New Order*",
		"Name: Budi Santoso",
		"Address: Jl. Sudirman No. 10",
		"Phone: 081234567890",
		"Nasi Goreng Special x 2 - Rp 90.000",
		"*Total: Rp 90.000*",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "*Order Notes*") {
		t.Fatalf("notes section present without notes")
	}
}

func TestCompose_WithNotes(t *testing.T) {
	c := NewOrderComposer()
	msg, _, err := c.Compose(
		domain.CustomerInfo{Name: "A", Address: "B", Phone: "C", Notes: "no chili please"},
		[]domain.CartItem{{ProductID: 1, Name: "X", Price: 100, Quantity: 1}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(msg, "*Order Notes*\nno chili please") {
		t.Fatalf("notes section wrong:\n%s", msg)
	}
}

func TestCompose_SkipsMalformedItems(t *testing.T) {
	c := NewOrderComposer()
	items := []domain.CartItem{
		{ProductID: 1, Name: "Good", Price: 100, Quantity: 1},
		{ProductID: 2, Name: "", Price: 100, Quantity: 1},    // no name
		{ProductID: 3, Name: "Bad", Price: 100, Quantity: 0}, // quantity out of range
	}
	msg, total, err := c.Compose(domain.CustomerInfo{Name: "A", Address: "B", Phone: "C"}, items)
	if err != nil {
		t.Fatal(err)
	}
	if total != 100 {
		t.Fatalf("malformed items counted: %d", total)
	}
	if strings.Contains(msg, "Bad") {
		t.Fatalf("malformed item rendered:\n%s", msg)
	}
}

func TestCompose_AllMalformed(t *testing.T) {
	c := NewOrderComposer()
	_, _, err := c.Compose(
		domain.CustomerInfo{Name: "A", Address: "B", Phone: "C"},
		[]domain.CartItem{{ProductID: 1, Name: "", Price: 100, Quantity: 1}},
	)
	if err != ErrComposition {
		t.Fatalf("expected composition error, got %v", err)
	}
}

func TestDeepLink(t *testing.T) {
	c := NewOrderComposer()
	link := c.DeepLink("62895332782122", "*New Order*\n\nName: Budi")

	if !strings.HasPrefix(link, "https://wa.me/62895332782122?text=") {
		t.Fatalf("unexpected link shape: %s", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Query().Get("text"); got != "*New Order*\n\nName: Budi" {
		t.Fatalf("payload does not round-trip: %q", got)
	}
}
