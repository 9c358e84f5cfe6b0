package validate

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind вид поля для проверки формата
type Kind string

const (
	KindNone     Kind = ""
	KindName     Kind = "name"
	KindPhone    Kind = "phone"
	KindQuantity Kind = "quantity"
	KindID       Kind = "id"
)

var patterns = map[Kind]*regexp.Regexp{
	KindName:     regexp.MustCompile(`^[a-zA-Z\s\x{00C0}-\x{017F}]{2,50}$`),
	KindPhone:    regexp.MustCompile(`^(\+62|62|0)[0-9]{8,13}$`),
	KindQuantity: regexp.MustCompile(`^[1-9][0-9]{0,2}$`),
	KindID:       regexp.MustCompile(`^[1-9][0-9]*$`),
}

// Result результат санитизации и проверки текстового поля.
// Value заполнено только при Valid == true.
type Result struct {
	Valid bool
	Value string
	Err   string
}

// NumberResult результат числовой проверки
type NumberResult struct {
	Valid bool
	Value int64
	Err   string
}

// Sanitize обрезает пробелы и экранирует значимую разметку, чтобы значение
// всегда отображалось как буквальный текст
func Sanitize(raw string) string {
	return html.EscapeString(strings.TrimSpace(raw))
}

// Matches проверяет уже санитизированное значение по шаблону вида
func Matches(value string, kind Kind) bool {
	re, ok := patterns[kind]
	if !ok {
		return false
	}
	return re.MatchString(strings.TrimSpace(value))
}

// Field санитизирует значение, проверяет длину и (если задан kind) формат.
// Длина считается по санитизированному значению. Возвращается первая
// найденная причина отказа.
func Field(raw string, kind Kind, maxLen int) Result {
	if raw == "" {
		return Result{Err: "input is required"}
	}

	sanitized := Sanitize(raw)

	if sanitized == "" {
		return Result{Err: "input cannot be empty"}
	}
	if utf8.RuneCountInString(sanitized) > maxLen {
		return Result{Err: fmt.Sprintf("input too long (max %d characters)", maxLen)}
	}
	if kind != KindNone && !Matches(sanitized, kind) {
		return Result{Err: fmt.Sprintf("invalid %s format", kind)}
	}

	return Result{Valid: true, Value: sanitized}
}

// Number разбирает целое и проверяет попадание в [min, max]
func Number(raw string, min, max int64) NumberResult {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < min || n > max {
		return NumberResult{Err: fmt.Sprintf("number must be between %d and %d", min, max)}
	}
	return NumberResult{Valid: true, Value: n}
}
