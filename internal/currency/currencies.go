package currency

import "travel_catalog/internal/domain"

// BaseCode is the fixed reference currency all stored prices are
// denominated in.
const BaseCode = "AUD"

// reference is the fixed currency set loaded once at process start.
var reference = []domain.Currency{
	{Code: "AUD", Symbol: "$", Name: "Australian Dollar", Glyph: "A$"},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Glyph: "US$"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "NZD", Symbol: "$", Name: "New Zealand Dollar", Glyph: "NZ$"},
	{Code: "CAD", Symbol: "$", Name: "Canadian Dollar", Glyph: "C$"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "SGD", Symbol: "$", Name: "Singapore Dollar", Glyph: "S$"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
}

// zeroDecimal lists currencies with no minor unit; they format with 0
// fraction digits, all others with 2.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
}

// defaultRates is the static reference rate table relative to BaseCode.
// The base currency's own rate is exactly 1.0.
var defaultRates = map[string]float64{
	"AUD": 1.0,
	"USD": 0.65,
	"EUR": 0.60,
	"GBP": 0.51,
	"NZD": 1.09,
	"CAD": 0.90,
	"CHF": 0.52,
	"JPY": 97.0,
	"KRW": 905.0,
	"VND": 16500.0,
	"THB": 21.0,
	"SGD": 0.84,
	"INR": 57.0,
}
