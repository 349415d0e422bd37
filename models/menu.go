package models

import "github.com/shopspring/decimal"

// MenuItem is immutable after seeding except for Available.
type MenuItem struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Image       string          `json:"image" yaml:"image"`
	Category    string          `json:"category" yaml:"category"`
	Available   bool            `json:"available" yaml:"available"`
}
