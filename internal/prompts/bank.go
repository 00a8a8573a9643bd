// Package prompts holds the static round-content catalogs: question
// categories for liar mode and the secret item list for one-word mode.
// Both are read-only after construction and safe to share across rooms.
package prompts

import (
	"errors"
	"fmt"
	"math/rand"
)

// Category is one question with its decoy variants. Real is the canonical
// prompt handed to every truth-teller; Decoys are the impostor variants.
type Category struct {
	Name   string
	Real   string
	Decoys []string
}

// Bank is the catalog rounds draw from.
type Bank struct {
	categories []Category
	items      []string
}

var ErrEmptyBank = errors.New("prompt bank has no categories")

// NewBank validates the catalog. An empty bank or a category without decoys
// is a configuration error and must fail at startup, not per round.
func NewBank(categories []Category, items []string) (*Bank, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyBank
	}
	for _, c := range categories {
		if c.Real == "" {
			return nil, fmt.Errorf("category %q has no canonical prompt", c.Name)
		}
		if len(c.Decoys) == 0 {
			return nil, fmt.Errorf("category %q has no decoy variants", c.Name)
		}
	}
	if len(items) == 0 {
		return nil, errors.New("prompt bank has no one-word items")
	}
	return &Bank{categories: categories, items: items}, nil
}

// Default returns the built-in catalog.
func Default() (*Bank, error) {
	return NewBank(defaultCategories, defaultItems)
}

// PickCategory returns a uniformly random category.
func (b *Bank) PickCategory(rng *rand.Rand) Category {
	return b.categories[rng.Intn(len(b.categories))]
}

// PickVariant returns a uniformly random decoy from the category.
func (b *Bank) PickVariant(c Category, rng *rand.Rand) string {
	return c.Decoys[rng.Intn(len(c.Decoys))]
}

// PickItem returns a uniformly random secret item for one-word mode.
func (b *Bank) PickItem(rng *rand.Rand) string {
	return b.items[rng.Intn(len(b.items))]
}

// Len returns the number of categories.
func (b *Bank) Len() int {
	return len(b.categories)
}
