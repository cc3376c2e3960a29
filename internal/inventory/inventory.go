// Package inventory implements the per-player item ledgers: three
// independent name->quantity mappings for seeds, tools and fertilizers.
// Every debit checks sufficiency first, so quantities never go negative.
package inventory

import (
	"fmt"

	"github.com/windrow/farmstead/internal/domain"
)

// Add credits amount of the named item to the given category ledger.
// Amount must be positive.
func Add(inv *domain.Inventory, category domain.ItemCategory, name string, amount uint) error {
	if amount == 0 {
		return fmt.Errorf("%w: add amount must be positive", domain.ErrInvalidQuantity)
	}

	ledger := inv.Ledger(category)
	if ledger == nil {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	ledger[name] += amount
	return nil
}

// Consume debits amount of the named item from the given category ledger.
// Fails with ErrInsufficientQuantity if the ledger holds less than amount;
// the ledger is untouched on failure.
func Consume(inv *domain.Inventory, category domain.ItemCategory, name string, amount uint) error {
	if amount == 0 {
		return fmt.Errorf("%w: consume amount must be positive", domain.ErrInvalidQuantity)
	}

	ledger := inv.Ledger(category)
	if ledger == nil {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	current := ledger[name]
	if current < amount {
		return fmt.Errorf("%w: have %d %s, need %d", domain.ErrInsufficientQuantity, current, name, amount)
	}

	if current == amount {
		delete(ledger, name)
	} else {
		ledger[name] = current - amount
	}
	return nil
}

// Quantity returns the held amount of the named item, zero if absent
func Quantity(inv *domain.Inventory, category domain.ItemCategory, name string) uint {
	ledger := inv.Ledger(category)
	if ledger == nil {
		return 0
	}
	return ledger[name]
}

// Has reports whether the ledger holds at least amount of the named item
func Has(inv *domain.Inventory, category domain.ItemCategory, name string, amount uint) bool {
	return Quantity(inv, category, name) >= amount
}

// Snapshot returns a copy of one category's ledger for reporting.
// Iteration order of the returned map is not meaningful.
func Snapshot(inv *domain.Inventory, category domain.ItemCategory) domain.Ledger {
	ledger := inv.Ledger(category)
	out := make(domain.Ledger, len(ledger))
	for name, qty := range ledger {
		out[name] = qty
	}
	return out
}
