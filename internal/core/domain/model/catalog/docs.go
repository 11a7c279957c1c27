// Package catalog models the fans and air conditioners for sale.
//
// A Product groups purchasable Variants (color, size, price). Stock lives on
// the variant and is only mutated through the inventory ledger port, never
// by loading and saving the aggregate, so concurrent orders cannot overwrite
// each other's decrements.
package catalog
