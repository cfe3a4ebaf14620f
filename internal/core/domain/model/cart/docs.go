// Package cart contains the shopping cart read model: the raw lines a
// customer accumulated across restaurants and the per-restaurant groups they
// decompose into. A cart is a local, pre-order artifact; once checkout
// completes the cart is cleared and only orders remain.
package cart
