// Package shop registers the storefront's entity schemas (products, reviews,
// orders, carts, users, web pages and settings) and exposes a single entry
// point to validate and normalize raw input against them.
//
// Schemas are looked up by name:
//
//	v, err := shop.Validate(shop.SchemaCart, input)
//
// or validated and bound to a typed value in one step:
//
//	order, err := shop.Parse[shop.OrderInput](shop.SchemaOrderInput, input)
//
// The package only validates. Persisting, rendering and computing prices are
// left to callers.
package shop
