// Package domain contains shared domain types used across the document
// sub-packages. Entity-specific types live in sub-packages (domain/category,
// domain/form, domain/catalog, domain/document). This root package holds the
// sentinel errors and the field-level ValidationError shared by all of them.
package domain
