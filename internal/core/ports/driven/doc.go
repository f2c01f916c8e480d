// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - CatalogScanner: Builds collection records from the on-disk data root
//   - CatalogStore: Holds the published in-memory index snapshot
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or catalog package
package driven
