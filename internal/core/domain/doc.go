// Package domain defines the core business entities for Kuradex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CollectionRecord: One catalogued item, backed by a folder on disk
//   - SearchCriteria / SearchResult: The search contract
//   - InventoryStatus: Derived stock-health classification
//   - ProjectSettings: Data root and display labels from the project descriptor
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
