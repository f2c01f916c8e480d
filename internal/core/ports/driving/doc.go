// Package driving defines the interfaces external actors use to drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them, and driving adapters (REST, CLI) consume them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
