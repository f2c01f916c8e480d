// Package services implements the application use cases behind the driving
// ports. Services depend only on domain types and driven-port interfaces;
// adapters are injected through constructors.
package services
