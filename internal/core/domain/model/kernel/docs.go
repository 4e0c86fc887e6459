// Package kernel provides the value objects shared by the order hub aggregates.
//
// The package includes:
//   - UUID: identifiers for orders, wrapping github.com/google/uuid
//   - Location: a validated latitude/longitude pair reported by delivery staff
//   - Money: a non-negative amount kept in minor units to avoid float drift
//
// Values are immutable and safe for concurrent use; zero values are invalid
// and fail Validate.
package kernel
