// Package kernel provides the shared value objects of the mess delivery domain.
//
// The package includes:
//   - UUID: identifier for aggregates and for people, backed by github.com/google/uuid
//   - Date: a calendar day without time of day, used for delivery and subscription dates
//   - DomainEvent / EventSource: the contract between aggregates and the transactional outbox
//
// All values are immutable and safe for concurrent use. Zero values are invalid
// and are rejected by Validate.
package kernel
