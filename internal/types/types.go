// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. IDs are handed out monotonically
// and never reused, so a stale ID simply stops resolving once the entity is gone.
type EntityID uint64
