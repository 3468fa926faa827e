package models

// Entity is anything the console lists that carries a stable identifier
// and a display name.
type Entity[K comparable] interface {
	EntityID() K
	EntityName() string
}
