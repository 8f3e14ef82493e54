package core

// IDGenerator produces globally unique string identifiers
type IDGenerator interface {
	NewID() string
}
