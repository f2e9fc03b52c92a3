// Package model holds the domain entities shared by the repository,
// service and handler layers.
package model

// Person is the only resource of the service.
//
// ID is assigned by the store on insert and never changes. Name is unique
// across all persons and stored HTML-escaped.
type Person struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
