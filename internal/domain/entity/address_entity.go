package entity

// Address is a sub-entity of User. Type is a free-form label such as
// "home" or "work".
type Address struct {
	ID      string
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
	Type    string
}
