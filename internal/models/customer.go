package models

// Customer is a generated person. CustomerNumber is a display value and may collide
// across customers; CustomerID is the key.
type Customer struct {
	CustomerID     int
	CustomerNumber string
	FirstName      string
	LastName       string
}

// Row returns the customer in DimCustomer column order.
func (c Customer) Row() []any {
	return []any{c.CustomerID, c.CustomerNumber, c.FirstName, c.LastName}
}
