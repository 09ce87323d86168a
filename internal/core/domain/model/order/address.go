package order

import "dealership/internal/pkg/errs"

// Address is the billing or shipping snapshot captured at order creation.
// It is a plain value: once stored on an order it is never re-derived from
// the live user profile.
type Address struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Street    string
	City      string
	Province  string
	Country   string
	Zip       string
}

// Validate checks that the fields required to contact and locate the buyer
// are present.
func (a Address) Validate() error {
	switch {
	case a.FirstName == "":
		return errs.NewValueIsRequiredError("firstName")
	case a.LastName == "":
		return errs.NewValueIsRequiredError("lastName")
	case a.Email == "":
		return errs.NewValueIsRequiredError("email")
	case a.Street == "":
		return errs.NewValueIsRequiredError("street")
	case a.City == "":
		return errs.NewValueIsRequiredError("city")
	default:
		return nil
	}
}

// IsZero reports whether no field of the address is set.
func (a Address) IsZero() bool {
	return a == Address{}
}
