package repository

import "strconv"

// QuantitySetter is implemented by stocked records.
type QuantitySetter[T any] interface {
	WithQuantity(quantity int) T
}

// UpdateQuantity sets the quantity of the entity stored under id.
// ErrNotFound takes precedence over a negative quantity.
func UpdateQuantity[T QuantitySetter[T], ID comparable](repo Repository[T, ID], id ID, quantity int) error {
	return repo.Update(id, func(entity T) (T, error) {
		if quantity < 0 {
			return entity, InvalidField("quantity", strconv.Itoa(quantity), "quantity cannot be negative")
		}
		return entity.WithQuantity(quantity), nil
	})
}
