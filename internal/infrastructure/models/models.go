package models

// All returns every persisted model, in FK-safe creation order.
// Used by the rentctl migrate command.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Property{},
		&PropertyImage{},
		&UtilityBill{},
		&Lease{},
		&RentPayment{},
		&MaintenanceRequest{},
	}
}
