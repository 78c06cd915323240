package domain

// Models lists every persisted entity, in migration order.
func Models() []interface{} {
	return []interface{}{
		&User{},
		&VacationProperty{},
		&Reservation{},
	}
}
