package models

// All lists every model, in dependency order, for schema auto-migration on the
// sqlite development/test path. Postgres schemas come from SQL migrations.
func All() []any {
	return []any{
		&User{},
		&Shipment{},
		&NormativeCategory{},
		&NormativeDocument{},
		&DocumentReference{},
		&TariffEntry{},
		&Incoterm{},
		&Supplement{},
	}
}
