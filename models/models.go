package models

// AllModels returns all models in migration order
func AllModels() []interface{} {
	return []interface{}{
		&Product{},
		&Sale{},
	}
}
