package entity

import "time"

// Categorie agrupa productos. La relación es opcional desde Produit.
type Categorie struct {
	ID           string
	Nom          string
	DateCreation time.Time
}
