package models

// ProductRecord describes one installed product as reported by
// Products.ListInstalledProducts. Records have no identity beyond their
// field values and are never deduplicated.
type ProductRecord struct {
	ProductName string `json:"product_name"`
	ProductID   string `json:"product_id"`
	Version     string `json:"version"`
	Arch        string `json:"arch"`
	Status      string `json:"status"`
}
