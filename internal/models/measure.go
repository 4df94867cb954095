package models

// MeasureCatalogEntry is a cataloged DRDP measure.
type MeasureCatalogEntry struct {
	ID       string  `db:"uuid_item" json:"reference_id"`
	Name     *string `db:"item_name" json:"display_name"`
	Category *string `db:"category" json:"category"`
}

// MeasureCatalogTable maps the catalog storage. The stored category column
// name is misspelled; it is corrected at this boundary.
var MeasureCatalogTable = Table{
	Name: "drdp_items",
	Columns: []Column{
		Col("UUID_Item"),
		Col("Item_Name"),
		{Name: "Item_Catagory", Field: "category"},
	},
}
