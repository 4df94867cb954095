package models

// Site is an agency site.
type Site struct {
	ID      string  `db:"site_id" json:"site_id"`
	Name    *string `db:"site_name" json:"site_name"`
	Zip     *string `db:"site_zip" json:"site_zip"`
	Address *string `db:"site_address" json:"site_address"`
}

// Room is a classroom belonging to a site.
type Room struct {
	ID       string  `db:"room_id" json:"room_id"`
	SiteID   *string `db:"site_id" json:"site_id"`
	Name     *string `db:"room_name" json:"room_name"`
	AgeGroup *string `db:"room_agegroup" json:"room_age_group"`
}

// SiteFilter scopes site lookups.
type SiteFilter struct {
	NameContains string
}

var (
	SitesTable = Table{
		Name:    "agencysites",
		Columns: []Column{Col("Site_ID"), Col("Site_Name"), Col("Site_Zip"), Col("Site_Address")},
	}
	RoomsTable = Table{
		Name:    "agencysiterooms",
		Columns: []Column{Col("Room_ID"), Col("Site_ID"), Col("Room_Name"), Col("Room_AgeGroup")},
	}
)
