package models

// Locations is the pool a new season's setting is drawn from
var Locations = []string{
	"the brutal savannas of Kenya",
	"the ancient ruins and jungles of Cambodia",
	"the storm-lashed beaches of the Marquesas",
	"the dense Maya lowlands of Guatemala",
	"the scorching outback of Australia",
	"the misty highlands and rice terraces of China",
	"the reef-ringed islands of Palau",
	"the cyclone-prone shores of Fiji",
	"the volcanic highlands of Iceland",
	"the Patagonian fjords of southern Chile",
	"the salt flats and canyons of Bolivia",
	"the remote Faroe Islands in the North Atlantic",
	"the jungles and tepui plateaus of Guyana",
}

// TribeNames is the pool both starting tribe names are drawn from
var TribeNames = []string{
	"Koru", "Naru", "Solari", "Vanta", "Aroa", "Kael", "Maru", "Sable", "Kiri", "Tika",
}

// TribeColorPool is the pool both tribe colours are drawn from
var TribeColorPool = []string{
	"#840404", // dark red
	"#207D07", // dark green
	"#0C5F9E", // dark blue
	"#7B067F", // dark purple
	"#AF6C0F", // dark orange
}

// MergedTribeNames is the pool the merged tribe name is drawn from
var MergedTribeNames = []string{"Aegis", "Horizon", "Crescent", "Ember", "Nova"}

// AllStars is the pool the 17 opponents are drawn from
var AllStars = []string{
	"Boston Rob", "Parvati", "Sandra", "Tony", "Kim", "Cirie", "Tyson",
	"Jeremy", "Sarah", "Yul", "Malcolm", "Andrea", "Wentworth", "Aubry",
	"Natalie Anderson", "Ozzy", "Cochran", "Rupert", "Russell Hantz",
	"Rob Cesternino", "Stephenie LaGrossa", "Jerri Manthey", "Coach Wade",
	"Amanda Kimmel", "James Clement", "Colby Donaldson", "Hatch",
	"Ethan Zohn", "Tom Westman", "Denise Stapley", "Mike Holloway",
	"Ben Driebergen", "Domenick Abbate", "Jonathan Penner",
}

const (
	// RosterSize is the number of contestants in a season, player included
	RosterSize = 18

	// TribeSize is the number of contestants in each starting tribe
	TribeSize = RosterSize / 2
)
