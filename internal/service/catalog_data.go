package service

import "github.com/guttosm/switchbox-service/internal/domain/model"

// SampleProducts is a small built-in catalog used when no products file or
// database is configured. It mirrors the structure of the supplier CSV feed.
var SampleProducts = []model.Product{
	{
		SKU:          "HD4001",
		Name:         "1-Way Switch",
		Description:  "1-module one-way switch",
		RegularPrice: 12.50,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 1, Color: "White", Category: "Switches"},
	},
	{
		SKU:          "HD4003",
		Name:         "2-Way Switch",
		Description:  "1-module two-way switch",
		RegularPrice: 14.75,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 1, Color: "White", Category: "Switches"},
	},
	{
		SKU:          "HD4004",
		Name:         "Cross Switch",
		Description:  "1-module cross switch",
		RegularPrice: 19.99,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 1, Color: "White", Category: "Switches"},
	},
	{
		SKU:          "HD4012",
		Name:         "Pushbutton",
		Description:  "1-module pushbutton",
		RegularPrice: 15.25,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 1, Color: "White", Category: "Switches"},
	},
	{
		SKU:          "HD4027",
		Name:         "Socket",
		Description:  "2-module power socket",
		RegularPrice: 18.40,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 2, Color: "White", Category: "Sockets"},
	},
	{
		SKU:          "HD4027AN",
		Name:         "Socket Anthracite",
		Description:  "2-module power socket, anthracite",
		RegularPrice: 21.10,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 2, Color: "Anthracite", Category: "Sockets"},
	},
	{
		SKU:          "HD4285",
		Name:         "USB Charger",
		Description:  "2-module double USB charger",
		RegularPrice: 42.00,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 2, Color: "White", Category: "Sockets"},
	},
	{
		SKU:          "L4411",
		Name:         "Dimmer",
		Description:  "1-module rotary dimmer",
		RegularPrice: 55.30,
		Series:       "Living Light",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 1, Color: "White", Category: "Switches"},
	},
	{
		SKU:          "GW10521",
		Name:         "Complete Switch Panel",
		Description:  "2-module switch panel with integrated frame",
		RegularPrice: 38.90,
		Series:       "System",
		Brand:        "Gewiss",
		Attributes:   model.ProductAttributes{ModuleSize: 2, Color: "White", Category: "Switches", IncludesFrame: true},
	},
	{
		SKU:          "GW10601",
		Name:         "Touch Panel 4M",
		Description:  "4-module complete touch control panel",
		RegularPrice: 189.00,
		Series:       "Chorus",
		Brand:        "Gewiss",
		Attributes:   model.ProductAttributes{ModuleSize: 4, Color: "Black", Category: "Switches", IsCompletePanel: true},
	},
	{
		SKU:          "HD4915",
		Name:         "Blank Module",
		Description:  "1-module blanking plate",
		RegularPrice: 3.20,
		Series:       "Axolute",
		Brand:        "Bticino",
		Attributes:   model.ProductAttributes{ModuleSize: 1, Color: "White", Category: "Accessories"},
	},
	{
		SKU:          "CBL-3X15",
		Name:         "Installation Cable 3x1.5",
		Description:  "Installation cable 3x1.5mm, per meter",
		RegularPrice: 1.85,
		Series:       "Cabling",
		Brand:        "Generic",
		// No module size: cable is not installable inside a box.
		Attributes: model.ProductAttributes{Category: "Cabling"},
	},
}
