package catalog

// Built-in manufacturer tables, ported from the curated inventory data:
// broad family names plus representative concrete models from roughly
// 2015-2025. Not exhaustive; the overlay file extends it.
// Declaration order matters: it is the documented tie-break for equal
// match scores, so append new manufacturers and keywords at the end of
// their block rather than resorting.
var builtin = []ManufacturerSpec{
	{
		Name: "Dell",
		Categories: []CategorySpec{
			{
				ID: "laptops",
				Keywords: []string{
					"Latitude",
					"Latitude 5300", "Latitude 5310", "Latitude 5410", "Latitude 5420",
					"Latitude 5430", "Latitude 5440", "Latitude 5530", "Latitude 5540",
					"Latitude 7300", "Latitude 7320", "Latitude 7420", "Latitude 7430",
					"Latitude 7440", "Latitude 9430", "Latitude 9440",
					"Precision",
					"Precision 3560", "Precision 3570", "Precision 3580",
					"Precision 5560", "Precision 5570", "Precision 5680",
					"Precision 7560", "Precision 7670", "Precision 7680",
					"XPS",
					"XPS 13 9310", "XPS 13 Plus", "XPS 14",
					"XPS 15 9520", "XPS 15 9530", "XPS 17 9730",
					"Inspiron", "Vostro", "Alienware",
				},
			},
			{
				ID: "systems",
				Keywords: []string{
					"OptiPlex",
					"OptiPlex 3080", "OptiPlex 3090", "OptiPlex 3000",
					"OptiPlex 5090", "OptiPlex 5000",
					"OptiPlex 7080", "OptiPlex 7090", "OptiPlex 7000",
					"OptiPlex 7010", "OptiPlex 7020",
					"OptiPlex 7480 AIO", "OptiPlex 7410 AIO",
					"Precision Tower 3630", "Precision Tower 3640",
					"Precision 3660", "Precision 7875",
				},
				Types: []TypeSpec{
					{Name: "Tower", Substrings: []string{"Tower", "MT"}},
					{Name: "SFF", Substrings: []string{"SFF"}},
					{Name: "MFF", Substrings: []string{"Micro", "MFF"}},
					{Name: "AIO", Substrings: []string{"AIO", "All-in-One"}},
				},
			},
			{
				ID: "servers",
				Keywords: []string{
					"PowerEdge",
					"PowerEdge R250", "PowerEdge R350",
					"PowerEdge R440", "PowerEdge R450",
					"PowerEdge R540", "PowerEdge R550",
					"PowerEdge R640", "PowerEdge R650", "PowerEdge R650xs",
					"PowerEdge R740", "PowerEdge R750", "PowerEdge R750xs",
					"PowerEdge R760", "PowerEdge R760xa",
					"PowerEdge T150", "PowerEdge T350",
				},
				Types: []TypeSpec{
					{Name: "Rack", Substrings: []string{
						"R250", "R350", "R440", "R450", "R540", "R550",
						"R640", "R650", "R740", "R750", "R760",
					}},
					{Name: "Tower", Substrings: []string{"T150", "T350", "Tower"}},
				},
			},
			{
				ID:       "networks",
				Keywords: []string{"PowerSwitch", "PowerConnect", "Networking"},
			},
		},
	},
	{
		Name: "HP",
		Categories: []CategorySpec{
			{
				ID: "laptops",
				Keywords: []string{
					"EliteBook",
					"EliteBook 830 G8", "EliteBook 830 G9", "EliteBook 830 G10",
					"EliteBook 840 G7", "EliteBook 840 G8", "EliteBook 840 G9", "EliteBook 840 G10",
					"EliteBook 1040 G9", "EliteBook 1040 G10",
					"ProBook",
					"ProBook 440 G8", "ProBook 440 G9", "ProBook 440 G10",
					"ProBook 450 G8", "ProBook 450 G9", "ProBook 450 G10",
					"ZBook",
					"ZBook Studio G8", "ZBook Studio G9",
					"ZBook Firefly G9", "ZBook Firefly G10",
					"ZBook Power G9", "ZBook Power G10",
					"Spectre", "Envy", "OMEN", "Pavilion",
				},
			},
			{
				ID: "systems",
				Keywords: []string{
					"EliteDesk", "ProDesk",
					"EliteDesk 800 G5", "EliteDesk 800 G6", "EliteDesk 800 G8", "EliteDesk 800 G9",
					"ProDesk 400 G6", "ProDesk 400 G9",
					"Z2 Tower G4", "Z2 Tower G5", "Z4 G4", "Z4 G5", "Z6 G4", "Z8 G5",
					"ProOne", "All-in-One",
				},
				Types: []TypeSpec{
					{Name: "Tower", Substrings: []string{"Z2 Tower", "Z4", "Z6", "Z8", "MT", "Tower"}},
					{Name: "SFF", Substrings: []string{"SFF"}},
					{Name: "MFF", Substrings: []string{"Mini", "DM"}},
					{Name: "AIO", Substrings: []string{"ProOne", "All-in-One", "AIO"}},
				},
			},
			{
				ID: "servers",
				Keywords: []string{
					"ProLiant",
					"ProLiant DL20 Gen10", "ProLiant DL20 Gen11",
					"ProLiant DL360 Gen10", "ProLiant DL360 Gen11",
					"ProLiant DL380 Gen10", "ProLiant DL380 Gen11",
					"ProLiant DL385 Gen11",
					"ProLiant ML350 Gen10", "ProLiant ML350 Gen11",
				},
				Types: []TypeSpec{
					{Name: "Rack", Substrings: []string{"DL20", "DL360", "DL380", "DL385"}},
					{Name: "Tower", Substrings: []string{"ML350", "Tower"}},
				},
			},
			{
				ID:       "printers",
				Keywords: []string{"LaserJet", "OfficeJet", "PageWide", "DesignJet"},
			},
			{
				ID:       "networks",
				Keywords: []string{"Aruba", "ProCurve"},
			},
		},
	},
	{
		Name: "Lenovo",
		Categories: []CategorySpec{
			{
				ID: "laptops",
				Keywords: []string{
					"ThinkPad",
					"ThinkPad T480", "ThinkPad T490",
					"ThinkPad T14 Gen 2", "ThinkPad T14 Gen 3", "ThinkPad T14 Gen 4",
					"ThinkPad T14s Gen 3", "ThinkPad T14s Gen 4",
					"ThinkPad X1 Carbon Gen 9", "ThinkPad X1 Carbon Gen 10", "ThinkPad X1 Carbon Gen 11",
					"ThinkPad X1 Nano Gen 2",
					"ThinkPad X13 Gen 3", "ThinkPad X13 Gen 4",
					"ThinkPad L14 Gen 3", "ThinkPad L14 Gen 4",
					"ThinkPad P1 Gen 5", "ThinkPad P1 Gen 6",
					"Yoga", "IdeaPad", "Legion",
				},
			},
			{
				ID: "systems",
				Keywords: []string{
					"ThinkCentre",
					"ThinkCentre M720", "ThinkCentre M70s", "ThinkCentre M80s", "ThinkCentre M90s",
					"ThinkCentre M70q Gen 3", "ThinkCentre M70q Gen 4",
					"ThinkCentre M80q Tiny", "ThinkCentre M90q Tiny",
					"ThinkStation",
					"ThinkStation P340", "ThinkStation P360", "ThinkStation P3", "ThinkStation P5",
				},
				Types: []TypeSpec{
					{Name: "Tower", Substrings: []string{"Tower"}},
					{Name: "SFF", Substrings: []string{"SFF"}},
					{Name: "MFF", Substrings: []string{"Tiny"}},
				},
			},
			{
				ID: "servers",
				Keywords: []string{
					"ThinkSystem",
					"ThinkSystem SR250", "ThinkSystem SR630", "ThinkSystem SR650",
					"ThinkSystem SR650 V2", "ThinkSystem SR655",
				},
				Types: []TypeSpec{
					{Name: "Rack", Substrings: []string{"SR"}},
					{Name: "Tower", Substrings: []string{"ST"}},
				},
			},
		},
	},
	{
		Name: "Microsoft",
		Categories: []CategorySpec{
			{
				ID: "laptops",
				Keywords: []string{
					"Surface",
					"Surface Pro 7", "Surface Pro 8", "Surface Pro 9", "Surface Pro 10",
					"Surface Laptop 4", "Surface Laptop 5", "Surface Laptop 6",
					"Surface Laptop Studio", "Surface Go 3", "Surface Go 4",
				},
			},
			{
				ID:       "systems",
				Keywords: []string{"Surface Studio", "Surface Hub 2S"},
			},
		},
	},
	{
		Name: "Apple",
		Categories: []CategorySpec{
			{
				ID: "laptops",
				Keywords: []string{
					"MacBook",
					"MacBook Air (2020 M1)", "MacBook Air (2022 M2)", "MacBook Air (2024 M3)",
					"MacBook Pro 13 (M1)", "MacBook Pro 14 (M1/M2/M3)", "MacBook Pro 16 (M1/M2/M3)",
				},
			},
			{
				ID:       "systems",
				Keywords: []string{"iMac", "iMac 24", "Mac mini", "Mac Studio", "Mac Pro"},
			},
		},
	},
	{
		Name: "Asus",
		Categories: []CategorySpec{
			{
				ID:       "laptops",
				Keywords: []string{"ZenBook", "ZenBook 14", "VivoBook", "ROG Zephyrus", "TUF Gaming"},
			},
			{
				ID:       "systems",
				Keywords: []string{"ExpertCenter", "ProArt Station", "All-in-One"},
			},
		},
	},
	{
		Name: "Acer",
		Categories: []CategorySpec{
			{
				ID:       "laptops",
				Keywords: []string{"Swift", "Swift 3", "Swift 5", "Aspire", "Aspire 5", "Aspire 7", "Nitro", "Predator"},
			},
			{
				ID:       "systems",
				Keywords: []string{"Veriton", "Aspire Desktop", "All-in-One"},
			},
		},
	},
	{
		Name: "MSI",
		Categories: []CategorySpec{
			{
				ID:       "laptops",
				Keywords: []string{"Prestige", "Summit", "Modern", "Creator", "Katana", "Raider", "Stealth"},
			},
			{
				ID:       "systems",
				Keywords: []string{"PRO DP", "Creator P"},
			},
		},
	},
	{
		Name: "Samsung",
		Categories: []CategorySpec{
			{
				ID:       "laptops",
				Keywords: []string{"Notebook 9", "Galaxy Book", "Galaxy Book2", "Galaxy Book3"},
			},
		},
	},
	{
		Name: "Cisco",
		Categories: []CategorySpec{
			{
				ID: "servers",
				Keywords: []string{
					"UCS",
					"UCS C220 M5", "UCS C240 M5", "UCS C220 M6", "UCS C240 M6", "UCS B200 M5",
				},
				Types: []TypeSpec{
					{Name: "Rack", Substrings: []string{"C220", "C240"}},
					{Name: "Blade", Substrings: []string{"B200"}},
				},
			},
			{
				ID:       "networks",
				Keywords: []string{"Catalyst", "Nexus", "Meraki", "ASA", "Firepower", "IP Phone"},
			},
			{
				ID:       "other",
				Keywords: []string{"Webex Device"},
			},
		},
	},
	{
		Name: "Supermicro",
		Categories: []CategorySpec{
			{
				ID:       "servers",
				Keywords: []string{"SuperServer", "SYS-5019", "SYS-510P", "SYS-6029", "SYS-620P", "AS-1114S", "AS-2014S"},
			},
		},
	},
}

var builtinCatalog = MustNew(builtin)

// Builtin returns the compiled-in catalog. The same instance is returned on
// every call; it is read-only.
func Builtin() *Catalog {
	return builtinCatalog
}
