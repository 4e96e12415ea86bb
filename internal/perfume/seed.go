package perfume

// SeedPerfumes returns the catalog loaded at startup. The duplicate
// "Bellavita, CEO Man" and the trailing space in its second type are part
// of the data.
func SeedPerfumes() []Perfume {
	return []Perfume{
		{Name: "Bellavita, CEO Man", Type: "Eau de Parfum", Quantity: "100ml", Price: 699},
		{Name: "EM5, Pause", Type: "Eau de Parfum", Quantity: "60ml", Price: 949},
		{Name: "Arabian Aroma, Sauvage", Type: "Extrait de Parfum", Quantity: "30ml", Price: 599},
		{Name: "Nautica, Voyage", Type: "Eau de Toilette", Quantity: "100ml", Price: 1948},
		{Name: "Bellavita, CEO Man", Type: "Eau de Cologne ", Quantity: "50ml", Price: 699},
		{Name: "Wild Stone, Edge", Type: "Eau de Parfum", Quantity: "80ml", Price: 514},
		{Name: "OG Luxury, Smokey Intense", Type: "Extrait de Parfum", Quantity: "40ml", Price: 599},
		{Name: "Adidas, Victory League", Type: "Eau de Toilette", Quantity: "70ml", Price: 1177},
		{Name: "Jaguar, Classic Black", Type: "Eau de Toilette", Quantity: "80ml", Price: 2048},
		{Name: "The Man Company, Hope", Type: "Eau de Parfum", Quantity: "50ml", Price: 474},
		{Name: "Versace, Man", Type: "Eau Fraîche", Quantity: "30ml", Price: 2942},
		{Name: "Bellavita, SKY Aquatic", Type: "Eau de Cologne", Quantity: "60ml", Price: 479},
		{Name: "Beardo, Whisky Smoke", Type: "Eau de Parfum", Quantity: "50ml", Price: 265},
		{Name: "Fandamei, Hypnos", Type: "Eau de Cologne", Quantity: "100ml", Price: 699},
		{Name: "Nautica, Blue", Type: "Eau de Toilette", Quantity: "100ml", Price: 1600},
	}
}
