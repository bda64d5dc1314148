package service

import (
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/internal/domain"
)

var seedCatalog = []domain.ProductAttributes{
	{
		Name:        "PlayStation 5",
		Category:    "consoles",
		Price:       450.00,
		Description: "Console PlayStation 5 d'occasion en excellent état. Inclut la manette DualSense.",
		ImageURL:    "https://images.unsplash.com/photo-1507457379470-08b800bebc67",
		Condition:   "Excellent état",
		Console:     domain.Optional("PlayStation 5"),
		Brand:       domain.Optional("Sony"),
		Stock:       2,
	},
	{
		Name:        "Xbox One X",
		Category:    "consoles",
		Price:       320.00,
		Description: "Console Xbox One X d'occasion. Parfait pour jouer en 4K.",
		ImageURL:    "https://images.unsplash.com/photo-1571126770292-d50130a36459",
		Condition:   "Bon état",
		Console:     domain.Optional("Xbox One"),
		Brand:       domain.Optional("Microsoft"),
		Stock:       1,
	},
	{
		Name:        "PlayStation 1 Retro",
		Category:    "consoles",
		Price:       85.00,
		Description: "Console PlayStation 1 vintage avec manette d'origine. Parfait pour les nostalgiques.",
		ImageURL:    "https://images.unsplash.com/photo-1531390658120-e06b58d826ea",
		Condition:   "Bon état",
		Console:     domain.Optional("PlayStation 1"),
		Brand:       domain.Optional("Sony"),
		Stock:       1,
	},
	{
		Name:        "Manette Xbox Series X",
		Category:    "manettes",
		Price:       45.00,
		Description: "Manette sans fil Xbox Series X en très bon état. Compatible avec PC et Xbox.",
		ImageURL:    "https://images.unsplash.com/photo-1629917629391-47d9209b7c19",
		Condition:   "Très bon état",
		Console:     domain.Optional("Xbox Series X"),
		Brand:       domain.Optional("Microsoft"),
		Stock:       3,
	},
	{
		Name:        "Manette DualSense PS5",
		Category:    "manettes",
		Price:       55.00,
		Description: "Manette DualSense officielle PlayStation 5 avec retour haptique.",
		ImageURL:    "https://images.unsplash.com/photo-1571716846319-21f2bf095516",
		Condition:   "Excellent état",
		Console:     domain.Optional("PlayStation 5"),
		Brand:       domain.Optional("Sony"),
		Stock:       2,
	},
	{
		Name:        "Manette PlayStation 4",
		Category:    "manettes",
		Price:       35.00,
		Description: "Manette DualShock 4 pour PlayStation 4. Fonctionne parfaitement.",
		ImageURL:    "https://images.pexels.com/photos/32713615/pexels-photo-32713615.jpeg",
		Condition:   "Bon état",
		Console:     domain.Optional("PlayStation 4"),
		Brand:       domain.Optional("Sony"),
		Stock:       4,
	},
	{
		Name:        "Casque Gaming Pro",
		Category:    "casques",
		Price:       89.00,
		Description: "Casque gaming haute qualité avec microphone détachable. Son surround 7.1.",
		ImageURL:    "https://images.unsplash.com/photo-1677086813101-496781a0f327",
		Condition:   "Très bon état",
		Brand:       domain.Optional("Gaming Pro"),
		Stock:       2,
	},
	{
		Name:        "Casque Gaming RGB",
		Category:    "casques",
		Price:       65.00,
		Description: "Casque gaming avec éclairage RGB et son immersif. Compatible toutes plateformes.",
		ImageURL:    "https://images.unsplash.com/photo-1600186279172-fdbaefd74383",
		Condition:   "Bon état",
		Brand:       domain.Optional("RGB Gaming"),
		Stock:       1,
	},
	{
		Name:        "Clavier Mécanique RGB",
		Category:    "claviers",
		Price:       75.00,
		Description: "Clavier mécanique gaming avec switches Blue et rétroéclairage RGB personnalisable.",
		ImageURL:    "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae",
		Condition:   "Très bon état",
		Brand:       domain.Optional("Mechanical Pro"),
		Stock:       2,
	},
	{
		Name:        "Clavier Gaming Compact",
		Category:    "claviers",
		Price:       55.00,
		Description: "Clavier gaming compact 60% avec éclairage RGB. Parfait pour l'esport.",
		ImageURL:    "https://images.unsplash.com/photo-1631449061775-c79df03a44f6",
		Condition:   "Excellent état",
		Brand:       domain.Optional("Compact Gaming"),
		Stock:       1,
	},
	{
		Name:        "Souris Gaming RGB",
		Category:    "souris",
		Price:       42.00,
		Description: "Souris gaming haute précision avec capteur optique 12000 DPI et éclairage RGB.",
		ImageURL:    "https://images.unsplash.com/photo-1628832307345-7404b47f1751",
		Condition:   "Très bon état",
		Brand:       domain.Optional("Gaming RGB"),
		Stock:       3,
	},
	{
		Name:        "Souris Esport Pro",
		Category:    "souris",
		Price:       38.00,
		Description: "Souris gaming professionnelle utilisée par les joueurs esport. Très légère.",
		ImageURL:    "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg",
		Condition:   "Bon état",
		Brand:       domain.Optional("Esport Pro"),
		Stock:       2,
	},
	{
		Name:        "Call of Duty Modern Warfare",
		Category:    "jeux",
		Price:       35.00,
		Description: "Jeu Call of Duty Modern Warfare pour PlayStation 4. Excellent état.",
		ImageURL:    "https://images.pexels.com/photos/8307628/pexels-photo-8307628.jpeg",
		Condition:   "Excellent état",
		Console:     domain.Optional("PlayStation 4"),
		Brand:       domain.Optional("Activision"),
		Stock:       1,
	},
}

// SeedProducts builds the sample catalog. Creation times step by one
// millisecond in catalog order, so later entries sort first.
func SeedProducts(start time.Time) []domain.Product {
	start = start.UTC().Truncate(time.Millisecond)

	products := make([]domain.Product, 0, len(seedCatalog))
	for i, attrs := range seedCatalog {
		products = append(products, domain.NewProduct(attrs, start.Add(time.Duration(i)*time.Millisecond)))
	}

	return products
}
