package seed

import (
	"context"
	"log"

	"gorm.io/datatypes"

	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/search"
	"github.com/221FA04614/AuraShop-main/store"
)

var defaultSizes = datatypes.NewJSONSlice([]string{"S", "M", "L", "XL"})
var defaultColors = datatypes.NewJSONSlice([]string{"Black", "White", "Blue", "Red"})

var catalog = []model.Product{
	{Name: "Classic Blue T-Shirt", Description: "Soft cotton tee with a relaxed fit.", Price: 19.99, Category: "tops", ImageURL: "https://picsum.photos/seed/bluetee/600/400", Stock: 120, Featured: true},
	{Name: "Red Zip Hoodie", Description: "Fleece-lined hoodie with a full zip.", Price: 45.99, Category: "tops", ImageURL: "https://picsum.photos/seed/redhoodie/600/400", Stock: 80},
	{Name: "Everyday Sneakers", Description: "Lightweight low-top sneakers for daily wear.", Price: 69.99, Category: "shoes", ImageURL: "https://picsum.photos/seed/sneakers/600/400", Stock: 60, Featured: true},
	{Name: "Slim Denim Jeans", Description: "Stretch denim with a slim cut.", Price: 54.50, Category: "bottoms", ImageURL: "https://picsum.photos/seed/jeans/600/400", Stock: 95},
	{Name: "Canvas Tote Bag", Description: "Heavy-duty canvas tote with inner pocket.", Price: 24.00, Category: "accessories", ImageURL: "https://picsum.photos/seed/tote/600/400", Stock: 150},
	{Name: "Wool Beanie", Description: "Ribbed merino beanie for cold days.", Price: 18.00, Category: "accessories", ImageURL: "https://picsum.photos/seed/beanie/600/400", Stock: 200},
	{Name: "Running Shorts", Description: "Breathable shorts with a zip pocket.", Price: 29.99, Category: "bottoms", ImageURL: "https://picsum.photos/seed/shorts/600/400", Stock: 110},
	{Name: "Rain Shell Jacket", Description: "Packable waterproof shell.", Price: 89.00, Category: "outerwear", ImageURL: "https://picsum.photos/seed/rainshell/600/400", Stock: 40, Featured: true},
	{Name: "Leather Belt", Description: "Full-grain leather belt with brass buckle.", Price: 35.00, Category: "accessories", ImageURL: "https://picsum.photos/seed/belt/600/400", Stock: 75},
	{Name: "Crew Socks 3-Pack", Description: "Cushioned cotton-blend crew socks.", Price: 14.50, Category: "accessories", ImageURL: "https://picsum.photos/seed/socks/600/400", Stock: 300},
}

// Products seeds the catalog when the table is empty and indexes the
// seeded rows for search. idx may be nil.
func Products(ctx context.Context, products store.ProductStore, idx *search.Index) error {
	n, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Println("Catalog already populated, skipping seeding")
		return nil
	}

	log.Printf("Catalog is empty, seeding %d products", len(catalog))
	for _, p := range catalog {
		p.Sizes = defaultSizes
		p.Colors = defaultColors
		p.InStock = true
		if err := products.Create(ctx, &p); err != nil {
			return err
		}
		if idx != nil {
			if err := idx.IndexProduct(ctx, p); err != nil {
				log.Printf("index seeded product %q: %v", p.Name, err)
			}
		}
	}
	return nil
}
