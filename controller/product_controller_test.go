package controller_test

import (
	. "github.com/221FA04614/AuraShop-main/controller"

	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/221FA04614/AuraShop-main/middleware"
	"github.com/221FA04614/AuraShop-main/model"
	"github.com/221FA04614/AuraShop-main/routes"
	"github.com/221FA04614/AuraShop-main/store"
)

type productEventRecorder struct {
	created []*model.Product
}

func (r *productEventRecorder) OrderCreated(*model.Order) {}
func (r *productEventRecorder) ProductCreated(p *model.Product) {
	r.created = append(r.created, p)
}

func newProductApp(t *testing.T) (*fiber.App, *store.MemoryProductStore, *productEventRecorder) {
	t.Helper()
	products := store.NewMemoryProductStore()
	rec := &productEventRecorder{}
	app := fiber.New()
	routes.RegisterProductRoutes(app, &ProductController{
		Products: products,
		Events:   rec,
	}, middleware.AuthRequired(testJWTSecret))
	return app, products, rec
}

func seedCatalog(t *testing.T, products *store.MemoryProductStore) {
	t.Helper()
	for _, p := range []model.Product{
		{Name: "Everyday Sneakers", Description: "Canvas low tops", Category: "shoes", Price: 69.99, Featured: true, InStock: true},
		{Name: "Rain Shell Jacket", Description: "Waterproof shell", Category: "outerwear", Price: 89.00, InStock: true},
		{Name: "Wool Beanie", Description: "Warm knit hat", Category: "accessories", Price: 18.00, Featured: true, InStock: true},
	} {
		p := p
		require.NoError(t, products.Create(context.Background(), &p))
	}
}

func TestProductList(t *testing.T) {
	app, products, _ := newProductApp(t)
	seedCatalog(t, products)

	resp := doJSON(t, app, "GET", "/api/products/", nil, "")
	require.Equal(t, 200, resp.StatusCode)
	var all []model.Product
	decodeBody(t, resp, &all)
	assert.Len(t, all, 3)

	resp = doJSON(t, app, "GET", "/api/products/?category=shoes", nil, "")
	var shoes []model.Product
	decodeBody(t, resp, &shoes)
	require.Len(t, shoes, 1)
	assert.Equal(t, "Everyday Sneakers", shoes[0].Name)

	resp = doJSON(t, app, "GET", "/api/products/?featured=true", nil, "")
	var featured []model.Product
	decodeBody(t, resp, &featured)
	assert.Len(t, featured, 2)
}

func TestProductListEmptyCatalogReturnsArray(t *testing.T) {
	app, _, _ := newProductApp(t)

	resp := doJSON(t, app, "GET", "/api/products/", nil, "")
	require.Equal(t, 200, resp.StatusCode)
	var all []model.Product
	decodeBody(t, resp, &all)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestProductGet(t *testing.T) {
	app, products, _ := newProductApp(t)
	seedCatalog(t, products)

	resp := doJSON(t, app, "GET", "/api/products/1", nil, "")
	require.Equal(t, 200, resp.StatusCode)
	var p model.Product
	decodeBody(t, resp, &p)
	assert.Equal(t, "Everyday Sneakers", p.Name)

	assert.Equal(t, 404, doJSON(t, app, "GET", "/api/products/999", nil, "").StatusCode)
	assert.Equal(t, 400, doJSON(t, app, "GET", "/api/products/abc", nil, "").StatusCode)
}

func TestProductCategories(t *testing.T) {
	app, products, _ := newProductApp(t)
	seedCatalog(t, products)

	resp := doJSON(t, app, "GET", "/api/products/categories", nil, "")
	require.Equal(t, 200, resp.StatusCode)
	var categories []string
	decodeBody(t, resp, &categories)
	assert.Equal(t, []string{"accessories", "outerwear", "shoes"}, categories)
}

func TestProductCreateRequiresAdmin(t *testing.T) {
	app, _, _ := newProductApp(t)
	body := fiber.Map{"name": "New Thing", "price": 10.0}

	assert.Equal(t, 401, doJSON(t, app, "POST", "/api/products/", body, "").StatusCode)

	customer := signToken(t, 1, "jane@example.com", "customer")
	assert.Equal(t, 403, doJSON(t, app, "POST", "/api/products/", body, customer).StatusCode)
}

func TestProductCreate(t *testing.T) {
	app, products, rec := newProductApp(t)
	admin := signToken(t, 1, "admin@example.com", "admin")

	resp := doJSON(t, app, "POST", "/api/products/", fiber.Map{
		"name":     "Canvas Tote Bag",
		"price":    24.00,
		"category": "accessories",
	}, admin)
	require.Equal(t, 201, resp.StatusCode)
	var created model.Product
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.ID)

	count, err := products.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.Len(t, rec.created, 1)
	assert.Equal(t, "Canvas Tote Bag", rec.created[0].Name)
}

func TestProductCreateValidation(t *testing.T) {
	app, _, _ := newProductApp(t)
	admin := signToken(t, 1, "admin@example.com", "admin")

	for name, body := range map[string]fiber.Map{
		"missing name":   {"price": 10.0},
		"zero price":     {"name": "Thing", "price": 0},
		"negative price": {"name": "Thing", "price": -5.0},
	} {
		t.Run(name, func(t *testing.T) {
			resp := doJSON(t, app, "POST", "/api/products/", body, admin)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestProductSearchFallsBackToStore(t *testing.T) {
	// No search index is wired, so the query must hit the store matcher.
	app, products, _ := newProductApp(t)
	seedCatalog(t, products)

	resp := doJSON(t, app, "GET", "/api/products/search?q=waterproof", nil, "")
	require.Equal(t, 200, resp.StatusCode)
	var hits []model.Product
	decodeBody(t, resp, &hits)
	require.Len(t, hits, 1)
	assert.Equal(t, "Rain Shell Jacket", hits[0].Name)
}

func TestProductSearchRequiresQuery(t *testing.T) {
	app, _, _ := newProductApp(t)

	resp := doJSON(t, app, "GET", "/api/products/search", nil, "")
	assert.Equal(t, 400, resp.StatusCode)
}

func TestProductSearchIsNotShadowedByGet(t *testing.T) {
	app, products, _ := newProductApp(t)
	seedCatalog(t, products)

	// "search" must route to the matcher, not be parsed as a product id.
	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/products/search?q=%s", "sneakers"), nil, "")
	require.Equal(t, 200, resp.StatusCode)
	var hits []model.Product
	decodeBody(t, resp, &hits)
	require.Len(t, hits, 1)
	assert.Equal(t, "Everyday Sneakers", hits[0].Name)
}
