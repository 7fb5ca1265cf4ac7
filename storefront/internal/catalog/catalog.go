package catalog

import (
	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/shopspring/decimal"
)

type Variant struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type VariantGroup struct {
	Label LocalizedString `json:"label"`
	Items []Variant       `json:"items"`
}

type Product struct {
	Id            int64           `json:"id"`
	Name          LocalizedString `json:"name"`
	Description   LocalizedString `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageUrls     []string        `json:"imageUrls"`
	Category      LocalizedString `json:"category"`
	VariantGroups []VariantGroup  `json:"variantGroups,omitempty"`
}

func (p *Product) ImageUrl() string {
	if len(p.ImageUrls) == 0 {
		return ""
	}
	return p.ImageUrls[0]
}

type Catalog struct {
	products   []Product
	categories []LocalizedString
}

func New(products []Product, categories []LocalizedString) *Catalog {
	return &Catalog{products: products, categories: categories}
}

// Default 台灣軟陶商品目錄
func Default() *Catalog {
	return New(defaultProducts(), defaultCategories())
}

func (c *Catalog) Categories() []LocalizedString {
	return c.categories
}

// List category 為空時回傳全部; category 以任一語系名稱比對
func (c *Catalog) List(category string) []Product {
	if category == "" {
		return c.products
	}
	var products []Product
	for _, p := range c.products {
		if p.Category.En == category || p.Category.ZhTW == category || p.Category.ZhCN == category {
			products = append(products, p)
		}
	}
	return products
}

func (c *Catalog) Get(id int64) (*Product, error) {
	for i := range c.products {
		if c.products[i].Id == id {
			return &c.products[i], nil
		}
	}
	return nil, errorx.New(responsex.PRODUCT_NOT_FOUND, "productId")
}

// Variant 查規格價格; 無規格的商品只接受空規格, 以商品原價計
func (c *Catalog) Variant(p *Product, name string) (Variant, error) {
	if len(p.VariantGroups) == 0 {
		if name == "" {
			return Variant{Price: p.Price}, nil
		}
		return Variant{}, errorx.New(responsex.VARIANT_NOT_FOUND, name)
	}
	for _, group := range p.VariantGroups {
		for _, v := range group.Items {
			if v.Name == name {
				return v, nil
			}
		}
	}
	return Variant{}, errorx.New(responsex.VARIANT_NOT_FOUND, name)
}
