package cart

import (
	"fmt"
	"time"

	"github.com/copo888/storefront_app/common/errorx"
	"github.com/copo888/storefront_app/common/responsex"
	"github.com/copo888/storefront_app/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

type Item struct {
	CartItemId  string                  `json:"cartId"`
	ProductId   int64                   `json:"productId"`
	ProductName catalog.LocalizedString `json:"productName"`
	VariantName string                  `json:"variantName"`
	Price       decimal.Decimal         `json:"price"`
	Quantity    int                     `json:"quantity"`
	ImageUrl    string                  `json:"imageUrl"`
}

type Cart struct {
	Id        string    `json:"id"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func New(id string) *Cart {
	return &Cart{Id: id, Items: []Item{}}
}

func ItemId(productId int64, variantName string) string {
	return fmt.Sprintf("%d-%s", productId, variantName)
}

// Add 同一商品規格合併數量
func (c *Cart) Add(item Item) error {
	if item.Quantity <= 0 {
		return errorx.New(responsex.INVALID_QUANTITY, fmt.Sprintf("%d", item.Quantity))
	}
	item.CartItemId = ItemId(item.ProductId, item.VariantName)
	for i := range c.Items {
		if c.Items[i].CartItemId == item.CartItemId {
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

func (c *Cart) Remove(cartItemId string) error {
	for i := range c.Items {
		if c.Items[i].CartItemId == cartItemId {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return errorx.New(responsex.CART_ITEM_NOT_FOUND, cartItemId)
}

// UpdateQuantity 數量 <= 0 視為移除
func (c *Cart) UpdateQuantity(cartItemId string, quantity int) error {
	if quantity <= 0 {
		return c.Remove(cartItemId)
	}
	for i := range c.Items {
		if c.Items[i].CartItemId == cartItemId {
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return errorx.New(responsex.CART_ITEM_NOT_FOUND, cartItemId)
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
