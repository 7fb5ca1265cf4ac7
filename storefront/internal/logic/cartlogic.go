package logic

import (
	"context"

	"github.com/copo888/storefront_app/storefront/internal/cart"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type CartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) CartLogic {
	return CartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CartLogic) GetCart(cartId string) (*types.CartResponse, error) {
	c, err := l.svcCtx.Carts.Load(l.ctx, cartId)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

func (l *CartLogic) AddItem(cartId string, req *types.CartAddRequest) (*types.CartResponse, error) {
	l.Infof("Enter AddItem. cartId: %s, CartAddRequest: %+v", cartId, req)

	product, err := l.svcCtx.Catalog.Get(req.ProductId)
	if err != nil {
		return nil, err
	}
	variant, err := l.svcCtx.Catalog.Variant(product, req.VariantName)
	if err != nil {
		return nil, err
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	c, err := l.svcCtx.Carts.Update(l.ctx, cartId, func(c *cart.Cart) error {
		return c.Add(cart.Item{
			ProductId:   product.Id,
			ProductName: product.Name,
			VariantName: req.VariantName,
			Price:       variant.Price,
			Quantity:    quantity,
			ImageUrl:    product.ImageUrl(),
		})
	})
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

func (l *CartLogic) UpdateItem(cartId string, req *types.CartUpdateRequest) (*types.CartResponse, error) {
	l.Infof("Enter UpdateItem. cartId: %s, CartUpdateRequest: %+v", cartId, req)

	c, err := l.svcCtx.Carts.Update(l.ctx, cartId, func(c *cart.Cart) error {
		return c.UpdateQuantity(req.CartItemId, req.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

func (l *CartLogic) RemoveItem(cartId string, req *types.CartRemoveRequest) (*types.CartResponse, error) {
	l.Infof("Enter RemoveItem. cartId: %s, CartRemoveRequest: %+v", cartId, req)

	c, err := l.svcCtx.Carts.Update(l.ctx, cartId, func(c *cart.Cart) error {
		return c.Remove(req.CartItemId)
	})
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

func (l *CartLogic) ClearCart(cartId string) (*types.CartResponse, error) {
	if err := l.svcCtx.Carts.Delete(l.ctx, cartId); err != nil {
		return nil, err
	}
	return toCartResponse(cart.New(cartId)), nil
}

func toCartResponse(c *cart.Cart) *types.CartResponse {
	return &types.CartResponse{
		CartId:    c.Id,
		Items:     c.Items,
		Total:     c.Total().String(),
		ItemCount: c.ItemCount(),
	}
}
