package logic

import (
	"context"

	"github.com/copo888/storefront_app/storefront/internal/catalog"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/copo888/storefront_app/storefront/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type CatalogLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCatalogLogic(ctx context.Context, svcCtx *svc.ServiceContext) CatalogLogic {
	return CatalogLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CatalogLogic) Categories(req *types.CategoriesRequest, acceptLanguage string) (resp *types.CategoriesResponse, err error) {
	lang := catalog.ParseLanguage(req.Lang, acceptLanguage)
	resp = &types.CategoriesResponse{Lang: string(lang)}
	for _, category := range l.svcCtx.Catalog.Categories() {
		resp.Categories = append(resp.Categories, types.CategoryVO{
			Key:  category.En,
			Name: category.Get(lang),
			All:  category,
		})
	}
	return
}

func (l *CatalogLogic) ProductList(req *types.ProductListRequest, acceptLanguage string) (resp *types.ProductListResponse, err error) {
	lang := catalog.ParseLanguage(req.Lang, acceptLanguage)
	resp = &types.ProductListResponse{Lang: string(lang), Products: []types.ProductVO{}}
	for _, p := range l.svcCtx.Catalog.List(req.Category) {
		resp.Products = append(resp.Products, toProductVO(p, lang))
	}
	return
}

func (l *CatalogLogic) Product(req *types.ProductRequest, acceptLanguage string) (resp *types.ProductVO, err error) {
	p, err := l.svcCtx.Catalog.Get(req.Id)
	if err != nil {
		l.Errorf("商品不存在 productId: %d", req.Id)
		return nil, err
	}
	vo := toProductVO(*p, catalog.ParseLanguage(req.Lang, acceptLanguage))
	return &vo, nil
}

func toProductVO(p catalog.Product, lang catalog.Language) types.ProductVO {
	return types.ProductVO{
		Product:            p,
		DisplayName:        p.Name.Get(lang),
		DisplayDescription: p.Description.Get(lang),
		DisplayCategory:    p.Category.Get(lang),
	}
}
