package catalog

import "github.com/shopspring/decimal"

const productImageUrl = "https://clay.com.tw/img/all_color.7890c0fd.jpg"

var (
	polymerClay  = LocalizedString{En: "Polymer Clay", ZhTW: "軟陶土", ZhCN: "软陶土"}
	fiveColorSet = LocalizedString{En: "5 Color Set", ZhTW: "五色軟陶", ZhCN: "五色软陶"}
	tenColorSet  = LocalizedString{En: "10 Color Set", ZhTW: "十色軟陶", ZhCN: "十色软陶"}
	liquidClay   = LocalizedString{En: "Liquid Clay", ZhTW: "液體軟陶", ZhCN: "液体软陶"}
	varnish      = LocalizedString{En: "Varnish", ZhTW: "亮光漆", ZhCN: "亮光漆"}
)

var (
	generalColorCodes = []string{
		"M1", "M2", "M3", "M4", "M5", "M6", "M7",
		"R1", "R2", "R3", "R4",
		"B1", "B2", "B3", "B4",
		"O1", "O2", "O3", "O4",
		"Ga1", "Ga2", "Ga3", "Ga4",
		"G1", "G2", "G3", "G4",
		"P1", "P2", "P3", "P4",
	}
	specialColorCodes      = []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8"}
	extraSpecialColorCodes = []string{"M8"}
)

func defaultCategories() []LocalizedString {
	return []LocalizedString{polymerClay, fiveColorSet, tenColorSet, liquidClay, varnish}
}

func variants(codes []string, price int64) []Variant {
	items := make([]Variant, 0, len(codes))
	for _, code := range codes {
		items = append(items, Variant{Name: code, Price: decimal.NewFromInt(price)})
	}
	return items
}

func colorVariantGroups(general, special, extraSpecial int64) []VariantGroup {
	return []VariantGroup{
		{
			Label: LocalizedString{En: "General Colors", ZhTW: "一般色", ZhCN: "一般色"},
			Items: variants(generalColorCodes, general),
		},
		{
			Label: LocalizedString{En: "Special Colors", ZhTW: "特殊色", ZhCN: "特殊色"},
			Items: variants(specialColorCodes, special),
		},
		{
			Label: LocalizedString{En: "Extra Special Colors", ZhTW: "特級特殊色", ZhCN: "特级特殊色"},
			Items: variants(extraSpecialColorCodes, extraSpecial),
		},
	}
}

func defaultProducts() []Product {
	return []Product{
		{
			Id:   1,
			Name: LocalizedString{En: "Polymer Clay 50g", ZhTW: "軟陶土 50g", ZhCN: "软陶土 50g"},
			Description: LocalizedString{
				En:   "A single 50g block of high-quality polymer clay. Choose your favorite color from our wide selection. Perfect for small projects and detailed work.",
				ZhTW: "單塊50克高品質軟陶土。從我們豐富的顏色中選擇您最喜歡的顏色。非常適合小型項目和精細工作。",
				ZhCN: "单块50克高品质软陶土。从我们丰富的颜色中选择您最喜欢的颜色。非常适合小型项目和精细工作。",
			},
			Price:         decimal.NewFromInt(85),
			ImageUrls:     []string{productImageUrl},
			Category:      polymerClay,
			VariantGroups: colorVariantGroups(85, 95, 100),
		},
		{
			Id:   2,
			Name: LocalizedString{En: "Polymer Clay 100g", ZhTW: "軟陶土 100g", ZhCN: "软陶土 100g"},
			Description: LocalizedString{
				En:   "A single 100g block of high-quality polymer clay. Choose your favorite color. Larger size for bigger creations.",
				ZhTW: "單塊100克高品質軟陶土。選擇您最喜歡的顏色。尺寸較大，適合較大的創作。",
				ZhCN: "单块100克高品质软陶土。选择您最喜欢的颜色。尺寸较大，适合较大的创作。",
			},
			Price:         decimal.NewFromInt(155),
			ImageUrls:     []string{productImageUrl},
			Category:      polymerClay,
			VariantGroups: colorVariantGroups(155, 165, 180),
		},
		{
			Id:   3,
			Name: LocalizedString{En: "Polymer Clay 200g", ZhTW: "軟陶土 200g", ZhCN: "软陶土 200g"},
			Description: LocalizedString{
				En:   "A single 200g block of high-quality polymer clay. Choose your favorite color. Bulk size for the serious artist.",
				ZhTW: "單塊200克高品質軟陶土。選擇您最喜歡的顏色。大包裝，專業藝術家首選。",
				ZhCN: "单块200克高品质软陶土。选择您最喜欢的颜色。大包装，专业艺术家首选。",
			},
			Price:         decimal.NewFromInt(290),
			ImageUrls:     []string{productImageUrl},
			Category:      polymerClay,
			VariantGroups: colorVariantGroups(290, 310, 340),
		},
		{
			Id:   4,
			Name: LocalizedString{En: "Liquid Polymer Clay (50ml)", ZhTW: "液體軟陶 50ml/瓶", ZhCN: "液体软陶 50ml/瓶"},
			Description: LocalizedString{
				En:   "50ml bottle of translucent liquid polymer clay, bakeable and perfect for glazing, transfers, and finishing touches.",
				ZhTW: "50ml瓶裝半透明液體軟陶，可烘烤，非常適合用於上光、轉印和細節修飾。",
				ZhCN: "50ml瓶装半透明液体软陶，可烘烤，非常适合用于上光、转印和细节修饰。",
			},
			Price:     decimal.NewFromInt(150),
			ImageUrls: []string{"https://down-tw.img.susercontent.com/file/30bfa65cd154be321d4185ff2b054261@resize_w900_nl.webp"},
			Category:  liquidClay,
		},
		{
			Id:   5,
			Name: LocalizedString{En: "Gloss Varnish (15ml)", ZhTW: "亮光漆 15ml/瓶", ZhCN: "亮光漆 15ml/瓶"},
			Description: LocalizedString{
				En:   "15ml bottle of durable, super glossy varnish to seal and protect your polymer clay creations.",
				ZhTW: "15ml瓶裝耐用的高光澤清漆，可密封和保護您的軟陶作品。",
				ZhCN: "15ml瓶装耐用的高光泽清漆，可密封和保护您的软陶作品。",
			},
			Price:     decimal.NewFromInt(110),
			ImageUrls: []string{"https://down-tw.img.susercontent.com/file/56730736f65efbd50332143b47394b07@resize_w900_nl.webp"},
			Category:  varnish,
		},
		{
			Id:   6,
			Name: LocalizedString{En: "5 Colors Polymer Clay Set", ZhTW: "五色軟陶", ZhCN: "五色软陶"},
			Description: LocalizedString{
				En:   "A small pack of 5 primary colors, ideal for small projects or mixing.",
				ZhTW: "包含5種基本顏色的軟陶入門套裝。",
				ZhCN: "一小包5种原色，非常适合小型项目或混色使用。",
			},
			Price:     decimal.NewFromInt(170),
			ImageUrls: []string{"https://down-tw.img.susercontent.com/file/77a2ae63482e0f79331dfbc22e4a9f42.webp"},
			Category:  fiveColorSet,
		},
		{
			Id:   7,
			Name: LocalizedString{En: "10 Colors Polymer Clay Set", ZhTW: "十色軟陶", ZhCN: "十色软陶"},
			Description: LocalizedString{
				En:   "A basic starter set with 10 essential colors of polymer clay.",
				ZhTW: "包含10種基本顏色的軟陶入門套裝。",
				ZhCN: "包含10种基本颜色的软陶入门套装。",
			},
			Price:     decimal.NewFromInt(330),
			ImageUrls: []string{"https://down-tw.img.susercontent.com/file/tw-11134207-7r98q-lvby5bfu6g1lf2@resize_w900_nl.webp"},
			Category:  tenColorSet,
		},
	}
}
