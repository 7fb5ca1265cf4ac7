package redisKey

const (
	CACHE_CART_DATA                  = "cache:cart:data:"               // 購物車
	CACHE_PAY_ORDER_CHANNEL_REDIRECT = "cache:payChannelRedirect:data:" // 渠道导向参数
)
