package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/copo888/storefront_app/storefront/internal/config"
	"github.com/copo888/storefront_app/storefront/internal/handler"
	"github.com/copo888/storefront_app/storefront/internal/svc"
	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var (
	configFile = flag.String("f", "storefront/etc/storefront.yaml", "the config file")
	envFile    = flag.String("env", "storefront/etc/.env", "the env file")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		logx.Error(err.Error())
		log.Fatal("Error loading .env file")
	}

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	ctx := svc.NewServiceContext(c)
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
