package main

import (
	"context"
	"errors"
	"os"

	"github.com/yogasw/portal-jualan/internal/app"
	"github.com/yogasw/portal-jualan/internal/config"
	"github.com/yogasw/portal-jualan/internal/logger"
)

func main() {
	conf := config.MustLoadSalesConfig()
	l := logger.New(os.Stdout)

	if err := app.NewSales(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
