package main

import (
	"fmt"
	"log"
	"os"
	"pattern_demo/internal/app"
	"pattern_demo/internal/pkg/config"
	"pattern_demo/pkg/logger"
	"pattern_demo/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}
	cfg := config.GlobalConfig

	sync, err := logger.InitLogger(logger.Options{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
		Debug:    cfg.App.Debug,
	})
	if err != nil {
		log.Fatalf("fail to init logger, error: %v", err)
	}

	// 指标仅在进程内累计，运行结束后以 debug 日志输出汇总，不对外暴露
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	if err := app.NewConsoleApp(collector).Run(os.Stdin, os.Stdout); err != nil {
		sync()
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
	sync()
}
