package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Zaky-dc/shifaa-inventory/internal/config"
	"github.com/Zaky-dc/shifaa-inventory/internal/logger"
	"github.com/Zaky-dc/shifaa-inventory/internal/server"
	"github.com/Zaky-dc/shifaa-inventory/internal/util"
)

var (
	port    = flag.Int("port", 0, "porta do serviço (config.toml tem prioridade)")
	devMode = flag.Bool("dev", false, "modo de desenvolvimento")
	dataDir = flag.String("dataDir", "", "diretório de dados (sobrepõe a configuração)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Shifaa Inventory - Contagem de Stock")
	fmt.Println("==========================================")

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("falha ao carregar configuração, a usar predefinições: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	log := logger.Must(logger.New(cfg.Server.DevMode))
	defer log.Sync()

	srv, err := server.NewServer(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize server", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		log.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.Run(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("não foi possível abrir o navegador, aceda a %s\n", url)
		}
	} else {
		fmt.Printf("modo de desenvolvimento: aceda a %s\n", url)
	}

	fmt.Println("\nCtrl+C para parar o serviço...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\na encerrar o serviço...")
	if err := srv.Close(); err != nil {
		log.Warn("failed to close store", zap.Error(err))
	}
}
