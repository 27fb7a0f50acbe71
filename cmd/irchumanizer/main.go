package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"irchumanizer/internal/config"
	"irchumanizer/internal/irc"
	"irchumanizer/internal/memory"
	v "irchumanizer/internal/version"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log.Printf("[INFO] Starting %v...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	conversations, err := memory.New(cfg.Memory.File, cfg.Memory.MaxMessagesPerContext)
	if err != nil {
		log.Fatal(err)
	}
	defer conversations.Close()

	bot, err := irc.NewBot(cfg, conversations)
	if err != nil {
		log.Fatal(err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] IRC bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] IRC bot exited cleanly")
}
