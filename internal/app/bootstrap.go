package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/config"
	"talent-match/internal/delivery/http/routes"
	"talent-match/internal/ws"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	hub := ws.NewHub(c.Logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	wsh := ws.NewHandler(hub, c.Logger)
	routes.NewRegistry(c.Config, c.DB, c.Cache, c.Logger, wsh).Register(f)

	return &App{Fiber: f, Hub: hub}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	return New(container), container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
