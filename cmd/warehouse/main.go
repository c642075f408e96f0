package main

import (
	"flag"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"

	"warehouse-screenshots/internal/config"
	"warehouse-screenshots/internal/i18n"
	"warehouse-screenshots/internal/logger"
	"warehouse-screenshots/internal/ui"
	"warehouse-screenshots/pkg/gallery"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.Log, os.Stderr)

	cat, err := i18n.New(cfg.Locale, nil)
	if err != nil {
		log.Error("load translations", "error", err)
		os.Exit(1)
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title(cat.T(i18n.Header)))
		w.Option(app.Size(unit.Dp(420), unit.Dp(860)))

		root, err := ui.NewApp(ui.Deps{
			Theme:      ui.NewTheme(),
			Catalog:    cat,
			Library:    gallery.NewDirLibrary(cfg.Library.Dir),
			Options:    cfg.Gallery.Options(),
			Logger:     log,
			Invalidate: w.Invalidate,
		})
		if err != nil {
			log.Error("start ui", "error", err)
			os.Exit(1)
		}

		log.Info("warehouse started", "locale", cat.Tag().String(), "library", cfg.Library.Dir)
		if err := run(w, root); err != nil {
			log.Error("window", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window, root *ui.App) error {
	defer root.Close()
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			root.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
