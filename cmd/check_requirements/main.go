package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/bootstrap"
	"github.com/zXpect/Panel-admln-ADS-backend/internal/config"

	"github.com/fatih/color"
)

func main() {
	workerId := flag.String("worker", "", "worker id to check")
	flag.Parse()
	if *workerId == "" {
		color.Red("Usage: check_requirements -worker <id>")
		os.Exit(2)
	}

	cfg := config.Load()
	container, err := bootstrap.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Unable to bootstrap: %v", err)
	}
	defer container.Close()

	ctx := context.Background()
	res, err := container.DocumentService.CheckRequirements(ctx, *workerId)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}

	color.Cyan("🔍 Requirements for worker %s (policy: %s)\n", res.WorkerId, res.Policy)
	printCheck("Hoja de vida", res.HasHojaVida)
	printCheck("Antecedentes judiciales", res.HasAntecedentes)
	printCheck("Título", res.HasTitulo)
	printCheck("Cartas de recomendación", res.HasMinimumCartas)
	color.White("   cartas: %d", res.CartasCount)

	history, err := container.DocumentService.GetHistory(ctx, *workerId, 1, 5)
	if err == nil && len(history) > 0 {
		color.Yellow("\nLatest reviews")
		for _, h := range history {
			color.White("   %s %s by %q", h.Action, h.DocumentType, h.ReviewerId)
		}
	}

	if res.IsComplete {
		color.Green("\n✅ Complete")
		return
	}
	color.Red("\n❌ Incomplete")
	os.Exit(1)
}

func printCheck(label string, ok bool) {
	if ok {
		color.Green("   ✔ %s", label)
		return
	}
	color.Red("   ✘ %s", label)
}
