package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "juniper",
		Usage: "Outils de localisation du jeu Juniper Green",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "locales-dir",
				Usage: "répertoire des catalogues de langues",
			},
			&cli.StringFlag{
				Name:  "default-lang",
				Usage: "langue de repli des traductions",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "fichier de préférences",
			},
		},
		Commands: []*cli.Command{
			languagesCmd,
			resolveCmd,
			showHelpCmd,
			setLanguageCmd,
			verifyCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}
