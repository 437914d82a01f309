package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"github.com/w0uf/Juniper/internal/adapters/console"
	"github.com/w0uf/Juniper/internal/adapters/desktop"
	"github.com/w0uf/Juniper/internal/application"
	"github.com/w0uf/Juniper/internal/config"
	"github.com/w0uf/Juniper/internal/domain"
	"github.com/w0uf/Juniper/internal/infrastructure/helpdocs"
	"github.com/w0uf/Juniper/internal/infrastructure/i18n"
	"github.com/w0uf/Juniper/internal/infrastructure/preferences"
	"github.com/w0uf/Juniper/internal/infrastructure/syslocale"
	"github.com/w0uf/Juniper/internal/ports/input"
	"github.com/w0uf/Juniper/internal/ports/output"
	"github.com/w0uf/Juniper/internal/verify"
)

type services struct {
	cfg    *config.Config
	store  *i18n.Store
	locale input.LocaleUseCase
}

// loadConfig charge la configuration puis applique les drapeaux globaux.
func loadConfig(cctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir := cctx.String("locales-dir"); dir != "" {
		cfg.LocalesDir = dir
	}
	if lang := cctx.String("default-lang"); lang != "" {
		cfg.DefaultLanguage = lang
	}
	if path := cctx.String("prefs"); path != "" {
		cfg.PreferencesFile = path
	}
	return cfg, nil
}

func buildServices(cctx *cli.Context) (*services, error) {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return nil, err
	}

	store, err := i18n.New(cfg.LocalesDir, cfg.DefaultLanguage)
	if err != nil {
		// Dégradé mais utilisable : catalogues partiels ou textes embarqués.
		log.Printf("⚠️ Chargement des langues incomplet: %v", err)
	}

	locale := application.NewLocaleService(
		store,
		preferences.New(cfg.PreferencesFile),
		syslocale.Provider{},
		cfg.DefaultLanguage,
	)

	return &services{cfg: cfg, store: store, locale: locale}, nil
}

var languagesCmd = &cli.Command{
	Name:  "languages",
	Usage: "Liste les langues installées",
	Action: func(cctx *cli.Context) error {
		svc, err := buildServices(cctx)
		if err != nil {
			return err
		}

		current := svc.locale.Current()
		for _, lang := range svc.locale.Languages() {
			marker := "  "
			if lang.Code == current {
				marker = "* "
			}
			fmt.Printf("%s%s  %s\n", marker, lang.Code, lang.Name)
		}
		return nil
	},
}

var resolveCmd = &cli.Command{
	Name:      "resolve",
	Usage:     "Affiche la traduction d'une clé",
	ArgsUsage: "<clé> [langue]",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() < 1 {
			return cli.Exit("usage: juniper resolve <clé> [langue]", 2)
		}
		svc, err := buildServices(cctx)
		if err != nil {
			return err
		}

		key := cctx.Args().Get(0)
		lang := cctx.Args().Get(1)
		if lang == "" {
			lang = svc.locale.Current()
		}

		text, err := svc.store.Resolve(lang, key)
		if err != nil {
			if text == "" {
				return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
			}
			log.Printf("⚠️ %v, texte de la langue par défaut", err)
		}
		fmt.Println(text)
		return nil
	},
}

var showHelpCmd = &cli.Command{
	Name:      "show-help",
	Usage:     "Affiche l'aide du jeu",
	ArgsUsage: "[langue]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-open",
			Usage: "force la boîte modale, sans visualiseur externe",
		},
	},
	Action: func(cctx *cli.Context) error {
		svc, err := buildServices(cctx)
		if err != nil {
			return err
		}

		lang := cctx.Args().Get(0)
		if lang == "" {
			lang = svc.locale.Current()
		}

		var opener output.DocumentOpener = desktop.Opener{}
		if cctx.Bool("no-open") {
			opener = disabledOpener{}
		}

		help := application.NewHelpService(
			svc.store,
			helpdocs.New(svc.cfg.LocalesDir),
			opener,
			console.New(),
		)
		help.ShowHelp(cctx.Context, lang)
		return nil
	},
}

var setLanguageCmd = &cli.Command{
	Name:      "set-language",
	Usage:     "Change la langue active et l'enregistre dans les préférences",
	ArgsUsage: "<code>",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return cli.Exit("usage: juniper set-language <code>", 2)
		}
		svc, err := buildServices(cctx)
		if err != nil {
			return err
		}

		code := cctx.Args().First()
		if err := svc.locale.SetLanguage(code); err != nil {
			return cli.Exit(fmt.Sprintf("❌ %v", err), 1)
		}
		fmt.Printf("✅ Langue active : %s\n", code)
		return nil
	},
}

var verifyCmd = &cli.Command{
	Name:  "verify",
	Usage: "Vérifie l'installation (catalogues, aides, préférences)",
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}

		report := verify.Run(cfg.LocalesDir, cfg.DefaultLanguage, cfg.PreferencesFile)

		fmt.Println("🔍 Vérification de l'installation")
		fmt.Println()
		fmt.Println("📂 Répertoire des langues :")
		printCheck(report.Dir)
		fmt.Println()
		fmt.Println("🌐 Catalogues :")
		printCheck(report.Default)
		for _, c := range report.Locales {
			printCheck(c)
		}
		fmt.Println()
		fmt.Println("📄 Documents d'aide :")
		for _, c := range report.Help {
			printCheck(c)
		}
		fmt.Println()
		fmt.Println("⚙️ Préférences :")
		printCheck(report.Prefs)
		fmt.Println()

		if report.Broken() {
			return cli.Exit("❌ Installation incomplète !", 1)
		}
		fmt.Println("✅ Installation correcte !")
		return nil
	},
}

func printCheck(c verify.Check) {
	if c.Detail != "" {
		fmt.Printf("  %s %s (%s)\n", c.Status.Marker(), c.Label, c.Detail)
		return
	}
	fmt.Printf("  %s %s\n", c.Status.Marker(), c.Label)
}

// disabledOpener refuse toute ouverture externe (drapeau --no-open).
type disabledOpener struct{}

func (disabledOpener) Open(_ context.Context, ref string) error {
	return &domain.ExternalOpenError{Doc: ref, Err: errors.New("ouverture externe désactivée")}
}
