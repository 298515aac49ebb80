package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fritz-home-client/internal/adapters/input/actions"
	"fritz-home-client/internal/adapters/output/fritzbox"
	"fritz-home-client/internal/adapters/output/persistence"
	"fritz-home-client/internal/domain/service"
)

func main() {
	var (
		rootURL    = flag.String("url", "", "controller root URL (default http://fritz.box)")
		username   = flag.String("user", "", "controller username (default admin)")
		configPath = flag.String("config", "", "connection profile path")
		logLevel   = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Warn().Str("level", *logLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if *rootURL == "" {
		*rootURL = os.Getenv("FRITZ_URL")
	}
	if *username == "" {
		*username = os.Getenv("FRITZ_USER")
	}

	// Flags and env win; the profile fills in whatever is still blank.
	if *configPath != "" {
		repo := persistence.NewJSONConfigRepository(*configPath)
		cfg, err := repo.Get(context.Background())
		if err != nil {
			log.Fatal().Err(err).Str("config_path", *configPath).Msg("loading connection profile failed")
		}
		if *rootURL == "" {
			*rootURL = cfg.RootURL
		}
		if *username == "" {
			*username = cfg.Username
		}
	}

	client := service.NewHomeClient(fritzbox.NewClient(), log.Logger)
	registry := actions.NewRegistry(client)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if args[0] == "actions" {
		for _, a := range registry.List() {
			params := ""
			if len(a.Params) > 0 {
				params = " (" + strings.Join(a.Params, ", ") + ")"
			}
			fmt.Printf("%-22s%s  %s\n", a.Name, params, a.Description)
		}
		return
	}

	ctx := context.Background()
	password := os.Getenv("FRITZ_PASSWORD")
	if err := client.OpenSession(ctx, password, *username, *rootURL); err != nil {
		log.Fatal().Err(err).Msg("opening session failed")
	}
	defer client.CloseSession()

	switch args[0] {
	case "devices":
		printLines(client.DeviceNames())
	case "switches":
		printLines(client.SwitchNames())
	case "run":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		result, err := registry.Execute(ctx, args[1], parseParams(args[2:]))
		if err != nil {
			log.Fatal().Err(err).Str("action", args[1]).Msg("action failed")
		}
		if result != nil {
			fmt.Println(result)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func parseParams(args []string) map[string]string {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			log.Fatal().Str("argument", arg).Msg("parameters must be key=value")
		}
		params[key] = value
	}
	return params
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: fritzctl [flags] <command>

Commands:
  actions               list all invocable actions
  devices               list all device names
  switches              list all switch names
  run <action> [k=v]..  run a named action

The password is read from FRITZ_PASSWORD.
`)
	flag.PrintDefaults()
}
