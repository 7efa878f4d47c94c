package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/connectome-neuprint/neuprint-go/internal/config"
	myHTTP "github.com/connectome-neuprint/neuprint-go/internal/handler/http"
	"github.com/connectome-neuprint/neuprint-go/internal/logger"
	"github.com/connectome-neuprint/neuprint-go/internal/server"
	"github.com/connectome-neuprint/neuprint-go/internal/utils"
	"github.com/connectome-neuprint/neuprint-go/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := pflag.NewFlagSet("neuprint-sandbox", pflag.ExitOnError)
	flags := config.BindSandboxFlags(fs)
	mintEmail := fs.String("mint-token", "", "print a token for this email signed with the sign key, then exit")
	mintTTL := fs.Duration("mint-ttl", 24*time.Hour, "lifetime of a minted token, 0 for no expiry")
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("neuprint-sandbox")
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetSandboxConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if *mintEmail != "" {
		token, err := utils.GenerateJWTToken(myHTTP.TokenIssuer, *mintEmail, "readonly", *mintTTL, cfg.SignKey)
		if err != nil {
			log.Fatal().Err(err).Msg("error minting token (is --sign-key set?)")
		}
		fmt.Println(token.String())
		return
	}

	fixtures := myHTTP.DefaultFixtures()
	if cfg.FixturesPath != "" {
		if fixtures, err = myHTTP.LoadFixtures(cfg.FixturesPath); err != nil {
			log.Fatal().Err(err).Msg("error loading fixtures")
		}
	}

	handler := myHTTP.NewHandler(fixtures, cfg.SignKey, log)

	srv, err := server.NewServer(handler.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
