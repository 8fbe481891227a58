// Command mailcheck sends one test email through SendGrid to confirm the
// mail settings work.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"famcal/config"
	"famcal/models"
	"famcal/utils"

	"github.com/rs/zerolog/log"
)

func main() {
	to := flag.String("to", "", "recipient address")
	kind := flag.String("kind", "early-access", "message to send: early-access or feedback")
	flag.Parse()

	cfg := config.Load()
	utils.SetupLogger(cfg.LogLevel, cfg.IsProduction())
	log.Info().Str("environment", cfg.AppEnv).Msg("mailcheck")

	if cfg.Mail.SendGridKey == "" {
		log.Fatal().Msg("SENDGRID_API_KEY is not set")
	}
	if err := utils.ValidateEmail(*to); err != nil {
		log.Fatal().Err(err).Str("to", *to).Msg("bad -to flag")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	switch *kind {
	case "early-access":
		err = utils.NewMailer(cfg.Mail.SendGridKey, cfg.Mail.From, "").ConfirmEarlyAccess(ctx, *to)
	case "feedback":
		fb := models.Feedback{Message: "Test feedback sent by mailcheck."}
		err = utils.NewMailer(cfg.Mail.SendGridKey, cfg.Mail.From, *to).NotifyFeedback(ctx, fb)
	default:
		log.Fatal().Str("kind", *kind).Msg("unknown -kind")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("send failed")
	}
	fmt.Println("sent", *kind, "mail to", *to)
}
