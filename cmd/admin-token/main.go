// Command admin-token mints a short-lived admin JWT for operators. Account
// management lives outside this service, so tokens are issued from the
// shared signing secret.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gold-settlement/config"
	"gold-settlement/internal/service"

	"github.com/google/uuid"
)

func main() {
	actor := flag.String("actor", "", "operator UUID recorded as the audit actor")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to jwt.expiry)")
	configPath := flag.String("config", "", "optional config file")
	flag.Parse()

	actorID, err := uuid.Parse(*actor)
	if err != nil {
		fmt.Fprintln(os.Stderr, "-actor must be a UUID")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is not configured")
		os.Exit(1)
	}
	expiry := cfg.JWT.Expiry
	if *ttl > 0 {
		expiry = *ttl
	}

	tokens := service.NewJWTTokenService(cfg.JWT.Secret, expiry, cfg.JWT.Issuer)
	token, expiresAt, err := tokens.Generate(actorID, "admin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
}
