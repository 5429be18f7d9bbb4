package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"trackd/internal/infrastructure/auth"
	"trackd/internal/infrastructure/config"
)

var (
	env     string
	subject string
	name    string
	email   string
	picture string
	ttl     time.Duration
)

// NewCommand builds the token command. It signs identity tokens with the
// configured secret so local clients can call the API without a real
// identity provider.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a development identity token",
		Long:  `Sign a JWT identity token for local development and testing against the configured secret.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&subject, "subject", "", "Identity provider subject (required)")
	cmd.Flags().StringVar(&name, "name", "Dev User", "Display name claim")
	cmd.Flags().StringVar(&email, "email", "", "Email claim (required)")
	cmd.Flags().StringVar(&picture, "picture", "", "Avatar URL claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.Issuer,
		cfg.Auth.JWT.Audience,
	)

	signed, err := jwtService.Generate(subject, name, email, picture, ttl)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Println(signed)
	return nil
}
