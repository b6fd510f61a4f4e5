package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"garden-planner-backend/internal/auth"
)

var (
	tokenSecret  string
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the admin endpoints",
	Long: `Issue an HS256 token accepted by the server's admin endpoints.
The secret defaults to the JWT_SECRET environment variable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := tokenSecret
		if secret == "" {
			secret = os.Getenv("JWT_SECRET")
		}

		authService, err := auth.NewAuthService(secret)
		if err != nil {
			return err
		}
		token, err := authService.GenerateJWT(tokenSubject, tokenRole, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Signing secret (default $JWT_SECRET)")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "Token subject")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "admin", "Role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
}
