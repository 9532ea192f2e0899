package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alexsander532/projeto-dashboard-versao1/internal/usecases/authenticating"
	"github.com/Alexsander532/projeto-dashboard-versao1/pkg/middleware"
)

// NewTokenCommand emite um token de acesso à API; não há cadastro de usuários
func NewTokenCommand() *cobra.Command {
	var (
		userID int
		name   string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Emite um token JWT para acessar a API",
		Example: `  ingest token --name "Equipe comercial" --role analyst --ttl 720h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roleID, ok := middleware.RoleByName[role]
			if !ok {
				return fmt.Errorf("%w: %s", authenticating.ErrInvalidRole, role)
			}

			token, err := authenticating.NewService(getConfig(cmd).TokenSecret()).IssueToken(userID, name, roleID, ttl)
			if err != nil {
				return err
			}

			cmd.Println(token)
			return nil
		},
	}

	cmd.Flags().IntVar(&userID, "user-id", 1, "Identificador gravado no token")
	cmd.Flags().StringVar(&name, "name", "admin", "Nome gravado no token")
	cmd.Flags().StringVar(&role, "role", "admin", "Perfil: admin, analyst ou viewer")
	cmd.Flags().DurationVar(&ttl, "ttl", authenticating.DefaultTTL, "Validade do token")

	return cmd
}
