package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/talentbridge/recruitment-client/internal/api"
	"github.com/talentbridge/recruitment-client/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(st *state) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local portal over the same views",
		Long: `serve exposes every view over HTTP on PORTAL_PORT. The portal holds a
single session: it is meant for one person on one machine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = st.cfg.Portal.Port
			}
			portalLog := logger.Named(st.log.Output(cmd.OutOrStdout()), "portal")

			e := api.NewRouter(api.Deps{
				Sessions:   st.app.Sessions,
				Students:   st.app.Students,
				Recruiters: st.app.Recruiters,
				Probes:     st.app.Probes,
				Logger:     portalLog,
			})

			address := net.JoinHostPort("", port)
			portalLog.Info().Str("address", address).Msg("starting portal")

			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				portalLog.Info().Msg("shutting down portal")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return e.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default PORTAL_PORT)")
	return cmd
}
