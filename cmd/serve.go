package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/briarwood-camp/camp-services/api/handlers"
	"github.com/briarwood-camp/camp-services/api/middleware"
	"github.com/briarwood-camp/camp-services/api/services"
	"github.com/briarwood-camp/camp-services/internal/authn"
	"github.com/briarwood-camp/camp-services/models"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer campDB.Close()

		if err := campDB.WaitForReady(dbReadyTimeout); err != nil {
			log.Fatal().Err(err).Msg("database never became ready")
		}

		log.Info().Msg("Running migrations...")
		if err := campDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		if err := seedFromConfig(); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin account and camp year")
		}

		service := &services.Service{
			Config: appCfg,
			DB:     campDB,
			Email:  initializeEmailClient(),
		}

		// Create routes
		r := mux.NewRouter()

		api := r.PathPrefix(appCfg.BasePath).Subrouter()
		api.Use(middleware.WithLogger)

		// Public routes
		api.HandleFunc("/auth/register-parent", handlers.RegisterParent(service)).Methods(http.MethodPost)
		api.HandleFunc("/auth/login", handlers.Login(service)).Methods(http.MethodPost)

		// Any authenticated account
		authed := api.NewRoute().Subrouter()
		authed.Use(middleware.BearerAuth(campDB))
		authed.HandleFunc("/auth/me", handlers.Me(service)).Methods(http.MethodGet)

		// Admin routes
		admin := api.PathPrefix("/admin").Subrouter()
		admin.Use(middleware.BearerAuth(campDB))
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.HandleFunc("/parents", handlers.CreateParent(service)).Methods(http.MethodPost)
		admin.HandleFunc("/campers", handlers.CreateCamper(service)).Methods(http.MethodPost)
		admin.HandleFunc("/campers", handlers.ListCampers(service)).Methods(http.MethodGet)
		admin.HandleFunc("/groups", handlers.CreateGroup(service)).Methods(http.MethodPost)
		admin.HandleFunc("/groups", handlers.ListGroups(service)).Methods(http.MethodGet)
		admin.HandleFunc("/groups/{group-id}/members", handlers.AddGroupMember(service)).Methods(http.MethodPost)
		admin.HandleFunc("/events", handlers.CreateEvent(service)).Methods(http.MethodPost)
		admin.HandleFunc("/events", handlers.ListEvents(service)).Methods(http.MethodGet)

		// Parent routes
		parent := api.PathPrefix("/parent").Subrouter()
		parent.Use(middleware.BearerAuth(campDB))
		parent.Use(middleware.RequireRole(models.RoleParent))
		parent.HandleFunc("/campers", handlers.AddChild(service)).Methods(http.MethodPost)
		parent.HandleFunc("/campers", handlers.ListChildren(service)).Methods(http.MethodGet)
		parent.HandleFunc("/enrollments", handlers.CreateEnrollment(service)).Methods(http.MethodPost)
		parent.HandleFunc("/enrollments", handlers.ListEnrollments(service)).Methods(http.MethodGet)
		parent.HandleFunc("/enrollments/{enrollment-id}", handlers.UpdateEnrollment(service)).Methods(http.MethodPut)
		parent.HandleFunc("/schedule", handlers.GetSchedule(service)).Methods(http.MethodGet)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

// seedFromConfig ensures the bootstrap admin account and the configured camp
// year exist. Safe to run on every start.
func seedFromConfig() error {
	hash, err := authn.HashPassword(appCfg.Seed.AdminPassword)
	if err != nil {
		return err
	}
	return campDB.SeedAdminAndYear(appCfg.Seed.AdminEmail, appCfg.Seed.AdminFullName, hash, appCfg.Seed.CampYear)
}

// initializeEmailClient builds an SES client when welcome emails are enabled,
// otherwise returns nil and the service skips sending.
func initializeEmailClient() services.EmailClient {
	if !appCfg.Email.Enabled {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(appCfg.Email.Region))
	if err != nil {
		log.Error().Err(err).Msg("unable to load AWS config, welcome emails disabled")
		return nil
	}

	return sesv2.NewFromConfig(cfg)
}
