package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/audit"
	"github.com/BruksfildServices01/trainer-manager/internal/auth"
	"github.com/BruksfildServices01/trainer-manager/internal/config"
	"github.com/BruksfildServices01/trainer-manager/internal/dataservice"
	dbpkg "github.com/BruksfildServices01/trainer-manager/internal/db"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/filestore"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/localstore"
	"github.com/BruksfildServices01/trainer-manager/internal/infra/mercadopago"
	infraRepo "github.com/BruksfildServices01/trainer-manager/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-manager/internal/routes"
)

func main() {

	cfg := config.Load()

	// ======================================================
	// PERSISTÊNCIA: nuvem quando há DATABASE_URL, senão local
	// ======================================================
	var (
		remote     dataservice.Remote
		local      localstore.Store
		creds      auth.CredentialStore
		auditStore audit.Store
	)

	if cfg.CloudEnabled() {
		db := dbpkg.NewDB(cfg)
		remote = infraRepo.NewRemoteGormRepository(db)
		creds = auth.NewGormCredentialStore(db)
		auditStore = audit.New(db)
		log.Println("persistence: cloud backend")
	} else {
		local = openLocalStore(cfg)
		creds = auth.NewLocalCredentialStore(local)
		auditStore = audit.NewMemoryStore()
		log.Printf("persistence: local %s store", cfg.LocalStore)
	}

	store := dataservice.New(remote, local)

	auditDispatcher := audit.NewDispatcher(auditStore)
	defer auditDispatcher.Close()

	// ======================================================
	// ANEXOS
	// ======================================================
	var uploader filestore.Uploader = filestore.NewInline()
	if cfg.S3Enabled() {
		uploader = filestore.NewS3(filestore.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}

	deps := routes.Deps{
		Config:     cfg,
		Store:      store,
		Auth:       auth.NewService(creds, cfg.JWTSecret),
		AuditStore: auditStore,
		Audit:      auditDispatcher,
		Uploader:   uploader,
	}

	// ======================================================
	// ASSINATURA
	// ======================================================
	if cfg.SubscriptionsEnabled() {
		gw, err := mercadopago.New(cfg.MPAccessToken, cfg.PublicURL)
		if err != nil {
			log.Fatalf("failed to configure mercadopago: %v", err)
		}
		deps.Gateway = gw
	}

	r := gin.Default()
	routes.RegisterRoutes(r, deps)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// openLocalStore picks the fallback store named by LOCAL_STORE.
func openLocalStore(cfg *config.Config) localstore.Store {
	switch cfg.LocalStore {
	case config.LocalStoreSQLite:
		s, err := localstore.OpenSQLite(cfg.LocalStorePath)
		if err != nil {
			log.Fatalf("failed to open sqlite store: %v", err)
		}
		return s

	case config.LocalStoreRedis:
		s, err := localstore.NewRedis(cfg.RedisURL, "trainer-manager:")
		if err != nil {
			log.Fatalf("failed to open redis store: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Ping(ctx); err != nil {
			log.Fatalf("redis unreachable: %v", err)
		}
		return s
	}

	return localstore.NewMemory()
}
