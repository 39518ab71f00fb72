package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/redisclient"
	"github.com/RoyceAzure/lab/storefront/internal/infra/supabase"
	"github.com/RoyceAzure/lab/storefront/internal/service/admin"
	"github.com/RoyceAzure/lab/storefront/internal/service/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/service/orders"
	"github.com/RoyceAzure/lab/storefront/internal/service/profile"
	"github.com/RoyceAzure/lab/storefront/internal/store/cart"
	"github.com/RoyceAzure/lab/storefront/internal/store/localstore"
	"github.com/RoyceAzure/lab/storefront/internal/store/locale"
	"github.com/RoyceAzure/lab/storefront/internal/store/session"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type ApplicationContext struct {
	Cf             *config.Config
	Logger         *zerolog.Logger
	Supabase       *supabase.Client
	Redis          *redis.Client
	LocalStorage   *localstore.Store
	CartStore      *cart.Store
	LocaleStore    *locale.Store
	SessionStore   *session.Store
	ProfileService profile.IProfileService
	Catalog        catalog.IFetcher
	OrderService   orders.IOrderService
	AdminService   *admin.Service
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpSupabase()
	if err != nil {
		return err
	}
	err = app.setUpLocalStorage()
	if err != nil {
		return err
	}
	app.setUpRedis()
	app.setUpStores()
	app.setUpServices()

	// 還原既有登入狀態並開始監聽認證事件
	log.Printf("restoring auth session...")
	app.SessionStore.Start(context.Background())
	log.Printf("restore auth session done")

	return nil
}

func (app *ApplicationContext) setUpLogger() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()
	app.Logger = &logger
}

func (app *ApplicationContext) setUpSupabase() error {
	log.Printf("Start setup supabase client")
	if app.Cf.SupabaseURL == "" || app.Cf.SupabaseAnonKey == "" {
		return fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY are required")
	}
	app.Supabase = supabase.NewClient(app.Cf.SupabaseURL, app.Cf.SupabaseAnonKey)
	log.Printf("Finish setup supabase client")
	return nil
}

func (app *ApplicationContext) setUpLocalStorage() error {
	log.Printf("Start setup local storage")
	app.LocalStorage = localstore.New(app.Cf.DataDir, *app.Logger)
	log.Printf("Finish setup local storage")
	return nil
}

// redis 沒設定就不啟用快取，catalog 直接打遠端
func (app *ApplicationContext) setUpRedis() {
	if app.Cf.RedisAddr == "" {
		log.Printf("redis not configured, catalog cache disabled")
		return
	}
	log.Printf("Start setup redis")
	client, err := redisclient.GetRedisClient(app.Cf.RedisAddr,
		redisclient.WithPassword(app.Cf.RedisPassword))
	if err != nil {
		log.Printf("redis unavailable, catalog cache disabled: %v", err)
		return
	}
	app.Redis = client
	log.Printf("Finish setup redis")
}

func (app *ApplicationContext) setUpStores() {
	log.Printf("Start setup stores")
	app.CartStore = cart.NewStore(app.LocalStorage)
	app.LocaleStore = locale.NewStore(app.LocalStorage)
	log.Printf("Finish setup stores")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	app.ProfileService = profile.NewService(app.Supabase)
	app.SessionStore = session.NewStore(app.Supabase.Auth(), app.ProfileService, *app.Logger)

	fetcher := catalog.NewService(app.Supabase)
	app.Catalog = catalog.NewCachedFetcher(fetcher, app.Redis, app.Cf.CacheTTL(), *app.Logger)

	app.OrderService = orders.NewService(app.Supabase)
	app.AdminService = admin.NewService(app.Supabase)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.SessionStore != nil {
			app.SessionStore.Close()
		}

		if app.Redis != nil {
			log.Printf("Closing redis connection...")
			if err := app.Redis.Close(); err != nil {
				log.Printf("redis close error: %v", err)
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
