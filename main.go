package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cbs4385/labyrinth-api/api"
	api_i "github.com/cbs4385/labyrinth-api/api/i"
	"github.com/cbs4385/labyrinth-api/api/identity"
	labyrinthapi "github.com/cbs4385/labyrinth-api/api/labyrinth"
	"github.com/cbs4385/labyrinth-api/config"
	"github.com/cbs4385/labyrinth-api/infrastruture/cache"
	"github.com/cbs4385/labyrinth-api/infrastruture/repo"
	"github.com/cbs4385/labyrinth-api/infrastruture/token"
	"github.com/cbs4385/labyrinth-api/logger"
	"github.com/cbs4385/labyrinth-api/service"
	"github.com/cbs4385/labyrinth-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient         *mongo.Client
	redisClient         *redis.Client
	userRepo            i.UserRepo
	labyrinthRepo       i.LabyrinthRepo
	layoutCache         i.LayoutCache
	jwtTokenizer        i.Tokenizer
	authService         i.Authenticator
	labyrinthService    i.LabyrinthGenerator
	authController      api_i.Controller
	labyrinthController api_i.Controller
	router              *api.Router
	appLogger           logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	labyrinthRepo = repo.NewLabyrinthRepo(client, config.Envs.DBName, "labyrinths")
	appLogger.Info("Repositories initialized")
}

func initLayoutCache() {
	var err error
	layoutCache, err = cache.NewRedisLayoutCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating layout cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Layout cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initLabyrinthService() {
	generatorLogger, err := logger.New("LABYRINTH", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating labyrinth logger: %v", err))
		os.Exit(1)
	}

	labyrinthService, err = service.NewLabyrinthService(labyrinthRepo, layoutCache, generatorLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating labyrinth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Labyrinth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initLabyrinthController() {
	var err error
	labyrinthController, err = labyrinthapi.NewLabyrinthController(labyrinthService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating labyrinth controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Labyrinth controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, labyrinthController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initLayoutCache()
	initJWTTokenizer()
	initAuthService()
	initLabyrinthService()
	initAuthController()
	initLabyrinthController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
