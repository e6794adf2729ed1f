package configprovider

import (
	"log"
	"os"
	"strconv"
	"strings"

	"assetbot/providers"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultSnipeITURL     = "https://mukilteowa.snipe-it.io/api/v1"
	defaultOpenAIModel    = "gpt-4-turbo"
	defaultServerPort     = "8000"
	defaultCarrierDataDir = "data"
	defaultDebugDumpDir   = "cleaned_data"
)

type EnvConfigProvider struct {
	snipeITURL     string
	SnipeITAPIKey  string `validate:"required"`
	OpenAIAPIKey   string `validate:"required"`
	BotAppID       string `validate:"required"`
	BotAppPassword string `validate:"required"`
	openAIModel    string
	serverPort     string
	carrierDataDir string
	debugDumpDir   string
	debug          bool
	botAuth        bool
	refreshPerTurn bool
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

// LoadEnv reads configuration from .env (when present) and the process
// environment. A missing credential is returned as an error.
func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.SnipeITAPIKey = os.Getenv("SNIPE_IT_API_KEY")
	e.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	e.BotAppID = os.Getenv("AZURE_BOT_APP_ID")
	e.BotAppPassword = os.Getenv("AZURE_BOT_APP_PASSWORD")

	e.snipeITURL = strings.TrimRight(getEnvOr("SNIPE_IT_API_URL", defaultSnipeITURL), "/")
	e.openAIModel = getEnvOr("OPENAI_MODEL", defaultOpenAIModel)
	e.serverPort = getEnvOr("SERVER_PORT", defaultServerPort)
	e.carrierDataDir = getEnvOr("CARRIER_DATA_DIR", defaultCarrierDataDir)
	e.debugDumpDir = getEnvOr("DEBUG_DUMP_DIR", defaultDebugDumpDir)
	e.debug = getEnvBool("DEBUG")
	e.botAuth = getEnvBool("BOT_AUTH_ENABLED")
	e.refreshPerTurn = getEnvBool("INVENTORY_REFRESH_PER_TURN")

	if err := validator.New().Struct(e); err != nil {
		return errors.Wrap(err, "missing one or more required API keys")
	}
	return nil
}

func getEnvOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func (e *EnvConfigProvider) GetServerPort() string { return e.serverPort }
func (e *EnvConfigProvider) GetSnipeITURL() string { return e.snipeITURL }
func (e *EnvConfigProvider) GetSnipeITAPIKey() string { return e.SnipeITAPIKey }
func (e *EnvConfigProvider) GetOpenAIAPIKey() string { return e.OpenAIAPIKey }
func (e *EnvConfigProvider) GetOpenAIModel() string { return e.openAIModel }
func (e *EnvConfigProvider) GetBotAppID() string { return e.BotAppID }
func (e *EnvConfigProvider) GetBotAppPassword() string { return e.BotAppPassword }
func (e *EnvConfigProvider) GetCarrierDataDir() string { return e.carrierDataDir }
func (e *EnvConfigProvider) GetDebugDumpDir() string { return e.debugDumpDir }
func (e *EnvConfigProvider) IsDebug() bool { return e.debug }
func (e *EnvConfigProvider) IsBotAuthEnabled() bool { return e.botAuth }
func (e *EnvConfigProvider) RefreshInventoryPerTurn() bool { return e.refreshPerTurn }
