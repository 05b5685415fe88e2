package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	Env     string // dev (default) | test | qa | prod
	Debug   bool
	Build   string

	Server struct {
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}

	// Upstream is the school REST backend this gateway fronts.
	Upstream struct {
		BaseURL string
		Token   string
		Timeout time.Duration
	}

	RollbarToken string
}

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Tuition Admin")
	conf.SetDefault("build", "dev")
	conf.SetDefault("server.addr", ":8000")
	conf.SetDefault("server.debugAddr", ":8001")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("upstream.baseURL", "http://localhost:5000/api")
	conf.SetDefault("upstream.token", "")
	conf.SetDefault("upstream.timeout", 10*time.Second)
	conf.SetDefault("rollbarToken", "")

	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = "dev"
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}

	conf.SetEnvPrefix("admin")
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	c := &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Debug:        conf.GetBool("debug"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
	}
	c.Server.Addr = conf.GetString("server.addr")
	c.Server.DebugAddr = conf.GetString("server.debugAddr")
	c.Server.ShutdownTimeout = conf.GetDuration("server.shutdownTimeout")
	c.Upstream.BaseURL = conf.GetString("upstream.baseURL")
	c.Upstream.Token = conf.GetString("upstream.token")
	c.Upstream.Timeout = conf.GetDuration("upstream.timeout")
	return c
}
