package configs

import (
	_ "embed"
	"path"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pubgo/funk/v2/assert"
)

type Version struct {
	Name string `yaml:"name"`
}

//go:embed default.yaml
var defaultConfig []byte

//go:embed env.yaml
var envConfig []byte

var GetConfigPath = sync.OnceValue(func() string {
	return assert.Exit1(xdg.ConfigFile("promptrun/config.yaml"))
})

var GetEnvPath = sync.OnceValue(func() string {
	return path.Join(path.Dir(GetConfigPath()), "env.yaml")
})

var GetLocalEnvPath = sync.OnceValue(func() string {
	return path.Join(path.Dir(GetConfigPath()), "local.env")
})

func GetDefaultConfig() []byte { return defaultConfig }

func GetEnvConfig() []byte { return envConfig }
