package utils

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/bitfield/script"
	"github.com/briandowns/spinner"
	"github.com/pubgo/funk/v2/assert"
	"github.com/pubgo/funk/v2/errors"
	"github.com/pubgo/funk/v2/log"
	"github.com/pubgo/funk/v2/result"

	"github.com/pubgo/promptrun/configs"
)

func UsageDesc(format string, args ...interface{}) string {
	s := fmt.Sprintf(format, args...)
	return strings.ToUpper(s[0:1]) + s[1:]
}

func Context() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
			cancel()
		}
	}()
	return ctx
}

func IsHelp() bool {
	help := strings.TrimSpace(os.Args[len(os.Args)-1])
	if strings.HasSuffix(help, "--help") || strings.HasSuffix(help, "-h") {
		return true
	}
	return false
}

func Spin[T any](name string, do func() result.Result[T]) (r result.Result[T]) {
	defer result.Recovery(&r)
	s := spinner.New(spinner.CharSets[35], 100*time.Millisecond, func(s *spinner.Spinner) { s.Prefix = name })
	s.Start()
	defer s.Stop()
	return do()
}

func LogConfig() {
	log.Info().Msgf("config: %s", configs.GetConfigPath())
	log.Info().Msgf("env: %s", configs.GetEnvPath())
	log.Info().Msgf("local: %s", configs.GetLocalEnvPath())
}

var editors = []string{"zed", "subl", "vim", "code", "open"}

func GetEditor() (r result.Result[string]) {
	for _, editor := range editors {
		_, err := exec.LookPath(editor)
		if err == nil {
			return r.WithValue(editor)
		}
	}
	return r.WithErr(errors.Errorf("no editor found in %q", editors))
}

func Edit(editPath string) {
	log.Info().Msgf("edit path: %s", editPath)
	editor := GetEditor().Unwrap()
	path := assert.Exit1(filepath.Abs(editPath))
	shellData := fmt.Sprintf(`%s "%s"`, editor, path)
	log.Info().Msg(shellData)
	assert.Exit1(script.Exec(shellData).Stdout())
}
