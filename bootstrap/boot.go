package bootstrap

import (
	"context"

	_ "github.com/adrg/xdg"
	_ "github.com/charmbracelet/bubbletea"
	"github.com/pubgo/dix/v2"
	"github.com/pubgo/dix/v2/dixcontext"
	"github.com/pubgo/funk/v2/assert"
	"github.com/pubgo/funk/v2/config"
	"github.com/pubgo/funk/v2/errors"
	"github.com/pubgo/funk/v2/log"
	"github.com/pubgo/funk/v2/recovery"
	"github.com/pubgo/promptrun/cmds/configcmd"
	"github.com/pubgo/promptrun/cmds/initcmd"
	"github.com/pubgo/promptrun/cmds/modelscmd"
	"github.com/pubgo/promptrun/cmds/runcmd"
	"github.com/pubgo/promptrun/cmds/upgradecmd"
	"github.com/pubgo/promptrun/cmds/versioncmd"
	"github.com/pubgo/promptrun/utils"
	"github.com/pubgo/promptrun/utils/genaiclient"
	"github.com/pubgo/promptrun/utils/openaiclient"
	"github.com/pubgo/redant"
)

func Main() {
	run(
		versioncmd.New(),
		initcmd.New(),
		upgradecmd.New(),
		modelscmd.New(),
		runcmd.New(),
		configcmd.New(),
	)
}

func run(cmds ...*redant.Command) {
	defer recovery.Exit(func(err error) error {
		if errors.Is(err, context.Canceled) {
			return nil
		}

		if err.Error() == "signal: interrupt" {
			return nil
		}

		log.Err(err).Msg("failed to run command")
		return nil
	})

	app := &redant.Command{
		Use:      "promptrun",
		Short:    "One-shot prompt runner for Vertex AI Gemini",
		Children: cmds,
		Middleware: func(next redant.HandlerFunc) redant.HandlerFunc {
			return func(ctx context.Context, i *redant.Invocation) error {
				if utils.IsHelp() {
					return redant.DefaultHelpFn()(ctx, i)
				}

				initConfig()
				di := dix.New(dix.WithValuesNull())
				di.Provide(config.Load[configProvider])
				di.Provide(genaiclient.New)
				di.Provide(openaiclient.New)
				return next(dixcontext.Create(ctx, di), i)
			}
		},
	}

	assert.Must(app.Run(utils.Context()))
}
