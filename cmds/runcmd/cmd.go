package runcmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/pubgo/dix/v2"
	"github.com/pubgo/dix/v2/dixcontext"
	"github.com/pubgo/funk/v2/assert"
	"github.com/pubgo/funk/v2/errors"
	"github.com/pubgo/funk/v2/log"
	"github.com/pubgo/funk/v2/result"
	"github.com/pubgo/redant"
	"github.com/yarlson/tap"

	"github.com/pubgo/promptrun/utils"
	"github.com/pubgo/promptrun/utils/genaiclient"
	"github.com/pubgo/promptrun/utils/openaiclient"
)

const (
	ProviderVertex = "vertex"
	ProviderOpenAI = "openai"
)

type Config struct {
	Provider  string `yaml:"provider"`
	ShowUsage bool   `yaml:"show_usage"`
}

type cmdParams struct {
	GenaiClient  *genaiclient.Client
	OpenaiClient *openaiclient.Client
	RunCfg       []*Config
}

func New() *redant.Command {
	var flags = new(struct {
		model      string
		prompt     string
		edit       bool
		showPrompt bool
	})

	app := &redant.Command{
		Use:   "run",
		Short: "Send the configured prompt and print the response",
		Options: []redant.Option{
			{
				Flag:        "model",
				Description: "Override the configured model name.",
				Value:       redant.StringOf(&flags.model),
			},
			{
				Flag:        "text",
				Description: "Override the configured prompt text.",
				Value:       redant.StringOf(&flags.prompt),
			},
			{
				Flag:        "edit",
				Description: "Edit the prompt interactively before sending.",
				Value:       redant.BoolOf(&flags.edit),
			},
			{
				Flag:        "prompt",
				Description: "Show the prompt that was sent.",
				Value:       redant.BoolOf(&flags.showPrompt),
			},
		},
		Handler: func(ctx context.Context, i *redant.Invocation) (gErr error) {
			di := dixcontext.Get(ctx)
			var params cmdParams
			params = dix.Inject(di, params)

			defer result.RecoveryErr(&gErr, func(err error) error {
				if errors.Is(err, context.Canceled) {
					return nil
				}

				if err.Error() == "signal: interrupt" {
					return nil
				}

				return err
			})

			command := i.Command
			if len(command.Args) > 0 {
				log.Error(ctx).Msgf("unknown command:%v", command.Args)
				return redant.DefaultHelpFn()(ctx, i)
			}

			runCfg := new(Config)
			if len(params.RunCfg) > 0 && params.RunCfg[0] != nil {
				runCfg = params.RunCfg[0]
			}

			isTerminal := term.IsTerminal(os.Stdout.Fd())

			prompt := flags.prompt
			if prompt == "" {
				prompt = params.GenaiClient.Config().Prompt
			}

			if flags.edit && isTerminal {
				prompt = strings.TrimSpace(tap.Text(ctx, tap.TextOptions{
					Message:      "prompt(update or enter):",
					InitialValue: prompt,
					DefaultValue: prompt,
					Placeholder:  "update or enter",
				}))
			}

			if flags.showPrompt {
				fmt.Println("\n" + prompt + "\n")
			}

			switch runCfg.Provider {
			case "", ProviderVertex:
				client := params.GenaiClient
				assert.Must(client.Init(ctx))

				model := assert.Must1(client.SelectModel(flags.model))
				log.Info().Msgf("model: %s", model)

				var rsp *genaiclient.Response
				if isTerminal {
					rsp = utils.Spin("generate response: ", func() result.Result[*genaiclient.Response] {
						return result.Wrap(client.Generate(ctx, prompt))
					}).Unwrap()
				} else {
					rsp = assert.Must1(client.Generate(ctx, prompt))
				}

				assert.Must(utils.RenderResponse(os.Stdout, rsp.Text))
				if runCfg.ShowUsage {
					log.Info().Any("total_tokens", rsp.TotalTokens).Msg("vertex response usage")
				}
			case ProviderOpenAI:
				client := params.OpenaiClient

				var text string
				if isTerminal {
					text = utils.Spin("generate response: ", func() result.Result[string] {
						return result.Wrap(client.Generate(ctx, prompt))
					}).Unwrap()
				} else {
					text = assert.Must1(client.Generate(ctx, prompt))
				}

				assert.Must(utils.RenderResponse(os.Stdout, text))
			default:
				return errors.Errorf("unknown provider %q", runCfg.Provider)
			}

			return
		},
	}

	return app
}
