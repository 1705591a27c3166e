package modelscmd

import (
	"context"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/olekukonko/tablewriter"
	"github.com/pubgo/funk/v2/assert"
	"github.com/pubgo/funk/v2/log"
	"github.com/pubgo/funk/v2/recovery"
	"github.com/pubgo/redant"

	"github.com/pubgo/promptrun/configs"
	"github.com/pubgo/promptrun/utils/fzfutil"
	"github.com/pubgo/promptrun/utils/genaiclient"
)

func New() *redant.Command {
	var flags = new(struct {
		custom bool
	})

	return &redant.Command{
		Use:   "models",
		Short: "known model management",
		Children: []*redant.Command{
			{
				Use:   "pick",
				Short: "pick a model interactively and print it",
				Options: []redant.Option{
					{
						Flag:        "custom",
						Description: "Type a custom model name instead of picking from the known set.",
						Value:       redant.BoolOf(&flags.custom),
					},
				},
				Handler: func(ctx context.Context, i *redant.Invocation) error {
					defer recovery.Exit()

					if flags.custom {
						m := assert.Must1(tea.NewProgram(initialTextInputModel(genaiclient.KnownModels()[0])).Run())
						input := m.(textInputModel)
						if input.exit || input.Value() == "" {
							return nil
						}
						report(input.Value())
						return nil
					}

					models := genaiclient.KnownModels()
					selected, err := fzfutil.SelectWithFzf(ctx, strings.NewReader(strings.Join(models, "\n")))
					if err != nil {
						m := assert.Must1(tea.NewProgram(initialPickModel(models)).Run())
						selected = m.(pickModel).selected
					}

					if selected == "" {
						return nil
					}
					report(selected)
					return nil
				},
			},
		},
		Handler: func(ctx context.Context, i *redant.Invocation) error {
			defer recovery.Exit()

			models := genaiclient.KnownModels()

			command := i.Command
			if len(command.Args) > 0 {
				models = fuzzy.FindFold(command.Args[0].Value.String(), models)
			}

			tt := tablewriter.NewWriter(os.Stdout)
			tt.Header([]string{"Model", "Generation", "Variant"})
			for _, model := range models {
				generation, variant := splitModelName(model)
				assert.Must(tt.Append([]string{model, generation, variant}))
			}
			return tt.Render()
		},
	}
}

func report(model string) {
	log.Info().Msgf("model: %s", model)
	log.Info().Msgf("set vertex.model to %q in %s", model, configs.GetConfigPath())
}

// splitModelName pulls the generation and variant out of names like
// gemini-2.5-pro or gemini-2.0-flash-001.
func splitModelName(name string) (generation, variant string) {
	parts := strings.SplitN(name, "-", 3)
	if len(parts) < 3 {
		return "", ""
	}
	return parts[1], parts[2]
}
