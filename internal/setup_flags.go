package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usage = `gpt - ChatGPT in your terminal

Prerequisites:
  - Set the OPENAI_API_KEY environment variable to your OpenAI API key
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output
  - (Optional) Set GPT_RAW to always print raw output
  - (Optional) Set GPT_RESPONSES_URL to query another responses endpoint

Examples:
  - gpt "Write me a haiku"
  - gpt -f main.go "Explain this code"
  - gpt -f go.mod -f main.go
  - gpt --repl -f notes.md`

type Configurations struct {
	Repl   bool
	Raw    bool
	Files  []string
	Prompt string
}

// NewCommand returns the root command. The flags are bound into v, so that
// "raw" may also be set with GPT_RAW.
func NewCommand(v *viper.Viper) (*cobra.Command, error) {
	conf := Configurations{}
	cmd := &cobra.Command{
		Use:           "gpt [flags] [prompt]",
		Short:         "ChatGPT in your terminal",
		Long:          usage,
		Version:       Version(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf.Prompt = strings.Join(args, " ")
			conf.Raw = v.GetBool("raw")
			return Run(cmd.Context(), v, conf, cmd.InOrStdin())
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&conf.Repl, "repl", false, "Run in interactive REPL mode")
	flags.StringArrayVarP(&conf.Files, "file", "f", nil, "File to include in the prompt, may be repeated")
	flags.BoolVarP(&conf.Raw, "raw", "r", false, "Print raw output, no color and no markdown rendering")
	if err := v.BindPFlag("raw", flags.Lookup("raw")); err != nil {
		return nil, fmt.Errorf("failed to bind flag: %w", err)
	}
	return cmd, nil
}
