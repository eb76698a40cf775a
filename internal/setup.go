package internal

import (
	"context"
	"fmt"
	"io"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/gpt/internal/chat"
	"github.com/baalimago/gpt/internal/prompt"
	"github.com/baalimago/gpt/internal/utils"
	"github.com/baalimago/gpt/internal/vendors/openai"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func loadTheme() {
	configDir, err := utils.GetConfigDir()
	if err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to find config dir, using default theme: %v\n", err))
		return
	}
	if err := utils.LoadTheme(configDir); err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to load theme, using default: %v\n", err))
	}
}

// Run a one-shot turn, or an interactive session reading from in if conf.Repl is set.
func Run(ctx context.Context, v *viper.Viper, conf Configurations, in io.Reader) error {
	loadTheme()
	responder, err := openai.NewResponder(v, prompt.Instructions)
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}
	session := chat.New(responder, utils.NewTermPrinter(conf.Raw), afero.NewOsFs(), conf.Files, in)
	if !conf.Repl {
		return session.OneShot(ctx, conf.Prompt)
	}

	// The key is looked up again on every turn, this only gives an early heads up
	if _, err := openai.LookupAPIKey(v); err != nil {
		ancli.PrintWarn(fmt.Sprintf("%v. Every message will fail until it is.\n", err))
	}
	return session.Interactive(ctx)
}
