package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	httpapi "guess-the-liar/internal/api/http"
	"guess-the-liar/internal/api/ws"
	"guess-the-liar/internal/config"
	"guess-the-liar/internal/prompts"
	"guess-the-liar/internal/room"
	"guess-the-liar/internal/store"
)

func newCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "guess-the-liar",
		Short:         "Session server for the Guess the Liar party game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringP("http-addr", "a", ":8080", "address to listen on (env: LIAR_HTTP_ADDR)")
	fs.Duration("answer-window", time.Minute, "answer phase duration (env: LIAR_ANSWER_WINDOW)")
	fs.Duration("clue-window", 4*time.Minute, "clue phase duration (env: LIAR_CLUE_WINDOW)")
	fs.Duration("debate-window", 3*time.Minute, "debate phase duration (env: LIAR_DEBATE_WINDOW)")
	fs.Duration("tick-interval", time.Second, "deadline check interval (env: LIAR_TICK_INTERVAL)")
	fs.BoolP("verbose", "v", false, "display additional output (env: LIAR_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	bank, err := prompts.Default()
	if err != nil {
		return err
	}

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg, bank)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go hub.Run(ctx)
	go rm.Run(ctx)

	r := httpapi.NewRouter(rm, hub, cfg)

	log.Printf("listening on %s", cfg.HTTPAddr)
	return r.Run(cfg.HTTPAddr)
}

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	if err := newCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
