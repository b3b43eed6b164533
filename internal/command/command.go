package command

import (
	commandHandler "github.com/zungle102/shiftrec-sub000/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSeedHandler, commandHandler.NewMigrateHandler)

type Command struct {
	seedCommandHandler    *commandHandler.SeedHandler
	migrateCommandHandler *commandHandler.MigrateHandler
}

// NewCommand .
func NewCommand(
	seedCommandHandler *commandHandler.SeedHandler,
	migrateCommandHandler *commandHandler.MigrateHandler,
) *Command {
	return &Command{
		seedCommandHandler:    seedCommandHandler,
		migrateCommandHandler: migrateCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "seed demo owner and default client types",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.seedCommandHandler.Seed(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "backfill legacy shift and client field names",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.migrateCommandHandler.Migrate(cmd, args)
			},
		},
	)
}
