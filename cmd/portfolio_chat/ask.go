package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abrar/portfolio-chat/internal/chat"
	"github.com/abrar/portfolio-chat/internal/config"
)

var askConfigPath string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer one question from the terminal",
	Long:  `Run the résumé responder once against the configured résumé files and print the answer. Useful for checking answers without starting the server.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(askConfigPath)
	if err != nil {
		return err
	}

	store, model, closeModel := buildResponderDeps(cmd.Context(), cfg)
	defer closeModel()

	question := strings.Join(args, " ")

	// The collaboration short-circuit lives at the request boundary, so the
	// CLI applies it too for parity with the HTTP surface.
	if chat.IsCollaborationQuery(question) {
		fmt.Println(chat.CollaborationReply)
		return nil
	}

	responder := chat.NewResponder(store, model)
	fmt.Println(responder.Respond(cmd.Context(), question))
	return nil
}
