package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-site/pkg/clients/formrelay"
	"portfolio-site/pkg/models"
	"portfolio-site/pkg/services"
)

// ErrDeliveryFailed is returned by send when the relay did not accept the message
var ErrDeliveryFailed = errors.New("message was not delivered")

var sendFlags models.ContactFormData

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send one contact message through the form relay",
	Example: `  portfolio send --name "Jane" --email jane@example.com \
    --project-type fullstack --message "Hello!"`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendFlags.Name, "name", "", "sender name (required)")
	sendCmd.Flags().StringVar(&sendFlags.Email, "email", "", "sender email (required)")
	sendCmd.Flags().StringVar(&sendFlags.ProjectType, "project-type", "", "project type ("+projectTypeChoices()+")")
	sendCmd.Flags().StringVar(&sendFlags.Message, "message", "", "message body (required)")
	_ = sendCmd.MarkFlagRequired("name")
	_ = sendCmd.MarkFlagRequired("email")
	_ = sendCmd.MarkFlagRequired("message")
}

func runSend(cmd *cobra.Command, args []string) error {
	relayClient := formrelay.NewClient(cfg.RelayEndpoint, &http.Client{})
	controller := services.NewSubmissionController(relayClient, nil, logger, cfg.RelayTimeout)

	state, err := controller.Submit(cmd.Context(), sendFlags)
	if err != nil {
		if fields := models.InvalidFields(err); len(fields) > 0 {
			return fmt.Errorf("invalid fields: %s: %w", strings.Join(fields, ", "), err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), state.Message())
	if state.Failed() {
		return ErrDeliveryFailed
	}
	return nil
}

func projectTypeChoices() string {
	var values []string
	for _, pt := range models.ProjectTypes {
		if pt.Value != "" {
			values = append(values, pt.Value)
		}
	}
	return strings.Join(values, ", ")
}
