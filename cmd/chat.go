package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/omghumre/ui-generator-agent/common"
	"github.com/omghumre/ui-generator-agent/llm"
	"github.com/spf13/cobra"
)

// chatSystemPrompt is the fixed persona for the ad hoc chat loop
const chatSystemPrompt = "You are a helpful assistant."

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the model for ad hoc testing",
	Long: `Open an interactive chat loop against the configured provider.
Useful for manually exercising generated output; not part of the serving path.
Type 'exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, _ := cmd.Flags().GetString("provider")
		model, _ := cmd.Flags().GetString("model")

		llmClient, err := llm.NewLLM(provider, model)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}

		fmt.Println("Type your message, or 'exit' to quit.")

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

		for {
			fmt.Print("You: ")
			if !scanner.Scan() {
				break
			}

			input := scanner.Text()
			if input == "" {
				continue
			}
			if input == "exit" {
				fmt.Println("Goodbye!")
				break
			}

			resp := llmClient.Prompt(llm.Request{
				SystemPrompt: chatSystemPrompt,
				UserPrompt:   input,
			})
			if resp.Error != nil {
				fmt.Printf("Error getting response: %v\n", resp.Error)
				continue
			}

			fmt.Println(common.WrapString(resp.Content, 100))
		}

		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("provider", "p", "openai", "LLM provider to chat with")
	chatCmd.Flags().StringP("model", "m", "gpt-3.5-turbo", "LLM model to chat with")
}
