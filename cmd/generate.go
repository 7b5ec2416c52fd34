package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/omghumre/ui-generator-agent/common"
	"github.com/omghumre/ui-generator-agent/llm"
	"github.com/omghumre/ui-generator-agent/logger"
	"github.com/omghumre/ui-generator-agent/prompt"
	"github.com/omghumre/ui-generator-agent/repo"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate UI code from a description",
	Long: `Generate UI code once from the terminal. The description is read from
the --description flag, or from stdin when the flag is omitted.
Repository context can be pulled from a GitHub URL or a local directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		if description == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read description from stdin: %w", err)
			}
			description = strings.TrimSpace(string(data))
		}
		if description == "" {
			return fmt.Errorf("a UI description is required")
		}

		settings := common.WithYamlFile()

		frameworkName, _ := cmd.Flags().GetString("framework")
		if frameworkName == "" {
			frameworkName = settings.Generation.Framework
		}
		fw, ok := prompt.LookupFramework(frameworkName)
		if !ok {
			return fmt.Errorf("unknown framework: %s", frameworkName)
		}

		provider, _ := cmd.Flags().GetString("provider")
		model, _ := cmd.Flags().GetString("model")

		llmClient, err := llm.NewLLM(provider, model,
			llm.WithMaxTokens(settings.Generation.MaxTokens),
			llm.WithTemperature(settings.Generation.Temperature),
		)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}

		repoContext, err := buildRepoContext(cmd)
		if err != nil {
			return err
		}

		resp := llmClient.Prompt(llm.Request{
			SystemPrompt: prompt.GetSystemPrompt(settings),
			UserPrompt:   prompt.GetGeneratePrompt(description, fw),
			RepoContext:  repoContext,
		})
		if resp.Error != nil {
			return fmt.Errorf("generation failed: %w", resp.Error)
		}

		block, _ := common.ExtractCodeBlock(resp.Content)

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(block.Body), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			logger.Infof("Wrote generated code to %s", out)
			return nil
		}

		fmt.Println(block.Body)
		return nil
	},
}

// buildRepoContext renders prompt context from --repo or --path, if given
func buildRepoContext(cmd *cobra.Command) (string, error) {
	var extractor repo.Extractor
	var err error

	repoURL, _ := cmd.Flags().GetString("repo")
	path, _ := cmd.Flags().GetString("path")

	switch {
	case repoURL != "" && path != "":
		return "", fmt.Errorf("--repo and --path are mutually exclusive")
	case repoURL != "":
		owner, name, parseErr := repo.ParseRepoURL(repoURL)
		if parseErr != nil {
			return "", parseErr
		}
		extractor, err = repo.NewExtractor(repo.ProviderGitHub, repo.WithRepository(owner, name))
	case path != "":
		extractor, err = repo.NewExtractor(repo.ProviderLocal, repo.WithPath(path))
	default:
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to create extractor: %w", err)
	}

	info, err := extractor.Info(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("repository extraction failed: %w", err)
	}
	files, err := extractor.FrontendFiles(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("repository extraction failed: %w", err)
	}

	return prompt.GetRepoContextPrompt(info, files), nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("description", "d", "", "Natural-language description of the UI component")
	generateCmd.Flags().StringP("framework", "f", "", "Target framework (streamlit, react, vue, html)")
	generateCmd.Flags().String("repo", "", "GitHub repository URL to use as context")
	generateCmd.Flags().String("path", "", "Local directory to use as context")
	generateCmd.Flags().StringP("provider", "p", "openai", "LLM provider to use for generation")
	generateCmd.Flags().StringP("model", "m", "gpt-3.5-turbo", "LLM model to use for generation")
	generateCmd.Flags().StringP("out", "o", "", "Write the generated code to this file instead of stdout")
}
