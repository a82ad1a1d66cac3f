package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubscan/hubscan/internal/config"
	"github.com/hubscan/hubscan/pkg/endpoints"
	"github.com/hubscan/hubscan/pkg/validation"
)

var (
	addName     string
	addNoVerify bool
)

// endpointsCmd groups the endpoint management subcommands.
var endpointsCmd = &cobra.Command{
	Use:     "endpoints",
	Aliases: []string{"endpoint"},
	Short:   "Manage configured GitHub endpoints",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured endpoints",
	RunE:  runList,
}

var addCmd = &cobra.Command{
	Use:   "add <api-uri>",
	Short: "Add a GitHub endpoint",
	Long: `Add a GitHub endpoint to the configuration.

The API URI is normalized before it is stored. When no --name is given, a
display name is inferred from the hostname. Unless --no-verify is set, the
candidate server is probed first and a failed probe aborts the add.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var removeCmd = &cobra.Command{
	Use:     "remove <api-uri>",
	Aliases: []string{"rm"},
	Short:   "Remove a configured endpoint",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var validateCmd = &cobra.Command{
	Use:   "validate <api-uri> [name]",
	Short: "Probe a candidate endpoint without storing it",
	Long: `Probe a candidate API URI the same way the add command does and
report the classified outcome. An optional second argument is checked as the
display name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runValidate,
}

var inferNameCmd = &cobra.Command{
	Use:   "infer-name <api-uri>",
	Short: "Show the display name that would be inferred for an API URI",
	Args:  cobra.ExactArgs(1),
	RunE:  runInferName,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "display name for the endpoint")
	addCmd.Flags().BoolVar(&addNoVerify, "no-verify", false, "skip the remote probe")

	endpointsCmd.AddCommand(listCmd, addCmd, removeCmd, validateCmd, inferNameCmd)
	rootCmd.AddCommand(endpointsCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	set, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	list := set.List()
	if len(list) == 0 {
		cmd.Println("No endpoints configured.")
		return nil
	}

	for _, e := range list {
		if e.Name != "" {
			cmd.Printf("%s\t%s\n", e.APIURI, e.Name)
		} else {
			cmd.Println(e.APIURI)
		}
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	apiURI := args[0]

	if !addNoVerify {
		result := validation.CheckAPIURI(cmd.Context(), apiURI)
		printResult(cmd, "api-uri", result)
		if result.Kind == validation.Error {
			return fmt.Errorf("endpoint validation failed: %s", result.Message)
		}
	}
	printResult(cmd, "name", validation.CheckName(addName))

	path := config.Path()
	set, err := config.Load(path)
	if err != nil {
		return err
	}

	endpoint := endpoints.New(apiURI, addName)
	if err := set.Add(endpoint); err != nil {
		return err
	}
	if err := config.Save(path, set); err != nil {
		return err
	}

	cmd.Printf("Added %s\n", endpoint)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	path := config.Path()
	set, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := set.Delete(args[0]); err != nil {
		return err
	}
	if err := config.Save(path, set); err != nil {
		return err
	}

	cmd.Printf("Removed %s\n", endpoints.NormalizeAPIURI(args[0]))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	result := validation.CheckAPIURI(cmd.Context(), args[0])
	printResult(cmd, "api-uri", result)

	if len(args) > 1 {
		printResult(cmd, "name", validation.CheckName(args[1]))
	}

	if result.Kind == validation.Error {
		return fmt.Errorf("endpoint validation failed")
	}
	return nil
}

func runInferName(cmd *cobra.Command, args []string) error {
	name := endpoints.InferDisplayName(args[0])
	if name == "" {
		cmd.Println("No display name could be inferred.")
		return nil
	}
	cmd.Println(name)
	return nil
}

// printResult renders a validation result as a field-level message.
func printResult(cmd *cobra.Command, field string, result validation.Result) {
	if result.Message == "" {
		return
	}
	cmd.Printf("%s: [%s] %s\n", field, result.Kind, result.Message)
}
