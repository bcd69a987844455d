package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seafreight/internal/config"
	"seafreight/internal/rate"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd  *cobra.Command
	console  Console
	prompter Prompter
	version  string
}

// NewCLIApp wires the root command to its console and prompter.
func NewCLIApp(version string, console Console, prompter Prompter) *CLIApp {
	app := &CLIApp{
		console:  console,
		prompter: prompter,
		version:  version,
	}

	rootCmd := &cobra.Command{
		Use:           "seafreight",
		Short:         "Estimate a sea freight rate",
		Version:       version,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "Sea Freight Rate Calculator version: %s\n" .Version}}`)

	flags := rootCmd.Flags()
	flags.Float64P("weight", "w", 0, "Weight of the goods in kilograms")
	flags.Float64P("distance", "d", 0, "Distance from port of origin to destination port in kilometers")
	flags.StringP("container", "c", "", "Container size: 20ft or 40ft")
	flags.StringP("goods", "g", "", "Type of goods: general, hazardous or perishable")
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON file with default inputs")
	flags.BoolP("interactive", "i", false, "Prompt for any input not given by flags or the config file")
	flags.String("provider", "sea", "Rate provider")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		displayWelcomeBanner(cmd.OutOrStdout(), app.version)
		fmt.Fprintln(cmd.OutOrStdout(), rate.ZeroDisplay)
	}

	provider, _ := cmd.Flags().GetString("provider")
	est, err := rate.NewByName(provider)
	if err != nil {
		return fmt.Errorf("%w: %q", err, provider)
	}

	req, err := app.collectRequest(cmd, interactive)
	if err != nil {
		return err
	}

	status := app.console.Status("Calculating sea freight rate...")
	quote, err := est.Estimate(req)
	status.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resultColor(quote.Display()))
	return nil
}

// provided records which inputs were given by the defaults file or a flag,
// so an explicit zero is passed on to validation instead of prompted for.
type provided struct {
	weight, distance, container, goods bool
}

// collectRequest layers explicit flags over the defaults file. Prompts only
// fill fields that are still unset.
func (app *CLIApp) collectRequest(cmd *cobra.Command, interactive bool) (rate.Request, error) {
	var (
		req  rate.Request
		have provided
	)
	flags := cmd.Flags()

	if path, _ := flags.GetString("config-file"); path != "" {
		d, err := config.LoadDefaultsFile(path)
		if err != nil {
			return req, err
		}
		req = rate.Request{
			WeightKg:      d.WeightKg,
			DistanceKm:    d.DistanceKm,
			ContainerSize: d.ContainerSize,
			GoodsType:     d.GoodsType,
		}
		have = provided{
			weight:    d.WeightKg != 0,
			distance:  d.DistanceKm != 0,
			container: strings.TrimSpace(d.ContainerSize) != "",
			goods:     strings.TrimSpace(d.GoodsType) != "",
		}
		app.console.LogInfo("Loaded defaults from %s", path)
	}

	if flags.Changed("weight") {
		req.WeightKg, _ = flags.GetFloat64("weight")
		have.weight = true
	}
	if flags.Changed("distance") {
		req.DistanceKm, _ = flags.GetFloat64("distance")
		have.distance = true
	}
	if flags.Changed("container") {
		req.ContainerSize, _ = flags.GetString("container")
		have.container = true
	}
	if flags.Changed("goods") {
		req.GoodsType, _ = flags.GetString("goods")
		have.goods = true
	}

	if !interactive {
		return req, nil
	}
	return app.promptMissing(req, have)
}

func (app *CLIApp) promptMissing(req rate.Request, have provided) (rate.Request, error) {
	var err error
	if !have.weight {
		if req.WeightKg, err = app.promptNumber("Enter the weight of the goods (kg)", "weight"); err != nil {
			return req, err
		}
	}
	if !have.distance {
		if req.DistanceKm, err = app.promptNumber("Enter the distance (km)", "distance"); err != nil {
			return req, err
		}
	}
	if !have.container {
		opts := make([]string, 0, len(rate.ContainerSizes()))
		for _, c := range rate.ContainerSizes() {
			opts = append(opts, string(c))
		}
		if req.ContainerSize, err = app.prompter.Select("Select the container size", opts); err != nil {
			return req, fmt.Errorf("reading container size: %w", err)
		}
	}
	if !have.goods {
		opts := make([]string, 0, len(rate.GoodsTypes()))
		for _, g := range rate.GoodsTypes() {
			opts = append(opts, string(g))
		}
		if req.GoodsType, err = app.prompter.Select("Select the type of goods", opts); err != nil {
			return req, fmt.Errorf("reading goods type: %w", err)
		}
	}
	return req, nil
}

// promptNumber reads free text and parses it as a float.
func (app *CLIApp) promptNumber(label, name string) (float64, error) {
	text, err := app.prompter.Text(label)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", name, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return v, nil
}
