package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/ThatOtherAndrew/Morphfield/internal/panel"
	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params [file]",
	Short: "Print or write a parameter file for live editing",
	Long: `Print the parameter file for the configured view, or write it to [file].

Pass the file to "morphfield run --params-file" and edit it while the window is open;
every save is applied on the next frame.`,
	Args: cobra.MaximumNArgs(1),
	Run:  writeParams,
}

var paramsForce bool

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.Flags().BoolVarP(&paramsForce, "force", "f", false, "overwrite an existing file")
}

func writeParams(cmd *cobra.Command, args []string) {
	settings, logger, err := loadSettings()
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	_, params, err := settings.Resolve()
	if err != nil {
		log.Fatal("Invalid view settings:", err)
	}

	p := panel.New("Morphfield", logger)
	p.BindParameters(&params)
	data := p.Template()

	if len(args) == 0 {
		fmt.Print(string(data))
		return
	}

	path := args[0]
	if _, err := os.Stat(path); err == nil && !paramsForce {
		log.Fatalf("%s already exists, pass --force to overwrite", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal("Failed to write parameter file:", err)
	}
	fmt.Println("Wrote parameter file:", path)
}
