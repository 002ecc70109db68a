package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loog-project/followlist/internal/config"
	"github.com/loog-project/followlist/internal/person"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Prints the generated users without starting the UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		newPerson := person.New
		if viper.GetBool(config.KeyLegacyGender) {
			newPerson = person.NewLegacy
		}
		for _, p := range person.GenerateWith(newPerson) {
			dumpConfig.Fdump(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
