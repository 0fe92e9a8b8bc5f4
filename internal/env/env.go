// Package env fills unset command flags from environment variables.
package env

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	globalPrefix       = "latextab"
	errorMessagePrefix = "error mapping environment variables to command flags"
)

// Prefix returns the variable prefix for command: LATEXTAB for the root
// command and LATEXTAB_<NAME> for subcommands.
func Prefix(command *cobra.Command) string {
	if !command.HasParent() {
		return strings.ToUpper(globalPrefix)
	}
	return strings.ToUpper(fmt.Sprintf("%s_%s", globalPrefix, command.Name()))
}

// CheckEnvironmentVariables sets every flag of command that was not given on
// the command line from <PREFIX>_<FLAG>, with dashes in the flag name
// replaced by underscores.
func CheckEnvironmentVariables(command *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(Prefix(command))
	command.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(configName) {
			val := v.Get(configName)
			if err := command.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				errs = append(errs, err.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", errorMessagePrefix, strings.Join(errs, "; "))
}
