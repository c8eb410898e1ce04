/*
Copyright © 2026 the Aegis authors.
This file is part of Aegis.

Aegis is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Aegis is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Aegis.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package aegisutil wires the Aegis geometry kernel into a
// command-line interface.
package aegisutil

import (
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	aegis "github.com/krr0land/aegis-origin"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	Cfg = viper.New()

	// Options are the configuration options available to Aegis.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "op",
			usage: `
              op specifies the boolean set operation to perform: union,
              intersection, difference or symmetricdifference.`,
			shorthand:  "o",
			defaultVal: "union",
			flagsets:   []*pflag.FlagSet{overlayCmd.Flags()},
		},
		{
			name: "out",
			usage: `
              out specifies the path of the result shapefile.`,
			defaultVal: "out.shp",
			flagsets:   []*pflag.FlagSet{overlayCmd.Flags()},
		},
		{
			name: "rs",
			usage: `
              rs specifies an opaque reference-system tag to stamp onto result
              geometries. The kernel never interprets it.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{overlayCmd.Flags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, v, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(overlayCmd)
	Root.AddCommand(validateCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("aegis: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "aegis",
	Short: "A planar polygon geometry kernel.",
	Long: `Aegis computes boolean set operations (union, intersection,
difference, symmetric difference) between polygon geometries, and checks
polygon validity, orientation and area. Use the subcommands specified below
to access the kernel functionality.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag) or by using command-line
arguments.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Aegis.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Aegis v%s\n", aegis.Version)
	},
	DisableAutoGenTag: true,
}
