/*
Copyright © 2019 the CTS authors.
This file is part of CTS.

CTS is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

CTS is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with CTS.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command cts transforms coordinates between reference systems from
// the command line.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/irstv/cts/crs"
	"github.com/irstv/cts/datum"
)

var (
	fromFlag     string
	toFlag       string
	registryFlag string
	verboseFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "cts",
	Short: "cts transforms coordinates between geodetic reference systems",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verboseFlag {
			log.SetLevel(log.DebugLevel)
		}
		if registryFlag != "" {
			if err := datum.LoadFile(datum.Default, registryFlag); err != nil {
				return err
			}
		}
		return nil
	},
}

var transformCmd = &cobra.Command{
	Use:   "transform ordinate ordinate [ordinate]",
	Short: "Transform one coordinate between two reference systems",
	Long: `Transform converts a coordinate from the system given with --from
into the system given with --to. Geographic coordinates are given as
latitude then longitude in decimal degrees.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := lookupCRS(fromFlag)
		if err != nil {
			return err
		}
		target, err := lookupCRS(toFlag)
		if err != nil {
			return err
		}
		coord := make([]float64, len(args))
		for i, a := range args {
			coord[i], err = strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("ordinate %q: %w", a, err)
			}
		}
		out, err := crs.Transform(source, target, coord)
		if err != nil {
			return err
		}
		parts := make([]string, len(out))
		for i, v := range out {
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known reference systems and datums",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Reference systems:")
		for code, c := range knownCRS {
			fmt.Fprintf(w, "  %-12s %s\n", code, c.ID().Name)
		}
		fmt.Fprintln(w, "Datums:")
		for _, d := range datum.Default.Datums() {
			fmt.Fprintf(w, "  %-12s %s\n", d.ID().CodeSpace(), d.ID().Name)
		}
	},
}

var knownCRS = map[string]crs.GeodeticCRS{
	"EPSG:4326":  crs.WGS84,
	"EPSG:4171":  crs.RGF93,
	"EPSG:2154":  crs.Lambert93,
	"EPSG:27572": crs.Lambert2Etendu,
}

var utmRe = regexp.MustCompile(`^UTM:([0-9]{1,2})([NS])$`)

// lookupCRS resolves a code like EPSG:4326 or UTM:38S.
func lookupCRS(code string) (crs.GeodeticCRS, error) {
	if c, ok := knownCRS[code]; ok {
		return c, nil
	}
	if m := utmRe.FindStringSubmatch(strings.ToUpper(code)); m != nil {
		zone, _ := strconv.Atoi(m[1])
		if zone >= 1 && zone <= 60 {
			return crs.NewUTMCRS(zone, m[2] == "N"), nil
		}
	}
	return nil, fmt.Errorf("unknown reference system %q", code)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "",
		"TOML file with additional datum definitions")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable debug logging")
	transformCmd.Flags().StringVar(&fromFlag, "from", "EPSG:4326",
		"code of the source reference system")
	transformCmd.Flags().StringVar(&toFlag, "to", "EPSG:4326",
		"code of the target reference system")
	rootCmd.AddCommand(transformCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
