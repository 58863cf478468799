package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/carbon"
)

func init() {
	rootCmd.AddCommand(factorsCmd)
}

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Print the emission factor tables",
	Run:   runFactors,
}

func runFactors(cmd *cobra.Command, args []string) {
	fmt.Fprintf(os.Stdout, "Emission factor tables %s\n", carbon.TableVersion)

	printTable("Transport (kg CO2e per km)", carbon.TransportFactors, carbon.DefaultTransportFactor)
	printTable("Energy (kg CO2e per kWh)", carbon.EnergyFactors, carbon.DefaultEnergyFactor)
	printTable("Food (kg CO2e per kg)", carbon.FoodFactors, carbon.DefaultFoodFactor)
	printTable("Waste disposal (kg CO2e per kg)", carbon.DisposalFactors, carbon.DefaultWasteFactor)
	printTable("Waste type (kg CO2e per kg)", carbon.WasteTypeFactors, carbon.DefaultWasteFactor)
}

func printTable(title string, factors map[string]float64, def float64) {
	fmt.Fprintf(os.Stdout, "\n%s\n", title)

	keys := make([]string, 0, len(factors))
	for k := range factors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(os.Stdout, "  %-16s %7.3f\n", k, factors[k])
	}
	fmt.Fprintf(os.Stdout, "  %-16s %7.3f\n", "(default)", def)
}
