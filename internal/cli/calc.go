package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/carbon"
	"github.com/ecotrack-app/ecotrack/internal/domain"
)

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringP("mode", "m", "", "Transport mode (car_gasoline, bus, train, ...)")
	calcCmd.Flags().StringP("source", "s", "", "Energy source (grid_average, solar, ...)")
	calcCmd.Flags().StringP("food", "f", "", "Food type (beef, chicken, vegetables, ...)")
	calcCmd.Flags().StringP("waste", "w", "", "Waste type (recycling, compost, ...)")
	calcCmd.Flags().StringP("disposal", "d", "", "Disposal method (landfill, incineration)")
}

var calcCmd = &cobra.Command{
	Use:   "calc CATEGORY VALUE UNIT",
	Short: "Compute a one-off carbon footprint",
	Long: `Compute the footprint of a single activity without logging it.

Examples:
  ecotrack calc transport 100 km --mode car_gasoline
  ecotrack calc food 2 kg --food beef
  ecotrack calc energy 1 MWh
  ecotrack calc waste 5 kg --waste recycling`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func runCalc(cmd *cobra.Command, args []string) error {
	category := domain.Category(args[0])
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", args[0])
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil || value <= 0 {
		return fmt.Errorf("value must be a positive number, got %q", args[1])
	}

	q := domain.Quantity{Value: value, Unit: domain.Unit(args[2])}
	d := detailsFromFlags(cmd)

	res := carbon.Calculate(category, q, d)
	fmt.Fprintf(os.Stdout, "Footprint: %.2f kg CO2e (factor %.3f, tables %s)\n",
		res.CarbonFootprint, res.EmissionFactor, carbon.TableVersion)
	return nil
}

func detailsFromFlags(cmd *cobra.Command) domain.Details {
	var d domain.Details
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		d.Transport = &domain.TransportDetail{Mode: mode}
	}
	if source, _ := cmd.Flags().GetString("source"); source != "" {
		d.Energy = &domain.EnergyDetail{Source: source}
	}
	if food, _ := cmd.Flags().GetString("food"); food != "" {
		d.Food = &domain.FoodDetail{FoodType: food}
	}
	waste, _ := cmd.Flags().GetString("waste")
	disposal, _ := cmd.Flags().GetString("disposal")
	if waste != "" || disposal != "" {
		d.Waste = &domain.WasteDetail{WasteType: waste, DisposalMethod: disposal}
	}
	return d
}
