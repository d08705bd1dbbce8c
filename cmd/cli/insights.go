package cli

import (
	"FarmToFork-Backend/domain"
	"FarmToFork-Backend/entities"
	"FarmToFork-Backend/pkg/insight"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var insightsFlags struct {
	crop     string
	price    float64
	quantity float64
	harvest  string
	location string
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print quality, pricing and fraud insights for an ad-hoc batch",
	Example: `  farm2fork insights --crop "Organic Tomatoes" --price 45 --quantity 500 \
    --harvest 2024-01-15 --location "Punjab, India"`,
	RunE: runInsights,
}

func init() {
	f := insightsCmd.Flags()
	f.StringVar(&insightsFlags.crop, "crop", "", "Crop type")
	f.Float64Var(&insightsFlags.price, "price", 0, "Price per unit")
	f.Float64Var(&insightsFlags.quantity, "quantity", 0, "Quantity in kg")
	f.StringVar(&insightsFlags.harvest, "harvest", time.Now().Format(domain.HarvestDateLayout), "Harvest date (YYYY-MM-DD)")
	f.StringVar(&insightsFlags.location, "location", "", "Origin location")
	_ = insightsCmd.MarkFlagRequired("crop")
	_ = insightsCmd.MarkFlagRequired("price")
}

func runInsights(cmd *cobra.Command, args []string) error {
	b := entities.ProduceBatch{
		CropType:    insightsFlags.crop,
		HarvestDate: insightsFlags.harvest,
		Quantity:    insightsFlags.quantity,
		Price:       insightsFlags.price,
		Location:    insightsFlags.location,
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(insight.NewInsightService(nil, nil).Generate(b), "", "  ")
	if err != nil {
		return eris.Wrap(err, "insights: encode")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
