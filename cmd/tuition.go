package cmd

import (
	"fmt"

	"github.com/abhisek/gradpath/internal/tuition"
	"github.com/spf13/cobra"
)

var tuitionCmd = &cobra.Command{
	Use:   "tuition",
	Short: "Estimate a trimester bill with waiver and installments",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		credits, _ := flags.GetFloat64("credits")
		fee, _ := flags.GetFloat64("per-credit")
		waiver, _ := flags.GetString("waiver")

		scholarship, err := tuition.ParseScholarship(waiver)
		if err != nil {
			return err
		}

		bill, err := tuition.Calculate(credits, fee, scholarship)
		if err != nil {
			return err
		}

		fmt.Printf("Base tuition:        %12.2f\n", bill.BaseTuition)
		if bill.ScholarshipDiscount > 0 {
			fmt.Printf("Waiver discount:     %12.2f\n", -bill.ScholarshipDiscount)
		}
		fmt.Printf("Trimester fee:       %12.2f\n", bill.TrimesterFee)
		fmt.Printf("Total payable:       %12.2f\n", bill.TotalPayable)
		fmt.Println()
		fmt.Printf("1st installment 40%%: %12.2f\n", bill.Installments[0])
		fmt.Printf("2nd installment 30%%: %12.2f\n", bill.Installments[1])
		fmt.Printf("3rd installment 30%%: %12.2f\n", bill.Installments[2])
		return nil
	},
}

func init() {
	tuitionCmd.Flags().Float64("credits", 12, "Credits this trimester")
	tuitionCmd.Flags().Float64("per-credit", 6500, "Fee per credit")
	tuitionCmd.Flags().String("waiver", "", "Scholarship waiver: 20, 25, 50 or 100")
}
