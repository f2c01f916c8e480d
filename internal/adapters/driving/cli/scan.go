package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kuradex-labs/kuradex/internal/adapters/driven/config/crec"
	"github.com/kuradex-labs/kuradex/internal/catalog"
	"github.com/kuradex-labs/kuradex/internal/core/domain"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the project data root and report what would be indexed",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	if projectPath == "" {
		return errors.New("--project is required")
	}

	settings, err := crec.LoadProject(projectPath, nil)
	if err != nil {
		return err
	}

	scanner := catalog.NewScanner(settings.DataRoot, nil)
	records, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Project: %s\n", settings.ProjectName)
	cmd.Printf("Data root: %s\n", settings.DataRoot)
	cmd.Printf("Collections: %d\n", len(records))

	byStatus := make(map[domain.InventoryStatus]int)
	for i := range records {
		byStatus[records[i].InventoryStatus]++
	}
	for status := domain.StatusStockOut; status <= domain.StatusNotSet; status++ {
		if byStatus[status] > 0 {
			cmd.Printf("  %-26s %d\n", status.String(), byStatus[status])
		}
	}
	return nil
}
