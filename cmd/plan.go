package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"debris-analyzer/internal/api/httpapi"
	app "debris-analyzer/internal/application"
)

var planCmd = &cobra.Command{
	Use:   "plan [request.json]",
	Short: "Plan a collection path for a plan-path request read from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open request: %w", err)
		}
		defer f.Close()
		in = f
	}

	return planFrom(cmd, in)
}

func planFrom(cmd *cobra.Command, in io.Reader) error {
	var req httpapi.PlanRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	resp, err := httpapi.Plan(cmd.Context(), app.NewPlanningService(), req)
	if err != nil {
		_, msg := httpapi.StatusFor(err)
		return errors.New(msg)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
