package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/JennyJYLiu/maas/pkg/reconcile"
)

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <action> [previous-version]",
		Short: "Show which reconciliation steps an event would run",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runPlan,
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	action, previous := splitEvent(args)
	plan, err := reconcile.Decide(action, previous)
	if err != nil {
		return err
	}
	renderPlan(cmd.OutOrStdout(), plan)
	return nil
}

func renderPlan(w io.Writer, plan reconcile.Plan) {
	if len(plan) == 0 {
		fmt.Fprintln(w, "no-op: nothing to reconcile")
		return
	}

	t := table.New().Border(lipgloss.HiddenBorder()).Headers("#", "STEP", "EFFECT")
	for i, step := range plan {
		t.Row(strconv.Itoa(i+1), step.String(), step.Effect())
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingRight(2)
	dataStyle := lipgloss.NewStyle().PaddingRight(2)
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row < 0 {
			return headerStyle
		}
		return dataStyle
	})

	fmt.Fprintln(w, t)
}
